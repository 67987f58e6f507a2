package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int {
	return &n
}

func TestFilterApplyKeepsOrder(t *testing.T) {
	holdings := []Holding{
		{Symbol: "AAPL", Shares: 3},
		{Symbol: "MSFT", Shares: 10},
		{Symbol: "GOOG", Shares: 7},
		{Symbol: "NVDA", Shares: 1},
	}

	filter := HoldingFilter{SharesGT: intPtr(2)}
	kept := filter.Apply(holdings)

	assert.Equal(t, []string{"AAPL", "MSFT", "GOOG"}, symbols(kept))
}

func TestFilterVacuouslyTrue(t *testing.T) {
	holdings := []Holding{
		{Symbol: "AAPL", Shares: 3},
		{Symbol: "MSFT", Shares: 10},
	}

	kept := HoldingFilter{}.Apply(holdings)
	assert.Equal(t, holdings, kept)
}

func TestFilterCombinedPredicates(t *testing.T) {
	holdings := []Holding{
		{Symbol: "A", Shares: 2},
		{Symbol: "B", Shares: 5},
		{Symbol: "C", Shares: 9},
	}

	filter := HoldingFilter{SharesGT: intPtr(2), SharesLT: intPtr(9)}
	kept := filter.Apply(holdings)

	assert.Equal(t, []string{"B"}, symbols(kept))
}

func TestFilterBoundsAreStrict(t *testing.T) {
	filter := HoldingFilter{SharesGT: intPtr(5), SharesLT: intPtr(10)}

	assert.False(t, filter.Match(Holding{Shares: 5}))
	assert.True(t, filter.Match(Holding{Shares: 6}))
	assert.True(t, filter.Match(Holding{Shares: 9}))
	assert.False(t, filter.Match(Holding{Shares: 10}))
}

func TestFilterRetainedHoldingsSatisfyPredicates(t *testing.T) {
	holdings := []Holding{
		{Symbol: "A", Shares: 1},
		{Symbol: "B", Shares: 4},
		{Symbol: "C", Shares: 6},
		{Symbol: "D", Shares: 8},
		{Symbol: "E", Shares: 12},
	}

	filter := HoldingFilter{SharesGT: intPtr(3), SharesLT: intPtr(10)}
	for _, h := range filter.Apply(holdings) {
		assert.Greater(t, h.Shares, 3)
		assert.Less(t, h.Shares, 10)
	}
}

func TestFilterIsZero(t *testing.T) {
	assert.True(t, HoldingFilter{}.IsZero())
	assert.False(t, HoldingFilter{Source: "stocks1"}.IsZero())
	assert.False(t, HoldingFilter{SharesGT: intPtr(0)}.IsZero())
}

func symbols(holdings []Holding) []string {
	out := make([]string, len(holdings))
	for i, h := range holdings {
		out[i] = h.Symbol
	}
	return out
}
