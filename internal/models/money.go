package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Round2 rounds a monetary amount to cents using banker's rounding, the
// rounding the upstream stores apply. Every user-visible monetary quantity
// goes through exactly one Round2 step; totals over already-rounded
// per-holding amounts are not re-rounded a second time.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).RoundBank(2).Float64()
	return f
}

// MulShares computes shares × price rounded to cents in a single step.
func MulShares(shares int, price float64) float64 {
	product := decimal.NewFromInt(int64(shares)).Mul(decimal.NewFromFloat(price))
	f, _ := product.RoundBank(2).Float64()
	return f
}

// SubRound computes a − b rounded to cents in a single step.
func SubRound(a, b float64) float64 {
	diff := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b))
	f, _ := diff.RoundBank(2).Float64()
	return f
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatShares(v int) string {
	return strconv.Itoa(v)
}
