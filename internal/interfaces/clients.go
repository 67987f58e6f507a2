// Package interfaces defines service contracts for portview
package interfaces

import (
	"context"

	"github.com/portview/portview/internal/models"
)

// PriceClient looks up the live price for a ticker symbol from the external
// price oracle. The symbol is forwarded exactly as given; no normalization
// happens at this boundary. A non-success oracle status is returned as an
// error and is fatal to the aggregation that issued the lookup.
type PriceClient interface {
	StockPrice(ctx context.Context, symbol string) (models.PriceQuote, error)
}

// HoldingSource fetches the full holdings list of one portfolio store.
// A reachable store with no holdings returns an empty slice and nil error;
// an unreachable store or non-success status returns an error.
//
// Implemented by the HTTP store adapter (clients/stocksvc) and by the
// in-process store source (services/holdings).
type HoldingSource interface {
	// Name identifies the source; it is stamped onto every fetched holding.
	Name() string

	FetchHoldings(ctx context.Context) ([]models.Holding, error)
}
