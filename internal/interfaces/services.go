package interfaces

import (
	"context"

	"github.com/portview/portview/internal/models"
)

// HoldingService owns the local holdings collection and its CRUD validation.
type HoldingService interface {
	// CreateHolding validates and stores a new holding, returning it with
	// its assigned id. Duplicate symbols are rejected.
	CreateHolding(ctx context.Context, h models.Holding) (*models.Holding, error)

	// GetHolding returns one holding by id.
	GetHolding(ctx context.Context, id string) (*models.Holding, error)

	// ListHoldings returns holdings in insertion order, optionally filtered
	// by wire-field equality (case-insensitive), e.g. {"symbol": "aapl"}.
	ListHoldings(ctx context.Context, query map[string]string) ([]models.Holding, error)

	// UpdateHolding replaces the holding at id. The body id must match.
	UpdateHolding(ctx context.Context, id string, h models.Holding) (*models.Holding, error)

	// DeleteHolding removes one holding by id.
	DeleteHolding(ctx context.Context, id string) error
}

// ValuationService merges holdings from the configured portfolio sources,
// prices them, and reduces to the requested metric. All operations are
// request-scoped and fail fast: the first source or price failure aborts
// the whole aggregation.
type ValuationService interface {
	// Aggregate runs the full pipeline: select sources (filter.Source, "" =
	// all), fetch, concatenate in source order, filter, price, reduce.
	Aggregate(ctx context.Context, filter models.HoldingFilter, mode models.AggregateMode) (*models.AggregationResult, error)

	// ValueHolding prices a single holding.
	ValueHolding(ctx context.Context, h models.Holding) (*models.HoldingValuation, error)
}
