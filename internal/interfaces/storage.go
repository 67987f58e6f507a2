package interfaces

import (
	"context"

	"github.com/portview/portview/internal/models"
)

// HoldingStore persists the local holdings collection. Implementations must
// key holdings uniquely by id and iterate in insertion order.
type HoldingStore interface {
	// SaveHolding inserts a new holding, assigning its insertion sequence.
	SaveHolding(ctx context.Context, h *models.Holding) error

	// GetHolding returns the holding with the given id, or a NotFoundError.
	GetHolding(ctx context.Context, id string) (*models.Holding, error)

	// ListHoldings returns all holdings in insertion order.
	ListHoldings(ctx context.Context) ([]models.Holding, error)

	// UpdateHolding replaces an existing holding in place, keeping its
	// insertion sequence.
	UpdateHolding(ctx context.Context, h *models.Holding) error

	// DeleteHolding removes the holding with the given id, or returns a
	// NotFoundError.
	DeleteHolding(ctx context.Context, id string) error

	// FindBySymbol returns the holding with the given symbol, if any.
	FindBySymbol(ctx context.Context, symbol string) (*models.Holding, bool, error)

	Close() error
}
