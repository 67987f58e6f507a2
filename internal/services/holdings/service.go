// Package holdings provides CRUD over the local holdings collection.
package holdings

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/portview/portview/internal/common"
	"github.com/portview/portview/internal/interfaces"
	"github.com/portview/portview/internal/models"
)

// Service implements HoldingService on top of a HoldingStore.
type Service struct {
	store  interfaces.HoldingStore
	logger *common.Logger
}

// NewService creates a new holdings service
func NewService(store interfaces.HoldingStore, logger *common.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// CreateHolding validates and stores a new holding.
func (s *Service) CreateHolding(ctx context.Context, h models.Holding) (*models.Holding, error) {
	if err := validateHolding(&h); err != nil {
		return nil, err
	}

	// One position per symbol, matching the store contract.
	if _, exists, err := s.store.FindBySymbol(ctx, h.Symbol); err != nil {
		return nil, err
	} else if exists {
		return nil, models.NewValidationError("symbol %s already exists", h.Symbol)
	}

	h.ID = uuid.New().String()
	if err := s.store.SaveHolding(ctx, &h); err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", h.ID).Str("symbol", h.Symbol).Int("shares", h.Shares).Msg("Holding created")
	return &h, nil
}

// GetHolding returns one holding by id.
func (s *Service) GetHolding(ctx context.Context, id string) (*models.Holding, error) {
	return s.store.GetHolding(ctx, id)
}

// ListHoldings returns holdings in insertion order. When query is non-empty,
// only holdings whose wire fields all equal the given values
// (case-insensitive) are returned; unknown field names match nothing.
func (s *Service) ListHoldings(ctx context.Context, query map[string]string) ([]models.Holding, error) {
	all, err := s.store.ListHoldings(ctx)
	if err != nil {
		return nil, err
	}
	if len(query) == 0 {
		return all, nil
	}

	matched := make([]models.Holding, 0, len(all))
	for _, h := range all {
		if matchesQuery(h, query) {
			matched = append(matched, h)
		}
	}
	return matched, nil
}

// UpdateHolding replaces the holding at id with the validated body. Fields
// absent from the body keep their stored values (handled by the transport
// layer merging into the existing record before calling here).
func (s *Service) UpdateHolding(ctx context.Context, id string, h models.Holding) (*models.Holding, error) {
	if h.ID != id {
		return nil, models.NewValidationError("body id must match path id")
	}

	existing, err := s.store.GetHolding(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateHolding(&h); err != nil {
		return nil, err
	}

	h.Seq = existing.Seq
	if err := s.store.UpdateHolding(ctx, &h); err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", h.ID).Str("symbol", h.Symbol).Msg("Holding updated")
	return &h, nil
}

// DeleteHolding removes one holding by id.
func (s *Service) DeleteHolding(ctx context.Context, id string) error {
	if err := s.store.DeleteHolding(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("id", id).Msg("Holding deleted")
	return nil
}

// validateHolding normalizes and checks a holding record, applying the
// at-creation rounding of the purchase price.
func validateHolding(h *models.Holding) error {
	h.Symbol = models.NormalizeSymbol(h.Symbol)
	if h.Symbol == "" {
		return models.NewValidationError("symbol is required")
	}

	if h.Name == "" {
		h.Name = "NA"
	}
	if h.PurchaseDate == "" {
		h.PurchaseDate = "NA"
	}
	if h.PurchaseDate != "NA" && !models.ValidPurchaseDate(h.PurchaseDate) {
		return models.NewValidationError("purchase_date must be DD-MM-YYYY")
	}

	h.PurchasePrice = models.Round2(h.PurchasePrice)
	return nil
}

func matchesQuery(h models.Holding, query map[string]string) bool {
	for key, want := range query {
		got, ok := h.FieldValue(key)
		if !ok {
			return false
		}
		if !strings.EqualFold(got, want) {
			return false
		}
	}
	return true
}

// Ensure Service implements HoldingService
var _ interfaces.HoldingService = (*Service)(nil)

// StoreSource exposes the local holdings collection as a HoldingSource so the
// valuation engine can aggregate over it alongside remote stores.
type StoreSource struct {
	name    string
	service interfaces.HoldingService
}

// NewStoreSource wraps the holdings service as the source named name.
func NewStoreSource(name string, service interfaces.HoldingService) *StoreSource {
	return &StoreSource{name: name, service: service}
}

// Name identifies the in-process source.
func (s *StoreSource) Name() string {
	return s.name
}

// FetchHoldings lists the local collection with the source name stamped.
func (s *StoreSource) FetchHoldings(ctx context.Context) ([]models.Holding, error) {
	holdings, err := s.service.ListHoldings(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("local store: %w", err)
	}
	for i := range holdings {
		holdings[i].Source = s.name
	}
	return holdings, nil
}

// Ensure StoreSource implements HoldingSource
var _ interfaces.HoldingSource = (*StoreSource)(nil)
