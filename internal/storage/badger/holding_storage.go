package badger

import (
	"context"
	"fmt"
	"sort"

	"github.com/timshannon/badgerhold/v4"

	"github.com/portview/portview/internal/common"
	"github.com/portview/portview/internal/interfaces"
	"github.com/portview/portview/internal/models"
)

type holdingStorage struct {
	store  *Store
	logger *common.Logger
}

// NewHoldingStorage creates a HoldingStore backed by BadgerHold.
func NewHoldingStorage(store *Store, logger *common.Logger) interfaces.HoldingStore {
	return &holdingStorage{store: store, logger: logger}
}

func (s *holdingStorage) SaveHolding(_ context.Context, h *models.Holding) error {
	seq, err := s.store.NextSeq()
	if err != nil {
		return fmt.Errorf("failed to assign holding sequence: %w", err)
	}
	h.Seq = seq

	if err := s.store.db.Insert(h.ID, h); err != nil {
		return fmt.Errorf("failed to save holding: %w", err)
	}
	s.logger.Debug().Str("id", h.ID).Str("symbol", h.Symbol).Msg("Holding saved")
	return nil
}

func (s *holdingStorage) GetHolding(_ context.Context, id string) (*models.Holding, error) {
	var h models.Holding
	err := s.store.db.Get(id, &h)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, &models.NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to get holding %q: %w", id, err)
	}
	return &h, nil
}

func (s *holdingStorage) ListHoldings(_ context.Context) ([]models.Holding, error) {
	var holdings []models.Holding
	if err := s.store.db.Find(&holdings, nil); err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	// Badger iterates in key order; callers expect insertion order.
	sort.Slice(holdings, func(i, j int) bool {
		return holdings[i].Seq < holdings[j].Seq
	})
	return holdings, nil
}

func (s *holdingStorage) UpdateHolding(_ context.Context, h *models.Holding) error {
	err := s.store.db.Update(h.ID, h)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return &models.NotFoundError{ID: h.ID}
		}
		return fmt.Errorf("failed to update holding %q: %w", h.ID, err)
	}
	s.logger.Debug().Str("id", h.ID).Str("symbol", h.Symbol).Msg("Holding updated")
	return nil
}

func (s *holdingStorage) DeleteHolding(_ context.Context, id string) error {
	err := s.store.db.Delete(id, models.Holding{})
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return &models.NotFoundError{ID: id}
		}
		return fmt.Errorf("failed to delete holding %q: %w", id, err)
	}
	s.logger.Debug().Str("id", id).Msg("Holding deleted")
	return nil
}

func (s *holdingStorage) FindBySymbol(_ context.Context, symbol string) (*models.Holding, bool, error) {
	var matches []models.Holding
	if err := s.store.db.Find(&matches, badgerhold.Where("Symbol").Eq(symbol)); err != nil {
		return nil, false, fmt.Errorf("failed to query holdings by symbol: %w", err)
	}
	if len(matches) == 0 {
		return nil, false, nil
	}
	return &matches[0], true, nil
}

func (s *holdingStorage) Close() error {
	return s.store.Close()
}
