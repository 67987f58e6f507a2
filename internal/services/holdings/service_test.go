package holdings

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portview/portview/internal/common"
	"github.com/portview/portview/internal/models"
)

// memStore is an in-memory HoldingStore for testing.
type memStore struct {
	holdings []models.Holding
	nextSeq  uint64
}

func (m *memStore) SaveHolding(_ context.Context, h *models.Holding) error {
	h.Seq = m.nextSeq
	m.nextSeq++
	m.holdings = append(m.holdings, *h)
	return nil
}

func (m *memStore) GetHolding(_ context.Context, id string) (*models.Holding, error) {
	for _, h := range m.holdings {
		if h.ID == id {
			out := h
			return &out, nil
		}
	}
	return nil, &models.NotFoundError{ID: id}
}

func (m *memStore) ListHoldings(_ context.Context) ([]models.Holding, error) {
	out := make([]models.Holding, len(m.holdings))
	copy(out, m.holdings)
	return out, nil
}

func (m *memStore) UpdateHolding(_ context.Context, h *models.Holding) error {
	for i := range m.holdings {
		if m.holdings[i].ID == h.ID {
			m.holdings[i] = *h
			return nil
		}
	}
	return &models.NotFoundError{ID: h.ID}
}

func (m *memStore) DeleteHolding(_ context.Context, id string) error {
	for i := range m.holdings {
		if m.holdings[i].ID == id {
			m.holdings = append(m.holdings[:i], m.holdings[i+1:]...)
			return nil
		}
	}
	return &models.NotFoundError{ID: id}
}

func (m *memStore) FindBySymbol(_ context.Context, symbol string) (*models.Holding, bool, error) {
	for _, h := range m.holdings {
		if strings.EqualFold(h.Symbol, symbol) {
			out := h
			return &out, true, nil
		}
	}
	return nil, false, nil
}

func (m *memStore) Close() error {
	return nil
}

func newTestService() (*Service, *memStore) {
	store := &memStore{}
	return NewService(store, common.NewSilentLogger()), store
}

func TestCreateHolding(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateHolding(context.Background(), models.Holding{
		Symbol:        "aapl",
		PurchasePrice: 150.555,
		Shares:        10,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "AAPL", created.Symbol)
	assert.Equal(t, 150.56, created.PurchasePrice)
	assert.Equal(t, "NA", created.Name)
	assert.Equal(t, "NA", created.PurchaseDate)
}

func TestCreateHoldingRejectsEmptySymbol(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateHolding(context.Background(), models.Holding{
		Symbol:        "  ",
		PurchasePrice: 1,
		Shares:        1,
	})
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
}

func TestCreateHoldingRejectsDuplicateSymbol(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateHolding(context.Background(), models.Holding{
		Symbol: "AAPL", PurchasePrice: 1, Shares: 1,
	})
	require.NoError(t, err)

	_, err = svc.CreateHolding(context.Background(), models.Holding{
		Symbol: "aapl", PurchasePrice: 2, Shares: 2,
	})
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
}

func TestCreateHoldingRejectsBadDate(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateHolding(context.Background(), models.Holding{
		Symbol: "AAPL", PurchasePrice: 1, Shares: 1, PurchaseDate: "2024-01-15",
	})
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))

	_, err = svc.CreateHolding(context.Background(), models.Holding{
		Symbol: "AAPL", PurchasePrice: 1, Shares: 1, PurchaseDate: "15-01-2024",
	})
	require.NoError(t, err)
}

func TestCreateHoldingAcceptsExplicitNADate(t *testing.T) {
	svc, _ := newTestService()

	// "NA" is the stored sentinel for an unknown date; a client echoing a
	// record back must not be rejected for it.
	created, err := svc.CreateHolding(context.Background(), models.Holding{
		Symbol: "AAPL", PurchasePrice: 1, Shares: 1, PurchaseDate: "NA",
	})
	require.NoError(t, err)
	assert.Equal(t, "NA", created.PurchaseDate)
}

func TestListHoldingsQueryFilter(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateHolding(ctx, models.Holding{Symbol: "AAPL", PurchasePrice: 1, Shares: 5})
	require.NoError(t, err)
	_, err = svc.CreateHolding(ctx, models.Holding{Symbol: "MSFT", PurchasePrice: 1, Shares: 7})
	require.NoError(t, err)

	matched, err := svc.ListHoldings(ctx, map[string]string{"symbol": "aapl"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "AAPL", matched[0].Symbol)

	matched, err = svc.ListHoldings(ctx, map[string]string{"shares": "7"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "MSFT", matched[0].Symbol)

	matched, err = svc.ListHoldings(ctx, map[string]string{"nosuchfield": "x"})
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestUpdateHolding(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateHolding(ctx, models.Holding{
		Symbol: "AAPL", PurchasePrice: 100, Shares: 5, PurchaseDate: "15-01-2024",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateHolding(ctx, created.ID, models.Holding{
		ID: created.ID, Symbol: "aapl", PurchasePrice: 120.005, Shares: 8,
		Name: created.Name, PurchaseDate: created.PurchaseDate,
	})
	require.NoError(t, err)

	assert.Equal(t, "AAPL", updated.Symbol)
	assert.Equal(t, 120.0, updated.PurchasePrice)
	assert.Equal(t, 8, updated.Shares)
	assert.Equal(t, "15-01-2024", updated.PurchaseDate)
}

func TestUpdateHoldingIDMismatch(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateHolding(ctx, models.Holding{Symbol: "AAPL", PurchasePrice: 1, Shares: 1})
	require.NoError(t, err)

	_, err = svc.UpdateHolding(ctx, created.ID, models.Holding{
		ID: "other", Symbol: "AAPL", PurchasePrice: 1, Shares: 1,
	})
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
}

func TestUpdateHoldingNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateHolding(context.Background(), "missing", models.Holding{
		ID: "missing", Symbol: "AAPL", PurchasePrice: 1, Shares: 1,
	})
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}

func TestDeleteHolding(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateHolding(ctx, models.Holding{Symbol: "AAPL", PurchasePrice: 1, Shares: 1})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteHolding(ctx, created.ID))

	err = svc.DeleteHolding(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}

func TestStoreSource(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateHolding(ctx, models.Holding{Symbol: "AAPL", PurchasePrice: 1, Shares: 1})
	require.NoError(t, err)

	source := NewStoreSource("local", svc)
	assert.Equal(t, "local", source.Name())

	holdings, err := source.FetchHoldings(ctx)
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, "local", holdings[0].Source)
}
