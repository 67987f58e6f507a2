// Package valuation implements the cross-store aggregation engine.
//
// One Aggregate call is one request-scoped pipeline: select sources, fetch
// their holdings, concatenate in source order, filter, price every remaining
// holding, reduce to the requested metric. The pipeline fails fast — the
// first source fetch or price lookup that errors aborts the whole request
// and cancels its in-flight siblings; a partially-summed total is never
// returned.
package valuation

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/portview/portview/internal/common"
	"github.com/portview/portview/internal/interfaces"
	"github.com/portview/portview/internal/models"
)

// DefaultLookupConcurrency bounds the per-request price lookup fan-out.
const DefaultLookupConcurrency = 4

// Service implements ValuationService
type Service struct {
	sources []interfaces.HoldingSource
	price   interfaces.PriceClient
	logger  *common.Logger

	lookupConcurrency int
}

// Option configures the service
type Option func(*Service)

// WithLookupConcurrency bounds concurrent price lookups per request.
func WithLookupConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.lookupConcurrency = n
		}
	}
}

// NewService creates a new valuation service over the given sources, in
// aggregation order.
func NewService(sources []interfaces.HoldingSource, price interfaces.PriceClient, logger *common.Logger, opts ...Option) *Service {
	s := &Service{
		sources:           sources,
		price:             price,
		logger:            logger,
		lookupConcurrency: DefaultLookupConcurrency,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Aggregate runs the full valuation pipeline for one request.
func (s *Service) Aggregate(ctx context.Context, filter models.HoldingFilter, mode models.AggregateMode) (*models.AggregationResult, error) {
	// Resolve the source selection before any network call. An unknown name
	// is a caller error, distinct from a reachable-but-empty store.
	selected, err := s.selectSources(filter.Source)
	if err != nil {
		return nil, err
	}

	holdings, err := s.fetchAll(ctx, selected)
	if err != nil {
		return nil, err
	}

	holdings = filter.Apply(holdings)

	valuations, err := s.priceAll(ctx, holdings)
	if err != nil {
		return nil, err
	}

	result := &models.AggregationResult{
		Mode:     mode,
		Holdings: valuations,
	}

	switch mode {
	case models.ModeCapitalGain:
		// Sum of already-rounded per-holding gains; no final re-rounding.
		for _, v := range valuations {
			result.TotalCapitalGain += v.CapitalGain
		}
	default:
		var total float64
		for _, v := range valuations {
			total += v.Value
		}
		result.TotalValue = models.Round2(total)
	}

	s.logger.Debug().
		Str("mode", string(mode)).
		Int("holdings", len(valuations)).
		Msg("Aggregation complete")

	return result, nil
}

// ValueHolding prices a single holding.
func (s *Service) ValueHolding(ctx context.Context, h models.Holding) (*models.HoldingValuation, error) {
	quote, err := s.price.StockPrice(ctx, h.Symbol)
	if err != nil {
		return nil, err
	}

	value := models.MulShares(h.Shares, quote.Price)
	return &models.HoldingValuation{
		Symbol:      h.Symbol,
		Price:       models.Round2(quote.Price),
		Value:       value,
		CapitalGain: models.SubRound(value, h.PurchasePrice),
	}, nil
}

// selectSources returns the sources matching name, or all sources when name
// is empty.
func (s *Service) selectSources(name string) ([]interfaces.HoldingSource, error) {
	if name == "" {
		return s.sources, nil
	}
	for _, src := range s.sources {
		if src.Name() == name {
			return []interfaces.HoldingSource{src}, nil
		}
	}
	return nil, models.NewValidationError("unknown portfolio source %q", name)
}

// fetchAll fetches every selected source concurrently and concatenates the
// results in source order. The first fetch error cancels the rest.
func (s *Service) fetchAll(ctx context.Context, sources []interfaces.HoldingSource) ([]models.Holding, error) {
	g, gctx := errgroup.WithContext(ctx)
	fetched := make([][]models.Holding, len(sources))

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			holdings, err := src.FetchHoldings(gctx)
			if err != nil {
				return err
			}
			fetched[i] = holdings
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []models.Holding
	for _, batch := range fetched {
		merged = append(merged, batch...)
	}
	return merged, nil
}

// priceAll looks up every holding's price with bounded concurrency and
// computes the per-holding metrics. The first lookup failure cancels the
// remaining lookups and fails the request.
func (s *Service) priceAll(ctx context.Context, holdings []models.Holding) ([]models.HoldingValuation, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.lookupConcurrency)

	valuations := make([]models.HoldingValuation, len(holdings))
	for i, h := range holdings {
		i, h := i, h
		g.Go(func() error {
			quote, err := s.price.StockPrice(gctx, h.Symbol)
			if err != nil {
				return err
			}

			value := models.MulShares(h.Shares, quote.Price)
			valuations[i] = models.HoldingValuation{
				Symbol:      h.Symbol,
				Price:       models.Round2(quote.Price),
				Value:       value,
				CapitalGain: models.SubRound(value, h.PurchasePrice),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return valuations, nil
}

// Ensure Service implements ValuationService
var _ interfaces.ValuationService = (*Service)(nil)
