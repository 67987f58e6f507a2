package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/portview/portview/internal/models"
)

// handlePortfolioValue handles GET /portfolio-value: the live value of every
// holding across all configured sources.
func (s *Server) handlePortfolioValue(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	result, err := s.app.ValuationService.Aggregate(r.Context(), models.HoldingFilter{}, models.ModeValue)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, models.PortfolioValue{
		Date:           time.Now().Format("2006-01-02"),
		PortfolioValue: result.TotalValue,
	})
}

// handleCapitalGains handles
// GET /capital-gains?portfolio=<name>&numsharesgt=<int>&numshareslt=<int>.
// portfolio omitted means all configured sources; the numeric share filters
// are optional and combinable.
func (s *Server) handleCapitalGains(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	filter, err := parseGainsFilter(r)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	result, err := s.app.ValuationService.Aggregate(r.Context(), filter, models.ModeCapitalGain)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, models.CapitalGains{
		TotalCapitalGain: result.TotalCapitalGain,
	})
}

// handleStockValue handles GET /stock-value/{id} for one local holding.
func (s *Server) handleStockValue(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	id := PathParam(r, "/stock-value/")
	if id == "" {
		WriteErrorWithCode(w, http.StatusNotFound, "Not found", CodeNotFound)
		return
	}

	h, err := s.app.HoldingService.GetHolding(r.Context(), id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	v, err := s.app.ValuationService.ValueHolding(r.Context(), *h)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, models.StockValue{
		Symbol:     v.Symbol,
		Ticker:     v.Price,
		StockValue: v.Value,
	})
}

// parseGainsFilter builds the holding filter from query parameters. A value
// that fails integer parsing is a caller error, rejected before any network
// call is made.
func parseGainsFilter(r *http.Request) (models.HoldingFilter, error) {
	filter := models.HoldingFilter{
		Source: r.URL.Query().Get("portfolio"),
	}

	if raw := r.URL.Query().Get("numsharesgt"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return filter, models.NewValidationError("numsharesgt must be an integer")
		}
		filter.SharesGT = &n
	}

	if raw := r.URL.Query().Get("numshareslt"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return filter, models.NewValidationError("numshareslt must be an integer")
		}
		filter.SharesLT = &n
	}

	return filter, nil
}
