package server

import (
	"net/http"

	"github.com/portview/portview/internal/models"
)

// holdingRequest is the wire body for POST and PUT /stocks. Pointer fields
// distinguish "absent" from zero values: symbol, purchase_price, and shares
// are required; name and purchase_date fall back to defaults (POST) or the
// stored values (PUT).
type holdingRequest struct {
	ID            *string  `json:"id"`
	Name          *string  `json:"name"`
	Symbol        *string  `json:"symbol"`
	PurchasePrice *float64 `json:"purchase_price"`
	PurchaseDate  *string  `json:"purchase_date"`
	Shares        *int     `json:"shares"`
}

func (req *holdingRequest) hasRequiredFields() bool {
	return req.Symbol != nil && req.PurchasePrice != nil && req.Shares != nil
}

// handleStockList handles GET /stocks with optional field=value filtering.
func (s *Server) handleStockList(w http.ResponseWriter, r *http.Request) {
	query := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}

	holdings, err := s.app.HoldingService.ListHoldings(r.Context(), query)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	if holdings == nil {
		holdings = []models.Holding{}
	}
	WriteJSON(w, http.StatusOK, holdings)
}

// handleStockCreate handles POST /stocks.
func (s *Server) handleStockCreate(w http.ResponseWriter, r *http.Request) {
	if !RequireJSON(w, r) {
		return
	}

	var req holdingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if !req.hasRequiredFields() {
		WriteErrorWithCode(w, http.StatusBadRequest, "Malformed data", CodeMalformedInput)
		return
	}

	h := models.Holding{
		Symbol:        *req.Symbol,
		PurchasePrice: *req.PurchasePrice,
		Shares:        *req.Shares,
	}
	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.PurchaseDate != nil {
		h.PurchaseDate = *req.PurchaseDate
	}

	created, err := s.app.HoldingService.CreateHolding(r.Context(), h)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]string{"id": created.ID})
}

// handleStockGet handles GET /stocks/{id}.
func (s *Server) handleStockGet(w http.ResponseWriter, r *http.Request, id string) {
	h, err := s.app.HoldingService.GetHolding(r.Context(), id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, h)
}

// handleStockUpdate handles PUT /stocks/{id}. Required fields must be
// present; name and purchase_date keep their stored values when absent.
func (s *Server) handleStockUpdate(w http.ResponseWriter, r *http.Request, id string) {
	existing, err := s.app.HoldingService.GetHolding(r.Context(), id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	if !RequireJSON(w, r) {
		return
	}

	var req holdingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.ID == nil || *req.ID != id || !req.hasRequiredFields() {
		WriteErrorWithCode(w, http.StatusBadRequest, "Malformed data", CodeMalformedInput)
		return
	}

	h := models.Holding{
		ID:            id,
		Name:          existing.Name,
		Symbol:        *req.Symbol,
		PurchasePrice: *req.PurchasePrice,
		PurchaseDate:  existing.PurchaseDate,
		Shares:        *req.Shares,
	}
	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.PurchaseDate != nil {
		h.PurchaseDate = *req.PurchaseDate
	}

	if _, err := s.app.HoldingService.UpdateHolding(r.Context(), id, h); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"id": id})
}

// handleStockDelete handles DELETE /stocks/{id}.
func (s *Server) handleStockDelete(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.app.HoldingService.DeleteHolding(r.Context(), id); err != nil {
		WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
