package server

import (
	"net/http"

	"github.com/portview/portview/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)

	// Holdings CRUD (this instance's portfolio store)
	mux.HandleFunc("/stocks", s.handleStocks)
	mux.HandleFunc("/stocks/", s.routeStocks)

	// Valuation
	mux.HandleFunc("/stock-value/", s.handleStockValue)
	mux.HandleFunc("/portfolio-value", s.handlePortfolioValue)
	mux.HandleFunc("/capital-gains", s.handleCapitalGains)
}

// handleStocks dispatches /stocks by method.
func (s *Server) handleStocks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleStockList(w, r)
	case http.MethodPost:
		s.handleStockCreate(w, r)
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

// routeStocks dispatches /stocks/{id} by method.
func (s *Server) routeStocks(w http.ResponseWriter, r *http.Request) {
	id := PathParam(r, "/stocks/")
	if id == "" {
		WriteErrorWithCode(w, http.StatusNotFound, "Not found", CodeNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.handleStockGet(w, r, id)
	case http.MethodPut:
		s.handleStockUpdate(w, r, id)
	case http.MethodDelete:
		s.handleStockDelete(w, r, id)
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	sources := make([]map[string]string, 0, len(s.app.Config.Sources))
	for _, src := range s.app.Config.Sources {
		url := src.URL
		if url == "" {
			url = "(local)"
		}
		sources = append(sources, map[string]string{"name": src.Name, "url": url})
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment":          s.app.Config.Environment,
		"sources":              sources,
		"storage_path":         s.app.Config.Storage.Path,
		"logging_level":        s.app.Config.Logging.Level,
		"price_api_configured": s.app.PriceClient != nil,
		"price_api_key":        maskSecret(s.app.Config.Clients.Price.APIKey),
	})
}

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}
