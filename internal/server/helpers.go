package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/portview/portview/internal/models"
)

// ErrorResponse is the standard error format for REST API responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Stable error codes surfaced to clients.
const (
	CodeMalformedInput      = "malformed_input"
	CodeNotFound            = "not_found"
	CodeUpstreamUnavailable = "upstream_unavailable"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteError writes a JSON error response.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// WriteErrorWithCode writes a JSON error response with an error code.
func WriteErrorWithCode(w http.ResponseWriter, statusCode int, message, code string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message, Code: code})
}

// WriteDomainError maps the core error taxonomy to transport outcomes:
// validation → 400, missing holding → 404, upstream failure → 500 carrying
// the upstream status in the message.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case models.IsValidation(err):
		WriteErrorWithCode(w, http.StatusBadRequest, err.Error(), CodeMalformedInput)
	case models.IsNotFound(err):
		WriteErrorWithCode(w, http.StatusNotFound, "Not found", CodeNotFound)
	default:
		if ue, ok := models.AsUpstream(err); ok {
			WriteErrorWithCode(w, http.StatusInternalServerError, ue.Error(), CodeUpstreamUnavailable)
			return
		}
		WriteError(w, http.StatusInternalServerError, err.Error())
	}
}

// RequireMethod validates the HTTP method and returns true if it matches.
// If it doesn't match, it writes a 405 response and returns false.
func RequireMethod(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	return false
}

// RequireJSON validates the request content type and returns true if it is
// application/json. Otherwise it writes a 415 response and returns false.
func RequireJSON(w http.ResponseWriter, r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "application/json" || strings.HasPrefix(ct, "application/json;") {
		return true
	}
	WriteError(w, http.StatusUnsupportedMediaType, "Expected application/json media type")
	return false
}

// DecodeJSON reads and decodes JSON from the request body into v.
// Returns false and writes a 400 error if decoding fails.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if r.Body == nil {
		WriteErrorWithCode(w, http.StatusBadRequest, "Request body is required", CodeMalformedInput)
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB limit
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteErrorWithCode(w, http.StatusBadRequest, "Malformed data", CodeMalformedInput)
		return false
	}
	return true
}

// PathParam extracts the single path parameter following prefix, e.g. the
// {id} of /stocks/{id}. It returns "" when the parameter is missing or the
// path carries further segments.
func PathParam(r *http.Request, prefix string) string {
	path := r.URL.Path
	if !strings.HasPrefix(path, prefix) {
		return ""
	}
	rest := path[len(prefix):]
	if rest == "" || strings.Contains(rest, "/") {
		return ""
	}
	return rest
}
