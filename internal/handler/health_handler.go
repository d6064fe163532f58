package handler

import (
	"net/http"

	"abbey-bites/internal/model"
	"abbey-bites/internal/repository"

	"github.com/rs/zerolog"
)

// maxDiagnosticErrorLen bounds the length of error text reported inline by
// the diagnostic endpoint.
const maxDiagnosticErrorLen = 50

// maxDiagnosticCollections bounds the number of collection names reported.
const maxDiagnosticCollections = 10

// HealthHandler serves the liveness and diagnostic endpoints.
type HealthHandler struct {
	diag           repository.DiagnosticsRepository
	databaseURLSet bool
	logger         zerolog.Logger
}

// NewHealthHandler creates a new health handler. databaseURLSet reports
// whether the connection string was explicitly configured.
func NewHealthHandler(diag repository.DiagnosticsRepository, databaseURLSet bool, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		diag:           diag,
		databaseURLSet: databaseURLSet,
		logger:         logger.With().Str("handler", "health").Logger(),
	}
}

// Root handles GET / requests. Always returns the fixed liveness payload.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.RootResponse{Message: "Abbey Bites API is running"})
}

// Test handles GET /test requests. Probe failures are reported inline in the
// response body; this endpoint never fails the request itself.
func (h *HealthHandler) Test(w http.ResponseWriter, r *http.Request) {
	resp := model.DiagnosticsResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "not set",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.databaseURLSet {
		resp.DatabaseURL = "set"
	}

	if err := h.diag.Ping(r.Context()); err != nil {
		resp.Database = "error: " + truncate(err.Error(), maxDiagnosticErrorLen)
		writeJSON(w, http.StatusOK, resp)
		return
	}

	resp.Database = "connected"
	resp.ConnectionStatus = "connected"
	resp.DatabaseName = h.diag.DatabaseName()

	collections, err := h.diag.ListCollections(r.Context(), maxDiagnosticCollections)
	if err != nil {
		resp.Database = "connected but error: " + truncate(err.Error(), maxDiagnosticErrorLen)
	} else {
		resp.Collections = collections
	}

	writeJSON(w, http.StatusOK, resp)
}

// truncate returns the first n bytes of s.
func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
