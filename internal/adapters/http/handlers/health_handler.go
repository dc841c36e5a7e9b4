package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolist-service/internal/platform/logging"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: dto.HealthOK})
}

// Readiness handles GET /health/ready. Returns 200 when the store is
// reachable and 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, ready := dto.NewReadinessResponse(h.registry.CheckAll(r.Context()))
	if ready {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
		slog.Any("checks", resp.Checks),
	)
	writeJSON(w, http.StatusServiceUnavailable, resp)
}
