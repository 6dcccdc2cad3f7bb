package http

import (
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/ekshello/pkg/domain/interfaces"
)

// HealthHandler serves the health check endpoint
type HealthHandler struct {
	healthUC interfaces.HealthUseCase
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(healthUC interfaces.HealthUseCase) *HealthHandler {
	return &HealthHandler{
		healthUC: healthUC,
	}
}

// Handle handles health check requests
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	status, err := h.healthUC.CheckHealth(r.Context())
	if err != nil {
		ctxlog.From(r.Context()).Error("Failed to check health", "error", err)
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, status)
}
