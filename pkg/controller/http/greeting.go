package http

import (
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/ekshello/pkg/domain/interfaces"
)

// GreetingHandler serves the root endpoint
type GreetingHandler struct {
	greetingUC interfaces.GreetingUseCase
}

// NewGreetingHandler creates a new GreetingHandler
func NewGreetingHandler(greetingUC interfaces.GreetingUseCase) *GreetingHandler {
	return &GreetingHandler{
		greetingUC: greetingUC,
	}
}

// Handle handles root requests
func (h *GreetingHandler) Handle(w http.ResponseWriter, r *http.Request) {
	greeting, err := h.greetingUC.Greet(r.Context())
	if err != nil {
		ctxlog.From(r.Context()).Error("Failed to build greeting", "error", err)
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, greeting)
}
