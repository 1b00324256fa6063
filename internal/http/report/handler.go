package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pinklegion/stand/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context(), time.Now())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(summary); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
