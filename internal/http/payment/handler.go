package payment

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pinklegion/stand/internal/money"
	"github.com/pinklegion/stand/internal/schedule"
)

type Handler struct {
	svc *schedule.Service
}

func NewHandler(svc *schedule.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/contract/{contractID}", h.listByContract)
	r.Get("/contract/{contractID}/overview", h.overview)
	r.Patch("/{id}/pay", h.markPaid)
	r.Patch("/{id}/cancel", h.markCancelled)
}

func (h *Handler) listByContract(w http.ResponseWriter, r *http.Request) {
	contractID, err := uuid.Parse(chi.URLParam(r, "contractID"))
	if err != nil {
		http.Error(w, "invalid contract id", http.StatusBadRequest)
		return
	}

	entries, err := h.svc.ListByContract(r.Context(), contractID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(entries, time.Now())); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	contractID, err := uuid.Parse(chi.URLParam(r, "contractID"))
	if err != nil {
		http.Error(w, "invalid contract id", http.StatusBadRequest)
		return
	}

	ov, err := h.svc.Overview(r.Context(), contractID, time.Now())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toOverviewResponse(ov)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type markPaidRequest struct {
	PaidAt *time.Time `json:"paid_at,omitempty"`
}

func (h *Handler) markPaid(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req markPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	paidAt := time.Now()
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	if err := h.svc.MarkPaid(r.Context(), id, paidAt); err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			http.Error(w, "installment not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) markCancelled(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.MarkCancelled(r.Context(), id); err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			http.Error(w, "installment not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type entryResponse struct {
	ID          uuid.UUID       `json:"id"`
	ContractID  uuid.UUID       `json:"contract_id"`
	Number      int             `json:"number"`
	AmountCents int64           `json:"amount_cents"`
	Amount      string          `json:"amount"`
	DueDate     time.Time       `json:"due_date"`
	Status      schedule.Status `json:"status"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// toResponseList derives the effective status per entry so a pending row
// past its due date reads as overdue without a background job flipping it.
func toResponseList(entries []*schedule.Entry, today time.Time) []entryResponse {
	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = entryResponse{
			ID:          e.ID,
			ContractID:  e.ContractID,
			Number:      e.Number,
			AmountCents: e.AmountCents,
			Amount:      money.FormatEUR(e.AmountCents),
			DueDate:     e.DueDate,
			Status:      schedule.EffectiveStatus(e, today),
			PaidAt:      e.PaidAt,
			CreatedAt:   e.CreatedAt,
		}
	}

	return resp
}

type overviewResponse struct {
	Total            int    `json:"total"`
	Paid             int    `json:"paid"`
	Pending          int    `json:"pending"`
	Overdue          int    `json:"overdue"`
	Cancelled        int    `json:"cancelled"`
	PaidCents        int64  `json:"paid_cents"`
	PaidAmount       string `json:"paid_amount"`
	OutstandingCents int64  `json:"outstanding_cents"`
	Outstanding      string `json:"outstanding"`
}

func toOverviewResponse(ov *schedule.Overview) overviewResponse {
	return overviewResponse{
		Total:            ov.Total,
		Paid:             ov.Paid,
		Pending:          ov.Pending,
		Overdue:          ov.Overdue,
		Cancelled:        ov.Cancelled,
		PaidCents:        ov.PaidCents,
		PaidAmount:       money.FormatEUR(ov.PaidCents),
		OutstandingCents: ov.OutstandingCents,
		Outstanding:      money.FormatEUR(ov.OutstandingCents),
	}
}
