package contract

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pinklegion/stand/internal/client"
	"github.com/pinklegion/stand/internal/contract"
	"github.com/pinklegion/stand/internal/document"
	"github.com/pinklegion/stand/internal/money"
	"github.com/pinklegion/stand/internal/schedule"
	"github.com/pinklegion/stand/internal/vehicle"
)

type Handler struct {
	svc       *contract.Service
	clients   *client.Service
	vehicles  *vehicle.Service
	schedules *schedule.Service
	documents *document.Service
}

func NewHandler(
	svc *contract.Service,
	clients *client.Service,
	vehicles *vehicle.Service,
	schedules *schedule.Service,
	documents *document.Service,
) *Handler {
	return &Handler{
		svc:       svc,
		clients:   clients,
		vehicles:  vehicles,
		schedules: schedules,
		documents: documents,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/documents", h.generateDocuments)
	r.Get("/{id}/documents", h.listDocuments)
	r.Get("/{id}/documents/{documentID}/download", h.downloadDocument)
}

type createContractRequest struct {
	ClientID          uuid.UUID `json:"client_id"`
	CarID             uuid.UUID `json:"car_id"`
	TotalPrice        string    `json:"total_price"`
	DownPayment       string    `json:"down_payment"`
	InstallmentCount  int       `json:"installment_count"`
	InstallmentAmount string    `json:"installment_amount"`
	FirstDueDate      time.Time `json:"first_due_date"`
	ContractDate      time.Time `json:"contract_date"`
	DeliveryDate      time.Time `json:"delivery_date"`
	DeliveryPlace     string    `json:"delivery_place"`
	Notes             string    `json:"notes"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	total, err := money.ParseAmount(req.TotalPrice)
	if err != nil {
		http.Error(w, "Preço total inválido", http.StatusBadRequest)
		return
	}

	var down int64
	if req.DownPayment != "" {
		if down, err = money.ParseAmount(req.DownPayment); err != nil {
			http.Error(w, "Valor de entrada inválido", http.StatusBadRequest)
			return
		}
	}

	var installment int64
	if req.InstallmentAmount != "" {
		if installment, err = money.ParseAmount(req.InstallmentAmount); err != nil {
			http.Error(w, "Valor da prestação inválido", http.StatusBadRequest)
			return
		}
	}

	c, err := h.svc.Create(r.Context(), contract.CreateParams{
		ClientID:               req.ClientID,
		CarID:                  req.CarID,
		TotalPriceCents:        total,
		DownPaymentCents:       down,
		InstallmentCount:       req.InstallmentCount,
		InstallmentAmountCents: installment,
		FirstDueDate:           req.FirstDueDate,
		ContractDate:           req.ContractDate,
		DeliveryDate:           req.DeliveryDate,
		DeliveryPlace:          req.DeliveryPlace,
		Notes:                  req.Notes,
	})
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidTerms) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := contract.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		status := contract.Status(s)
		filter.Status = &status
	}

	if s := r.URL.Query().Get("client_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.ClientID = &id
		}
	}

	contracts, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(contracts)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			http.Error(w, "contract not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateContractRequest struct {
	TotalPriceCents        *int64           `json:"total_price_cents,omitempty"`
	DownPaymentCents       *int64           `json:"down_payment_cents,omitempty"`
	InstallmentCount       *int             `json:"installment_count,omitempty"`
	InstallmentAmountCents *int64           `json:"installment_amount_cents,omitempty"`
	FirstDueDate           *time.Time       `json:"first_due_date,omitempty"`
	DeliveryDate           *time.Time       `json:"delivery_date,omitempty"`
	DeliveryPlace          *string          `json:"delivery_place,omitempty"`
	Notes                  *string          `json:"notes,omitempty"`
	Status                 *contract.Status `json:"status,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Update(r.Context(), id, contract.UpdateParams{
		TotalPriceCents:        req.TotalPriceCents,
		DownPaymentCents:       req.DownPaymentCents,
		InstallmentCount:       req.InstallmentCount,
		InstallmentAmountCents: req.InstallmentAmountCents,
		FirstDueDate:           req.FirstDueDate,
		DeliveryDate:           req.DeliveryDate,
		DeliveryPlace:          req.DeliveryPlace,
		Notes:                  req.Notes,
		Status:                 req.Status,
	})
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidTerms) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if errors.Is(err, contract.ErrNotFound) {
			http.Error(w, "contract not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			http.Error(w, "contract not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type generateDocumentsRequest struct {
	IncludeDebtConfession bool `json:"include_debt_confession"`
}

func (h *Handler) generateDocuments(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req generateDocumentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			http.Error(w, "contract not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	cl, err := h.clients.Get(r.Context(), c.ClientID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	v, err := h.vehicles.Get(r.Context(), c.CarID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	entries, err := h.schedules.ListByContract(r.Context(), c.ID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	docs, err := h.documents.Generate(r.Context(), c, cl, v, entries, req.IncludeDebtConfession)
	if err != nil {
		slog.Error("document generation failed", "contract", c.Number, "error", err)
		http.Error(w, "document generation failed", http.StatusBadGateway)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toDocumentResponseList(docs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	docs, err := h.documents.ListByContract(r.Context(), id)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toDocumentResponseList(docs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) downloadDocument(w http.ResponseWriter, r *http.Request) {
	docID, err := uuid.Parse(chi.URLParam(r, "documentID"))
	if err != nil {
		http.Error(w, "invalid document id", http.StatusBadRequest)
		return
	}

	url, err := h.documents.DownloadURL(r.Context(), docID)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			http.Error(w, "document not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

type contractResponse struct {
	ID                     uuid.UUID       `json:"id"`
	Number                 string          `json:"number"`
	ClientID               uuid.UUID       `json:"client_id"`
	CarID                  uuid.UUID       `json:"car_id"`
	TotalPriceCents        int64           `json:"total_price_cents"`
	TotalPrice             string          `json:"total_price"`
	DownPaymentCents       int64           `json:"down_payment_cents"`
	FinancedCents          int64           `json:"financed_cents"`
	Financed               string          `json:"financed"`
	InstallmentCount       int             `json:"installment_count"`
	InstallmentAmountCents int64           `json:"installment_amount_cents"`
	InstallmentAmount      string          `json:"installment_amount"`
	FirstDueDate           time.Time       `json:"first_due_date"`
	ContractDate           time.Time       `json:"contract_date"`
	DeliveryDate           *time.Time      `json:"delivery_date,omitempty"`
	DeliveryPlace          string          `json:"delivery_place,omitempty"`
	Notes                  string          `json:"notes,omitempty"`
	Status                 contract.Status `json:"status"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(c *contract.Contract) contractResponse {
	resp := contractResponse{
		ID:                     c.ID,
		Number:                 c.Number,
		ClientID:               c.ClientID,
		CarID:                  c.CarID,
		TotalPriceCents:        c.TotalPriceCents,
		TotalPrice:             money.FormatEUR(c.TotalPriceCents),
		DownPaymentCents:       c.DownPaymentCents,
		FinancedCents:          c.FinancedCents,
		Financed:               money.FormatEUR(c.FinancedCents),
		InstallmentCount:       c.InstallmentCount,
		InstallmentAmountCents: c.InstallmentAmountCents,
		InstallmentAmount:      money.FormatEUR(c.InstallmentAmountCents),
		FirstDueDate:           c.FirstDueDate,
		ContractDate:           c.ContractDate,
		DeliveryPlace:          c.DeliveryPlace,
		Notes:                  c.Notes,
		Status:                 c.Status,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}

	if !c.DeliveryDate.IsZero() {
		d := c.DeliveryDate
		resp.DeliveryDate = &d
	}

	return resp
}

func toResponseList(contracts []*contract.Contract) []contractResponse {
	resp := make([]contractResponse, len(contracts))
	for i, c := range contracts {
		resp[i] = toResponse(c)
	}

	return resp
}

type documentResponse struct {
	ID         uuid.UUID     `json:"id"`
	ContractID uuid.UUID     `json:"contract_id"`
	Kind       document.Kind `json:"kind"`
	Path       string        `json:"path"`
	CreatedAt  time.Time     `json:"created_at"`
}

func toDocumentResponseList(docs []*document.Stored) []documentResponse {
	resp := make([]documentResponse, len(docs))
	for i, d := range docs {
		resp[i] = documentResponse{
			ID:         d.ID,
			ContractID: d.ContractID,
			Kind:       d.Kind,
			Path:       d.Path,
			CreatedAt:  d.CreatedAt,
		}
	}

	return resp
}
