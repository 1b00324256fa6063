package client

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pinklegion/stand/internal/client"
	"github.com/pinklegion/stand/internal/validate"
)

type Handler struct {
	svc *client.Service
}

func NewHandler(svc *client.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createClientRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"`
	CitizenCard string `json:"citizen_card"`
	NIF         string `json:"nif"`
	IBAN        string `json:"iban"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), client.CreateParams{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		PostalCode:  req.PostalCode,
		Country:     req.Country,
		CitizenCard: req.CitizenCard,
		NIF:         req.NIF,
		IBAN:        req.IBAN,
	})
	if err != nil {
		var fieldErr *validate.FieldError
		if errors.As(err, &fieldErr) {
			http.Error(w, fieldErr.Message, http.StatusBadRequest)
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
	filter := client.ListFilter{}

	if s := r.URL.Query().Get("search"); s != "" {
		filter.Search = &s
	}

	clients, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(clients)); err != nil {
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
		if errors.Is(err, client.ErrNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
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

type updateClientRequest struct {
	FullName    *string `json:"full_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	PostalCode  *string `json:"postal_code,omitempty"`
	Country     *string `json:"country,omitempty"`
	CitizenCard *string `json:"citizen_card,omitempty"`
	NIF         *string `json:"nif,omitempty"`
	IBAN        *string `json:"iban,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Update(r.Context(), id, client.UpdateParams{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		PostalCode:  req.PostalCode,
		Country:     req.Country,
		CitizenCard: req.CitizenCard,
		NIF:         req.NIF,
		IBAN:        req.IBAN,
	})
	if err != nil {
		var fieldErr *validate.FieldError
		if errors.As(err, &fieldErr) {
			http.Error(w, fieldErr.Message, http.StatusBadRequest)
			return
		}

		if errors.Is(err, client.ErrNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
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
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type clientResponse struct {
	ID          uuid.UUID  `json:"id"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Address     string     `json:"address,omitempty"`
	City        string     `json:"city,omitempty"`
	PostalCode  string     `json:"postal_code,omitempty"`
	Country     string     `json:"country,omitempty"`
	CitizenCard string     `json:"citizen_card,omitempty"`
	NIF         string     `json:"nif"`
	IBAN        string     `json:"iban,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func toResponse(c *client.Client) clientResponse {
	return clientResponse{
		ID:          c.ID,
		FullName:    c.FullName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		City:        c.City,
		PostalCode:  c.PostalCode,
		Country:     c.Country,
		CitizenCard: c.CitizenCard,
		NIF:         c.NIF,
		IBAN:        c.IBAN,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toResponseList(clients []*client.Client) []clientResponse {
	resp := make([]clientResponse, len(clients))
	for i, c := range clients {
		resp[i] = toResponse(c)
	}

	return resp
}
