package vehicle

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pinklegion/stand/internal/validate"
	"github.com/pinklegion/stand/internal/vehicle"
)

type Handler struct {
	svc *vehicle.Service
}

func NewHandler(svc *vehicle.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Patch("/{id}/status", h.updateStatus)
	r.Delete("/{id}", h.delete)
}

type createVehicleRequest struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"license_plate"`
	VIN          string `json:"vin"`
	Engine       string `json:"engine"`
	Color        string `json:"color"`
	Mileage      int    `json:"mileage"`
	PriceCents   int64  `json:"price_cents"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	v, err := h.svc.Create(r.Context(), vehicle.CreateParams{
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		LicensePlate: req.LicensePlate,
		VIN:          req.VIN,
		Engine:       req.Engine,
		Color:        req.Color,
		Mileage:      req.Mileage,
		PriceCents:   req.PriceCents,
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

	if err := json.NewEncoder(w).Encode(toResponse(v)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := vehicle.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		status := vehicle.Status(s)
		filter.Status = &status
	}

	vehicles, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(vehicles)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	v, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, vehicle.ErrNotFound) {
			http.Error(w, "vehicle not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(v)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateVehicleRequest struct {
	Brand        *string `json:"brand,omitempty"`
	Model        *string `json:"model,omitempty"`
	Year         *int    `json:"year,omitempty"`
	LicensePlate *string `json:"license_plate,omitempty"`
	VIN          *string `json:"vin,omitempty"`
	Engine       *string `json:"engine,omitempty"`
	Color        *string `json:"color,omitempty"`
	Mileage      *int    `json:"mileage,omitempty"`
	PriceCents   *int64  `json:"price_cents,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	v, err := h.svc.Update(r.Context(), id, vehicle.UpdateParams{
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		LicensePlate: req.LicensePlate,
		VIN:          req.VIN,
		Engine:       req.Engine,
		Color:        req.Color,
		Mileage:      req.Mileage,
		PriceCents:   req.PriceCents,
	})
	if err != nil {
		var fieldErr *validate.FieldError
		if errors.As(err, &fieldErr) {
			http.Error(w, fieldErr.Message, http.StatusBadRequest)
			return
		}

		if errors.Is(err, vehicle.ErrNotFound) {
			http.Error(w, "vehicle not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(v)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateStatusRequest struct {
	Status vehicle.Status `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	switch req.Status {
	case vehicle.StatusDisponivel:
		err = h.svc.MarkAvailable(r.Context(), id)
	case vehicle.StatusReservado:
		err = h.svc.MarkReserved(r.Context(), id)
	case vehicle.StatusVendido:
		err = h.svc.MarkSold(r.Context(), id)
	default:
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	if err != nil {
		if errors.Is(err, vehicle.ErrNotFound) {
			http.Error(w, "vehicle not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
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

type vehicleResponse struct {
	ID           uuid.UUID      `json:"id"`
	Brand        string         `json:"brand"`
	Model        string         `json:"model"`
	Year         int            `json:"year"`
	LicensePlate string         `json:"license_plate"`
	VIN          string         `json:"vin"`
	Engine       string         `json:"engine,omitempty"`
	Color        string         `json:"color,omitempty"`
	Mileage      int            `json:"mileage"`
	PriceCents   int64          `json:"price_cents"`
	Status       vehicle.Status `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    *time.Time     `json:"updated_at,omitempty"`
}

func toResponse(v *vehicle.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:           v.ID,
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		LicensePlate: v.LicensePlate,
		VIN:          v.VIN,
		Engine:       v.Engine,
		Color:        v.Color,
		Mileage:      v.Mileage,
		PriceCents:   v.PriceCents,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func toResponseList(vehicles []*vehicle.Vehicle) []vehicleResponse {
	resp := make([]vehicleResponse, len(vehicles))
	for i, v := range vehicles {
		resp[i] = toResponse(v)
	}

	return resp
}
