// Package validation exposes the field validators to the browser forms so
// they can check NIF, IBAN, plate and amount inputs before submitting.
package validation

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pinklegion/stand/internal/money"
	"github.com/pinklegion/stand/internal/validate"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.validateField)
}

type validateFieldRequest struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type validateFieldResponse struct {
	Valid      bool   `json:"valid"`
	Normalized string `json:"normalized,omitempty"`
	Message    string `json:"message,omitempty"`
}

func (h *Handler) validateField(w http.ResponseWriter, r *http.Request) {
	var req validateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var resp validateFieldResponse

	switch req.Kind {
	case "nif":
		resp = toFieldResponse(validate.NIF(req.Value))
	case "iban":
		resp = toFieldResponse(validate.IBAN(req.Value))
	case "vin":
		resp = toFieldResponse(validate.VIN(req.Value))
	case "license_plate":
		resp = toFieldResponse(validate.LicensePlate(req.Value))
	case "year":
		resp = toFieldResponse(validate.Year(req.Value))
	case "kilometers":
		resp = toFieldResponse(validate.Kilometers(req.Value))
	case "citizen_card":
		resp = toFieldResponse(validate.CitizenCard(req.Value))
	case "amount":
		resp = toAmountResponse(req.Value)
	default:
		http.Error(w, "unknown kind", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toFieldResponse(res validate.Result) validateFieldResponse {
	resp := validateFieldResponse{
		Valid:      res.Valid,
		Normalized: res.Normalized,
	}

	var fieldErr *validate.FieldError
	if errors.As(res.Err, &fieldErr) {
		resp.Message = fieldErr.Message
	}

	return resp
}

func toAmountResponse(raw string) validateFieldResponse {
	cents, err := money.ParseAmount(raw)
	if err != nil {
		return validateFieldResponse{Message: "Valor inválido"}
	}

	return validateFieldResponse{Valid: true, Normalized: money.FormatEUR(cents)}
}
