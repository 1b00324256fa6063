package vehicle

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"

	"github.com/pinklegion/stand/internal/validate"
)

// ErrNotFound is returned when a vehicle id does not exist.
var ErrNotFound = errors.New("vehicle not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=vehicle
type Repository interface {
	CreateVehicle(ctx context.Context, v *Vehicle) error
	GetVehicle(ctx context.Context, id uuid.UUID) (*Vehicle, error)
	ListVehicles(ctx context.Context, filter ListFilter) ([]*Vehicle, error)
	UpdateVehicle(ctx context.Context, v *Vehicle) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	DeleteVehicle(ctx context.Context, id uuid.UUID) error
}

type ListFilter struct {
	Status *Status
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Brand        string
	Model        string
	Year         int
	LicensePlate string
	VIN          string
	Engine       string
	Color        string
	Mileage      int
	PriceCents   int64
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Vehicle, error) {
	v := &Vehicle{
		Brand:      params.Brand,
		Model:      params.Model,
		Engine:     params.Engine,
		Color:      params.Color,
		PriceCents: params.PriceCents,
		Status:     StatusDisponivel,
	}

	if err := applyIdentity(v, params.LicensePlate, params.VIN, params.Year, params.Mileage); err != nil {
		return nil, err
	}

	if err := s.repo.CreateVehicle(ctx, v); err != nil {
		return nil, err
	}

	return v, nil
}

type UpdateParams struct {
	Brand        *string
	Model        *string
	Year         *int
	LicensePlate *string
	VIN          *string
	Engine       *string
	Color        *string
	Mileage      *int
	PriceCents   *int64
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Vehicle, error) {
	v, err := s.repo.GetVehicle(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Brand != nil {
		v.Brand = *params.Brand
	}

	if params.Model != nil {
		v.Model = *params.Model
	}

	if params.Engine != nil {
		v.Engine = *params.Engine
	}

	if params.Color != nil {
		v.Color = *params.Color
	}

	if params.PriceCents != nil {
		v.PriceCents = *params.PriceCents
	}

	plate, vin, year, mileage := v.LicensePlate, v.VIN, v.Year, v.Mileage

	if params.LicensePlate != nil {
		plate = *params.LicensePlate
	}

	if params.VIN != nil {
		vin = *params.VIN
	}

	if params.Year != nil {
		year = *params.Year
	}

	if params.Mileage != nil {
		mileage = *params.Mileage
	}

	if err := applyIdentity(v, plate, vin, year, mileage); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateVehicle(ctx, v); err != nil {
		return nil, err
	}

	return v, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Vehicle, error) {
	return s.repo.GetVehicle(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Vehicle, error) {
	return s.repo.ListVehicles(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteVehicle(ctx, id)
}

// MarkSold flags the vehicle as sold when a contract is signed for it.
func (s *Service) MarkSold(ctx context.Context, id uuid.UUID) error {
	return s.repo.UpdateStatus(ctx, id, StatusVendido)
}

// MarkAvailable returns the vehicle to the lot, e.g. when a contract is
// deleted.
func (s *Service) MarkAvailable(ctx context.Context, id uuid.UUID) error {
	return s.repo.UpdateStatus(ctx, id, StatusDisponivel)
}

func (s *Service) MarkReserved(ctx context.Context, id uuid.UUID) error {
	return s.repo.UpdateStatus(ctx, id, StatusReservado)
}

func applyIdentity(v *Vehicle, plate, vin string, year, mileage int) error {
	res := validate.LicensePlate(plate)
	if !res.Valid {
		return res.Err
	}

	v.LicensePlate = res.Normalized

	res = validate.VIN(vin)
	if !res.Valid {
		return res.Err
	}

	v.VIN = res.Normalized

	res = validate.Year(strconv.Itoa(year))
	if !res.Valid {
		return res.Err
	}

	v.Year = year

	res = validate.Kilometers(strconv.Itoa(mileage))
	if mileage < 0 || !res.Valid {
		return &validate.FieldError{Err: validate.ErrInvalidFormat, Message: "Quilometragem inválida"}
	}

	v.Mileage = mileage

	return nil
}
