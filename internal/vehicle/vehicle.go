// Package vehicle manages the dealership's car inventory.
package vehicle

import (
	"time"

	"github.com/google/uuid"
)

// Status is the sale state of a vehicle.
type Status string

const (
	StatusDisponivel Status = "disponivel"
	StatusReservado  Status = "reservado"
	StatusVendido    Status = "vendido"
)

// Vehicle is one car on the lot.
type Vehicle struct {
	ID           uuid.UUID
	Brand        string
	Model        string
	Year         int
	LicensePlate string
	VIN          string
	Engine       string
	Color        string
	Mileage      int
	PriceCents   int64
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
}
