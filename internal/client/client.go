// Package client manages the dealership's buyer records.
package client

import (
	"time"

	"github.com/google/uuid"
)

// Client is a buyer on file. NIF is mandatory; IBAN and the citizen card
// number are captured when a contract needs them.
type Client struct {
	ID          uuid.UUID
	FullName    string
	Email       string
	Phone       string
	Address     string
	City        string
	PostalCode  string
	Country     string
	CitizenCard string
	NIF         string
	IBAN        string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}
