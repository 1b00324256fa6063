// Package contract manages sale contracts: the legal/financial record that
// ties a client to a vehicle, a payment plan and the generated documents.
package contract

import (
	"time"

	"github.com/google/uuid"

	"github.com/pinklegion/stand/internal/schedule"
)

// Status is the lifecycle state of a contract.
type Status string

const (
	StatusAtivo     Status = "ativo"
	StatusConcluido Status = "concluido"
	StatusCancelado Status = "cancelado"
)

// Contract is one signed sale. The financial fields mirror schedule.Terms;
// FinancedCents and InstallmentAmountCents are stored denormalized the way
// the dashboard reads them.
type Contract struct {
	ID                     uuid.UUID
	Number                 string // e.g. AUTO-2024-0001
	ClientID               uuid.UUID
	CarID                  uuid.UUID
	TotalPriceCents        int64
	DownPaymentCents       int64
	FinancedCents          int64
	InstallmentCount       int
	InstallmentAmountCents int64
	FirstDueDate           time.Time
	ContractDate           time.Time
	DeliveryDate           time.Time
	DeliveryPlace          string
	Notes                  string
	Status                 Status
	CreatedAt              time.Time
	UpdatedAt              *time.Time
	DeletedAt              *time.Time
}

// Terms extracts the financial terms used by the schedule generator.
func (c *Contract) Terms() schedule.Terms {
	return schedule.Terms{
		TotalPriceCents:        c.TotalPriceCents,
		DownPaymentCents:       c.DownPaymentCents,
		InstallmentCount:       c.InstallmentCount,
		InstallmentAmountCents: c.InstallmentAmountCents,
		FirstDueDate:           c.FirstDueDate,
	}
}
