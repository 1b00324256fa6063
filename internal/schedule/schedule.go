// Package schedule turns a contract's financial terms into its installment
// plan (plano de pagamentos) and manages the stored installment rows.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pinklegion/stand/internal/money"
)

// Status is the persisted lifecycle state of one installment.
type Status string

const (
	StatusPendente  Status = "pendente"
	StatusPago      Status = "pago"
	StatusAtrasado  Status = "atrasado"
	StatusCancelado Status = "cancelado"
)

// ErrInvalidTerms is returned before any computation when the contract
// terms are not financially coherent.
var ErrInvalidTerms = errors.New("invalid contract terms")

// Terms are the financial inputs of a contract. InstallmentAmountCents may
// be zero, meaning "derive from the financed balance"; a non-zero value is
// a manual override and is used as-is even when it does not multiply back
// to the financed balance.
type Terms struct {
	TotalPriceCents        int64
	DownPaymentCents       int64
	InstallmentCount       int
	InstallmentAmountCents int64
	FirstDueDate           time.Time
}

func (t Terms) Validate() error {
	switch {
	case t.TotalPriceCents <= 0:
		return fmt.Errorf("%w: total price must be positive", ErrInvalidTerms)
	case t.DownPaymentCents < 0:
		return fmt.Errorf("%w: down payment cannot be negative", ErrInvalidTerms)
	case t.DownPaymentCents > t.TotalPriceCents:
		return fmt.Errorf("%w: down payment exceeds total price", ErrInvalidTerms)
	case t.InstallmentCount < 0:
		return fmt.Errorf("%w: installment count cannot be negative", ErrInvalidTerms)
	case t.InstallmentAmountCents < 0:
		return fmt.Errorf("%w: installment amount cannot be negative", ErrInvalidTerms)
	case t.InstallmentCount > 0 && t.FirstDueDate.IsZero():
		return fmt.Errorf("%w: first due date is required", ErrInvalidTerms)
	}

	return nil
}

// FinancedCents is the balance left after the down payment.
func (t Terms) FinancedCents() int64 {
	return t.TotalPriceCents - t.DownPaymentCents
}

// ResolveInstallmentCents returns the per-installment amount: the manual
// override when supplied, otherwise the financed balance split evenly with
// round-half-away-from-zero cents. Rounding drift against the financed
// balance is not reconciled.
func (t Terms) ResolveInstallmentCents() int64 {
	if t.InstallmentAmountCents > 0 {
		return t.InstallmentAmountCents
	}

	if t.InstallmentCount == 0 {
		return 0
	}

	return money.SplitEvenCents(t.FinancedCents(), t.InstallmentCount)
}

// Entry is one scheduled installment of a contract.
type Entry struct {
	ID          uuid.UUID
	ContractID  uuid.UUID
	Number      int // 1-based, contiguous
	AmountCents int64
	DueDate     time.Time
	Status      Status
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Compute generates the full installment sequence for the given terms.
// An installment count of zero (full cash sale) yields an empty sequence.
// Due dates advance one calendar month per installment from the first due
// date; time.Time's native month normalization applies to month-end dates
// (Jan 31 + 1 month lands in early March), matching the behavior of the
// contract forms. The result is pure and deterministic.
func Compute(terms Terms) ([]*Entry, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	if terms.InstallmentCount == 0 {
		return nil, nil
	}

	amount := terms.ResolveInstallmentCents()

	entries := make([]*Entry, terms.InstallmentCount)
	for i := 1; i <= terms.InstallmentCount; i++ {
		entries[i-1] = &Entry{
			Number:      i,
			AmountCents: amount,
			DueDate:     terms.FirstDueDate.AddDate(0, i-1, 0),
			Status:      StatusPendente,
		}
	}

	return entries, nil
}

// EffectiveStatus derives the status shown for an installment on a given
// day. Paid and cancelled are terminal; anything else is overdue once its
// due date has passed. Derived on every read, never written back.
func EffectiveStatus(e *Entry, today time.Time) Status {
	if e.Status == StatusPago || e.Status == StatusCancelado {
		return e.Status
	}

	due := dateOnly(e.DueDate)
	if due.Before(dateOnly(today)) {
		return StatusAtrasado
	}

	return StatusPendente
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
