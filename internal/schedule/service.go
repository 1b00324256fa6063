package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an installment id does not exist.
var ErrNotFound = errors.New("installment not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=schedule
type Repository interface {
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]*Entry, error)
	GetEntry(ctx context.Context, id uuid.UUID) (*Entry, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, paidAt *time.Time) error

	BeginRegenerate(ctx context.Context, contractID uuid.UUID) (RegenerateTx, error)
}

// RegenerateTx is the two-phase replacement of a contract's schedule.
// Implementations must make delete-then-insert atomic and serialize
// concurrent regenerations of the same contract.
type RegenerateTx interface {
	DeleteByContract(ctx context.Context, contractID uuid.UUID) error
	InsertEntries(ctx context.Context, entries []*Entry) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Regenerate discards every stored installment of the contract and inserts
// a freshly computed sequence, always starting from the terms' first due
// date. Payment history recorded on the previous rows is lost; this is the
// documented product behavior when contract terms change. On store failure
// the transaction rolls back and the previous rows remain; the caller must
// retry the whole regeneration.
func (s *Service) Regenerate(ctx context.Context, contractID uuid.UUID, terms Terms) ([]*Entry, error) {
	entries, err := Compute(terms)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		e.ContractID = contractID
	}

	tx, err := s.repo.BeginRegenerate(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("begin regenerate: %w", err)
	}
	defer tx.Rollback()

	if err := tx.DeleteByContract(ctx, contractID); err != nil {
		return nil, fmt.Errorf("deleting previous schedule: %w", err)
	}

	if len(entries) > 0 {
		if err := tx.InsertEntries(ctx, entries); err != nil {
			return nil, fmt.Errorf("inserting schedule: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit regenerate: %w", err)
	}

	return entries, nil
}

func (s *Service) ListByContract(ctx context.Context, contractID uuid.UUID) ([]*Entry, error) {
	return s.repo.ListByContract(ctx, contractID)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Entry, error) {
	return s.repo.GetEntry(ctx, id)
}

// MarkPaid records a payment against one installment.
func (s *Service) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error {
	return s.repo.UpdateStatus(ctx, id, StatusPago, &paidAt)
}

// MarkCancelled voids one installment without deleting it.
func (s *Service) MarkCancelled(ctx context.Context, id uuid.UUID) error {
	return s.repo.UpdateStatus(ctx, id, StatusCancelado, nil)
}

// Overview summarizes a contract's schedule with statuses derived for the
// given day.
type Overview struct {
	Total            int
	Paid             int
	Pending          int
	Overdue          int
	Cancelled        int
	PaidCents        int64
	OutstandingCents int64
}

func (s *Service) Overview(ctx context.Context, contractID uuid.UUID, today time.Time) (*Overview, error) {
	entries, err := s.repo.ListByContract(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("listing installments: %w", err)
	}

	ov := &Overview{Total: len(entries)}

	for _, e := range entries {
		switch EffectiveStatus(e, today) {
		case StatusPago:
			ov.Paid++
			ov.PaidCents += e.AmountCents
		case StatusAtrasado:
			ov.Overdue++
			ov.OutstandingCents += e.AmountCents
		case StatusCancelado:
			ov.Cancelled++
		default:
			ov.Pending++
			ov.OutstandingCents += e.AmountCents
		}
	}

	return ov, nil
}
