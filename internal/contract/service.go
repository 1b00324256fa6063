package contract

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pinklegion/stand/internal/schedule"
	"github.com/pinklegion/stand/internal/vehicle"
)

// ErrNotFound is returned when a contract id does not exist.
var ErrNotFound = errors.New("contract not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=contract
type Repository interface {
	CreateContract(ctx context.Context, c *Contract) error
	GetContract(ctx context.Context, id uuid.UUID) (*Contract, error)
	ListContracts(ctx context.Context, filter ListFilter) ([]*Contract, error)
	UpdateContract(ctx context.Context, c *Contract) error
	DeleteContract(ctx context.Context, id uuid.UUID) error

	// NextContractNumber returns the next sequence number for the year.
	NextContractNumber(ctx context.Context, year int) (int, error)
}

type ListFilter struct {
	Status   *Status
	ClientID *uuid.UUID
}

type Service struct {
	repo      Repository
	schedules *schedule.Service
	vehicles  *vehicle.Service
}

func NewService(repo Repository, schedules *schedule.Service, vehicles *vehicle.Service) *Service {
	return &Service{
		repo:      repo,
		schedules: schedules,
		vehicles:  vehicles,
	}
}

type CreateParams struct {
	ClientID               uuid.UUID
	CarID                  uuid.UUID
	TotalPriceCents        int64
	DownPaymentCents       int64
	InstallmentCount       int
	InstallmentAmountCents int64 // 0 = derive from the financed balance
	FirstDueDate           time.Time
	ContractDate           time.Time
	DeliveryDate           time.Time
	DeliveryPlace          string
	Notes                  string
}

// Create validates the financial terms, persists the contract under a
// fresh AUTO-YYYY-NNNN number, generates its installment schedule and
// marks the vehicle as sold. If schedule generation fails after the
// contract row exists, the error is surfaced and the caller should retry
// the regeneration; the contract itself is not rolled back.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Contract, error) {
	terms := schedule.Terms{
		TotalPriceCents:        params.TotalPriceCents,
		DownPaymentCents:       params.DownPaymentCents,
		InstallmentCount:       params.InstallmentCount,
		InstallmentAmountCents: params.InstallmentAmountCents,
		FirstDueDate:           params.FirstDueDate,
	}
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	contractDate := params.ContractDate
	if contractDate.IsZero() {
		contractDate = time.Now()
	}

	seq, err := s.repo.NextContractNumber(ctx, contractDate.Year())
	if err != nil {
		return nil, fmt.Errorf("allocating contract number: %w", err)
	}

	c := &Contract{
		Number:                 fmt.Sprintf("AUTO-%d-%04d", contractDate.Year(), seq),
		ClientID:               params.ClientID,
		CarID:                  params.CarID,
		TotalPriceCents:        params.TotalPriceCents,
		DownPaymentCents:       params.DownPaymentCents,
		FinancedCents:          terms.FinancedCents(),
		InstallmentCount:       params.InstallmentCount,
		InstallmentAmountCents: terms.ResolveInstallmentCents(),
		FirstDueDate:           params.FirstDueDate,
		ContractDate:           contractDate,
		DeliveryDate:           params.DeliveryDate,
		DeliveryPlace:          params.DeliveryPlace,
		Notes:                  params.Notes,
		Status:                 StatusAtivo,
	}

	if err := s.repo.CreateContract(ctx, c); err != nil {
		return nil, err
	}

	if _, err := s.schedules.Regenerate(ctx, c.ID, c.Terms()); err != nil {
		return nil, fmt.Errorf("generating schedule for contract %s: %w", c.Number, err)
	}

	if err := s.vehicles.MarkSold(ctx, c.CarID); err != nil {
		return nil, fmt.Errorf("marking vehicle sold: %w", err)
	}

	return c, nil
}

type UpdateParams struct {
	TotalPriceCents        *int64
	DownPaymentCents       *int64
	InstallmentCount       *int
	InstallmentAmountCents *int64
	FirstDueDate           *time.Time
	DeliveryDate           *time.Time
	DeliveryPlace          *string
	Notes                  *string
	Status                 *Status
}

// Update applies new terms to the contract. When any financial field
// changed, the entire installment schedule is discarded and regenerated
// from the first due date; recorded payments on the old rows are lost
// (documented destructive behavior).
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Contract, error) {
	c, err := s.repo.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}

	before := c.Terms()

	if params.TotalPriceCents != nil {
		c.TotalPriceCents = *params.TotalPriceCents
	}

	if params.DownPaymentCents != nil {
		c.DownPaymentCents = *params.DownPaymentCents
	}

	if params.InstallmentCount != nil {
		c.InstallmentCount = *params.InstallmentCount
	}

	if params.InstallmentAmountCents != nil {
		c.InstallmentAmountCents = *params.InstallmentAmountCents
	}

	if params.FirstDueDate != nil {
		c.FirstDueDate = *params.FirstDueDate
	}

	if params.DeliveryDate != nil {
		c.DeliveryDate = *params.DeliveryDate
	}

	if params.DeliveryPlace != nil {
		c.DeliveryPlace = *params.DeliveryPlace
	}

	if params.Notes != nil {
		c.Notes = *params.Notes
	}

	if params.Status != nil {
		c.Status = *params.Status
	}

	after := c.Terms()
	if err := after.Validate(); err != nil {
		return nil, err
	}

	c.FinancedCents = after.FinancedCents()
	c.InstallmentAmountCents = after.ResolveInstallmentCents()

	if err := s.repo.UpdateContract(ctx, c); err != nil {
		return nil, err
	}

	if termsChanged(before, after) {
		if _, err := s.schedules.Regenerate(ctx, c.ID, c.Terms()); err != nil {
			return nil, fmt.Errorf("regenerating schedule for contract %s: %w", c.Number, err)
		}
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Contract, error) {
	return s.repo.GetContract(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Contract, error) {
	return s.repo.ListContracts(ctx, filter)
}

// Delete soft-deletes the contract and returns the vehicle to the lot.
// Installment rows are kept for audit; they are only replaced on
// regeneration.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	c, err := s.repo.GetContract(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteContract(ctx, id); err != nil {
		return err
	}

	if err := s.vehicles.MarkAvailable(ctx, c.CarID); err != nil {
		return fmt.Errorf("returning vehicle to lot: %w", err)
	}

	return nil
}

func termsChanged(a, b schedule.Terms) bool {
	return a.TotalPriceCents != b.TotalPriceCents ||
		a.DownPaymentCents != b.DownPaymentCents ||
		a.InstallmentCount != b.InstallmentCount ||
		a.InstallmentAmountCents != b.InstallmentAmountCents ||
		!a.FirstDueDate.Equal(b.FirstDueDate)
}
