package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pinklegion/stand/internal/contract"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectContractColumns = `
	c.id, c.contract_number, c.client_id, c.car_id, c.total_price, c.down_payment,
	c.financed_amount, c.installments, c.installment_amount, c.first_payment_date,
	c.contract_date, c.delivery_date, c.delivery_place, c.notes, c.status,
	c.created_at, c.updated_at, c.deleted_at
`

func scanContract(s scanner) (*contract.Contract, error) {
	var c contract.Contract

	var statusStr string

	var deliveryPlace, notes sql.NullString

	var deliveryDate sql.NullTime

	if err := s.Scan(
		&c.ID, &c.Number, &c.ClientID, &c.CarID, &c.TotalPriceCents, &c.DownPaymentCents,
		&c.FinancedCents, &c.InstallmentCount, &c.InstallmentAmountCents, &c.FirstDueDate,
		&c.ContractDate, &deliveryDate, &deliveryPlace, &notes, &statusStr,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	); err != nil {
		return nil, err
	}

	c.Status = contract.Status(statusStr)
	c.DeliveryDate = deliveryDate.Time
	c.DeliveryPlace = deliveryPlace.String
	c.Notes = notes.String

	return &c, nil
}

func (s *Store) CreateContract(ctx context.Context, c *contract.Contract) error {
	query := `
		INSERT INTO contracts (contract_number, client_id, car_id, total_price, down_payment,
			financed_amount, installments, installment_amount, first_payment_date,
			contract_date, delivery_date, delivery_place, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Number, c.ClientID, c.CarID, c.TotalPriceCents, c.DownPaymentCents,
		c.FinancedCents, c.InstallmentCount, c.InstallmentAmountCents, c.FirstDueDate,
		c.ContractDate, nullTime(c.DeliveryDate), c.DeliveryPlace, c.Notes, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating contract: %w", err)
	}

	return nil
}

func (s *Store) GetContract(ctx context.Context, id uuid.UUID) (*contract.Contract, error) {
	query := `SELECT ` + selectContractColumns + `
		FROM contracts c
		WHERE c.id = $1 AND c.deleted_at IS NULL`

	c, err := scanContract(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, contract.ErrNotFound
		}

		return nil, fmt.Errorf("getting contract: %w", err)
	}

	return c, nil
}

func (s *Store) ListContracts(ctx context.Context, filter contract.ListFilter) ([]*contract.Contract, error) {
	query := `SELECT ` + selectContractColumns + `
		FROM contracts c
		WHERE c.deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND c.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.ClientID != nil {
		query += fmt.Sprintf(" AND c.client_id = $%d", argIdx)

		args = append(args, *filter.ClientID)
		argIdx++
	}

	query += " ORDER BY c.contract_date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing contracts: %w", err)
	}
	defer rows.Close()

	var contracts []*contract.Contract

	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contract: %w", err)
		}

		contracts = append(contracts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contract rows: %w", err)
	}

	return contracts, nil
}

func (s *Store) UpdateContract(ctx context.Context, c *contract.Contract) error {
	query := `
		UPDATE contracts
		SET total_price = $1, down_payment = $2, financed_amount = $3, installments = $4,
			installment_amount = $5, first_payment_date = $6, delivery_date = $7,
			delivery_place = $8, notes = $9, status = $10, updated_at = NOW()
		WHERE id = $11 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		c.TotalPriceCents, c.DownPaymentCents, c.FinancedCents, c.InstallmentCount,
		c.InstallmentAmountCents, c.FirstDueDate, nullTime(c.DeliveryDate),
		c.DeliveryPlace, c.Notes, c.Status, c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating contract: %w", err)
	}

	return nil
}

func (s *Store) DeleteContract(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE contracts
		SET deleted_at = NOW()
		WHERE id = $1
	`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting contract: %w", err)
	}

	return nil
}

// NextContractNumber allocates the next AUTO-YYYY-NNNN sequence value by
// looking at the highest number already issued for the year. Soft-deleted
// contracts keep their number reserved.
func (s *Store) NextContractNumber(ctx context.Context, year int) (int, error) {
	query := `
		SELECT COALESCE(MAX(SUBSTRING(contract_number FROM 11)::int), 0) + 1
		FROM contracts
		WHERE contract_number LIKE $1
	`

	var next int
	if err := s.db.QueryRowContext(ctx, query, fmt.Sprintf("AUTO-%d-%%", year)).Scan(&next); err != nil {
		return 0, fmt.Errorf("allocating contract number: %w", err)
	}

	return next, nil
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}

	return t
}
