package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"

	"github.com/pinklegion/stand/internal/schedule"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectEntryColumns = `
	p.id, p.contract_id, p.installment_number, p.amount, p.due_date,
	p.status, p.paid_at, p.created_at, p.updated_at
`

func scanEntry(s scanner) (*schedule.Entry, error) {
	var e schedule.Entry

	var statusStr string

	if err := s.Scan(
		&e.ID, &e.ContractID, &e.Number, &e.AmountCents, &e.DueDate,
		&statusStr, &e.PaidAt, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.Status = schedule.Status(statusStr)

	return &e, nil
}

func (s *Store) ListByContract(ctx context.Context, contractID uuid.UUID) ([]*schedule.Entry, error) {
	query := `SELECT ` + selectEntryColumns + `
		FROM payments p
		WHERE p.contract_id = $1
		ORDER BY p.installment_number ASC`

	rows, err := s.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, fmt.Errorf("listing installments: %w", err)
	}
	defer rows.Close()

	var entries []*schedule.Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning installment: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating installment rows: %w", err)
	}

	return entries, nil
}

func (s *Store) GetEntry(ctx context.Context, id uuid.UUID) (*schedule.Entry, error) {
	query := `SELECT ` + selectEntryColumns + `
		FROM payments p
		WHERE p.id = $1`

	e, err := scanEntry(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, schedule.ErrNotFound
		}

		return nil, fmt.Errorf("getting installment: %w", err)
	}

	return e, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status schedule.Status, paidAt *time.Time) error {
	query := `
		UPDATE payments
		SET status = $1, paid_at = $2, updated_at = NOW()
		WHERE id = $3
	`

	res, err := s.db.ExecContext(ctx, query, status, paidAt, id)
	if err != nil {
		return fmt.Errorf("updating installment status: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return schedule.ErrNotFound
	}

	return nil
}

// regenerateLockKey derives the advisory lock key that serializes schedule
// regenerations per contract.
func regenerateLockKey(contractID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte("payments:regenerate:"))
	h.Write(contractID[:])

	return int64(h.Sum64())
}

type regenerateTx struct {
	tx *sql.Tx
}

// BeginRegenerate opens a transaction holding an advisory lock scoped to
// the contract, so two overlapping regenerations of the same contract
// cannot interleave their deletes and inserts. Regenerations for different
// contracts proceed in parallel.
func (s *Store) BeginRegenerate(ctx context.Context, contractID uuid.UUID) (schedule.RegenerateTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning regenerate tx: %w", err)
	}

	lockKey := regenerateLockKey(contractID)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring regenerate lock: %w", err)
	}

	return &regenerateTx{tx: dbTx}, nil
}

func (rtx *regenerateTx) Commit() error   { return rtx.tx.Commit() }
func (rtx *regenerateTx) Rollback() error { return rtx.tx.Rollback() }

func (rtx *regenerateTx) DeleteByContract(ctx context.Context, contractID uuid.UUID) error {
	query := `DELETE FROM payments WHERE contract_id = $1`

	if _, err := rtx.tx.ExecContext(ctx, query, contractID); err != nil {
		return fmt.Errorf("deleting installments: %w", err)
	}

	return nil
}

func (rtx *regenerateTx) InsertEntries(ctx context.Context, entries []*schedule.Entry) error {
	query := `
		INSERT INTO payments (contract_id, installment_number, amount, due_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	for _, e := range entries {
		err := rtx.tx.QueryRowContext(ctx, query,
			e.ContractID,
			e.Number,
			e.AmountCents,
			e.DueDate,
			e.Status,
		).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return fmt.Errorf("inserting installment %d: %w", e.Number, err)
		}
	}

	return nil
}
