package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pinklegion/stand/internal/report"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Summary aggregates the dashboard figures in one round trip per table.
// The overdue predicate matches schedule.EffectiveStatus: anything not
// paid and not cancelled is overdue once its due date has passed.
func (s *Store) Summary(ctx context.Context, today time.Time) (*report.Summary, error) {
	var sum report.Summary

	contractsQuery := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'ativo'),
			COALESCE(SUM(total_price), 0)
		FROM contracts
		WHERE deleted_at IS NULL
	`
	if err := s.db.QueryRowContext(ctx, contractsQuery).Scan(
		&sum.Contracts, &sum.ActiveContracts, &sum.TotalSalesCents,
	); err != nil {
		return nil, fmt.Errorf("aggregating contracts: %w", err)
	}

	vehiclesQuery := `
		SELECT COUNT(*)
		FROM cars
		WHERE deleted_at IS NULL AND status = 'disponivel'
	`
	if err := s.db.QueryRowContext(ctx, vehiclesQuery).Scan(&sum.AvailableVehicles); err != nil {
		return nil, fmt.Errorf("aggregating vehicles: %w", err)
	}

	paymentsQuery := `
		SELECT
			COALESCE(SUM(p.amount) FILTER (WHERE p.status = 'pago'), 0),
			COALESCE(SUM(p.amount) FILTER (WHERE p.status NOT IN ('pago', 'cancelado')), 0),
			COUNT(*) FILTER (WHERE p.status NOT IN ('pago', 'cancelado') AND p.due_date < $1)
		FROM payments p
		JOIN contracts c ON c.id = p.contract_id
		WHERE c.deleted_at IS NULL
	`
	if err := s.db.QueryRowContext(ctx, paymentsQuery, today).Scan(
		&sum.PaidCents, &sum.OutstandingCents, &sum.OverdueInstallments,
	); err != nil {
		return nil, fmt.Errorf("aggregating payments: %w", err)
	}

	return &sum, nil
}
