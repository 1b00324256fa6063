package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/pinklegion/stand/internal/vehicle"
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

const selectVehicleColumns = `
	v.id, v.brand, v.model, v.year, v.license_plate, v.vin, v.engine, v.color,
	v.mileage, v.price, v.status, v.created_at, v.updated_at, v.deleted_at
`

func scanVehicle(s scanner) (*vehicle.Vehicle, error) {
	var v vehicle.Vehicle

	var statusStr string

	var engine, color sql.NullString

	if err := s.Scan(
		&v.ID, &v.Brand, &v.Model, &v.Year, &v.LicensePlate, &v.VIN, &engine, &color,
		&v.Mileage, &v.PriceCents, &statusStr,
		&v.CreatedAt, &v.UpdatedAt, &v.DeletedAt,
	); err != nil {
		return nil, err
	}

	v.Engine = engine.String
	v.Color = color.String
	v.Status = vehicle.Status(statusStr)

	return &v, nil
}

func (s *Store) CreateVehicle(ctx context.Context, v *vehicle.Vehicle) error {
	query := `
		INSERT INTO cars (brand, model, year, license_plate, vin, engine, color, mileage, price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		v.Brand, v.Model, v.Year, v.LicensePlate, v.VIN, v.Engine, v.Color,
		v.Mileage, v.PriceCents, v.Status,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating vehicle: %w", err)
	}

	return nil
}

func (s *Store) GetVehicle(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	query := `SELECT ` + selectVehicleColumns + `
		FROM cars v
		WHERE v.id = $1 AND v.deleted_at IS NULL`

	v, err := scanVehicle(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, vehicle.ErrNotFound
		}

		return nil, fmt.Errorf("getting vehicle: %w", err)
	}

	return v, nil
}

func (s *Store) ListVehicles(ctx context.Context, filter vehicle.ListFilter) ([]*vehicle.Vehicle, error) {
	query := `SELECT ` + selectVehicleColumns + `
		FROM cars v
		WHERE v.deleted_at IS NULL`

	var args []any

	if filter.Status != nil {
		query += " AND v.status = $1"

		args = append(args, *filter.Status)
	}

	query += " ORDER BY v.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*vehicle.Vehicle

	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning vehicle: %w", err)
		}

		vehicles = append(vehicles, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vehicle rows: %w", err)
	}

	return vehicles, nil
}

func (s *Store) UpdateVehicle(ctx context.Context, v *vehicle.Vehicle) error {
	query := `
		UPDATE cars
		SET brand = $1, model = $2, year = $3, license_plate = $4, vin = $5,
			engine = $6, color = $7, mileage = $8, price = $9, updated_at = NOW()
		WHERE id = $10 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		v.Brand, v.Model, v.Year, v.LicensePlate, v.VIN,
		v.Engine, v.Color, v.Mileage, v.PriceCents, v.ID,
	)
	if err != nil {
		return fmt.Errorf("updating vehicle: %w", err)
	}

	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status vehicle.Status) error {
	query := `
		UPDATE cars
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	if _, err := s.db.ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("updating vehicle status: %w", err)
	}

	return nil
}

func (s *Store) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE cars
		SET deleted_at = NOW()
		WHERE id = $1
	`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting vehicle: %w", err)
	}

	return nil
}
