package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/pinklegion/stand/internal/client"
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

const selectClientColumns = `
	c.id, c.full_name, c.email, c.phone, c.address, c.city, c.postal_code,
	c.country, c.citizen_card, c.nif, c.iban, c.created_at, c.updated_at, c.deleted_at
`

func scanClient(s scanner) (*client.Client, error) {
	var c client.Client

	var email, phone, address, city, postalCode, country, citizenCard, iban sql.NullString

	if err := s.Scan(
		&c.ID, &c.FullName, &email, &phone, &address, &city, &postalCode,
		&country, &citizenCard, &c.NIF, &iban,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	); err != nil {
		return nil, err
	}

	c.Email = email.String
	c.Phone = phone.String
	c.Address = address.String
	c.City = city.String
	c.PostalCode = postalCode.String
	c.Country = country.String
	c.CitizenCard = citizenCard.String
	c.IBAN = iban.String

	return &c, nil
}

func (s *Store) CreateClient(ctx context.Context, c *client.Client) error {
	query := `
		INSERT INTO clients (full_name, email, phone, address, city, postal_code, country, citizen_card, nif, iban, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.FullName, c.Email, c.Phone, c.Address, c.City, c.PostalCode,
		c.Country, c.CitizenCard, c.NIF, c.IBAN,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	return nil
}

func (s *Store) GetClient(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	query := `SELECT ` + selectClientColumns + `
		FROM clients c
		WHERE c.id = $1 AND c.deleted_at IS NULL`

	c, err := scanClient(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, client.ErrNotFound
		}

		return nil, fmt.Errorf("getting client: %w", err)
	}

	return c, nil
}

func (s *Store) ListClients(ctx context.Context, filter client.ListFilter) ([]*client.Client, error) {
	query := `SELECT ` + selectClientColumns + `
		FROM clients c
		WHERE c.deleted_at IS NULL`

	var args []any

	if filter.Search != nil {
		query += " AND (c.full_name ILIKE '%' || $1 || '%' OR c.nif LIKE $1 || '%')"

		args = append(args, *filter.Search)
	}

	query += " ORDER BY c.full_name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*client.Client

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}

		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating client rows: %w", err)
	}

	return clients, nil
}

func (s *Store) UpdateClient(ctx context.Context, c *client.Client) error {
	query := `
		UPDATE clients
		SET full_name = $1, email = $2, phone = $3, address = $4, city = $5,
			postal_code = $6, country = $7, citizen_card = $8, nif = $9, iban = $10,
			updated_at = NOW()
		WHERE id = $11 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		c.FullName, c.Email, c.Phone, c.Address, c.City, c.PostalCode,
		c.Country, c.CitizenCard, c.NIF, c.IBAN, c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}

	return nil
}

func (s *Store) DeleteClient(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE clients
		SET deleted_at = NOW()
		WHERE id = $1
	`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}

	return nil
}
