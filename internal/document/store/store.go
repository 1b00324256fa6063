package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/pinklegion/stand/internal/document"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ReplaceDocuments deletes the contract's existing document records and
// inserts the new set inside one transaction.
func (s *Store) ReplaceDocuments(ctx context.Context, contractID uuid.UUID, docs []*document.Stored) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE contract_id = $1`, contractID); err != nil {
		return fmt.Errorf("deleting documents: %w", err)
	}

	query := `
		INSERT INTO documents (contract_id, kind, path, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	for _, d := range docs {
		if err := tx.QueryRowContext(ctx, query, d.ContractID, d.Kind, d.Path).Scan(&d.ID, &d.CreatedAt); err != nil {
			return fmt.Errorf("inserting document %s: %w", d.Kind, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) ListByContract(ctx context.Context, contractID uuid.UUID) ([]*document.Stored, error) {
	query := `
		SELECT id, contract_id, kind, path, created_at
		FROM documents
		WHERE contract_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []*document.Stored

	for rows.Next() {
		var d document.Stored

		var kindStr string

		if err := rows.Scan(&d.ID, &d.ContractID, &kindStr, &d.Path, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}

		d.Kind = document.Kind(kindStr)

		docs = append(docs, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating document rows: %w", err)
	}

	return docs, nil
}

func (s *Store) GetDocument(ctx context.Context, id uuid.UUID) (*document.Stored, error) {
	query := `
		SELECT id, contract_id, kind, path, created_at
		FROM documents
		WHERE id = $1
	`

	var d document.Stored

	var kindStr string

	err := s.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.ContractID, &kindStr, &d.Path, &d.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, document.ErrNotFound
		}

		return nil, fmt.Errorf("getting document: %w", err)
	}

	d.Kind = document.Kind(kindStr)

	return &d, nil
}
