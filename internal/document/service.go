package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pinklegion/stand/internal/client"
	"github.com/pinklegion/stand/internal/contract"
	"github.com/pinklegion/stand/internal/schedule"
	"github.com/pinklegion/stand/internal/vehicle"
)

// ErrNotFound is returned when a document id does not exist.
var ErrNotFound = errors.New("document not found")

const signedURLTTL = 15 * time.Minute

type Repository interface {
	// ReplaceDocuments atomically swaps the contract's document records
	// for the given set.
	ReplaceDocuments(ctx context.Context, contractID uuid.UUID, docs []*Stored) error
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]*Stored, error)
	GetDocument(ctx context.Context, id uuid.UUID) (*Stored, error)
}

type Service struct {
	seller   Seller
	renderer Renderer
	blobs    BlobStore
	repo     Repository
}

func NewService(seller Seller, renderer Renderer, blobs BlobStore, repo Repository) *Service {
	return &Service{
		seller:   seller,
		renderer: renderer,
		blobs:    blobs,
		repo:     repo,
	}
}

// Generate renders and stores the contract's documents: the sale contract
// always, the debt confession when the sale is financed and requested.
// Previously generated documents for the contract are replaced; their
// blobs are removed best-effort after the new set is persisted.
func (s *Service) Generate(
	ctx context.Context,
	c *contract.Contract,
	cl *client.Client,
	v *vehicle.Vehicle,
	entries []*schedule.Entry,
	includeConfession bool,
) ([]*Stored, error) {
	previous, err := s.repo.ListByContract(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("listing previous documents: %w", err)
	}

	var docs []*Stored

	sale := BuildSaleContract(s.seller, c, cl, v)

	doc, err := s.renderAndUpload(ctx, c, KindSale, sale)
	if err != nil {
		return nil, err
	}

	docs = append(docs, doc)

	if includeConfession && c.InstallmentCount > 0 {
		confession := BuildDebtConfession(s.seller, c, cl, entries)

		doc, err := s.renderAndUpload(ctx, c, KindDebtConfession, confession)
		if err != nil {
			return nil, err
		}

		docs = append(docs, doc)
	}

	if err := s.repo.ReplaceDocuments(ctx, c.ID, docs); err != nil {
		return nil, fmt.Errorf("replacing document records: %w", err)
	}

	if len(previous) > 0 {
		paths := make([]string, len(previous))
		for i, p := range previous {
			paths[i] = p.Path
		}

		if err := s.blobs.Remove(ctx, paths); err != nil {
			// Orphaned blobs are tolerable; the records already point at
			// the new files.
			slog.Warn("failed to remove previous document blobs", "contract", c.Number, "error", err)
		}
	}

	return docs, nil
}

// DownloadURL returns a short-lived signed URL for a stored document.
func (s *Service) DownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	doc, err := s.repo.GetDocument(ctx, id)
	if err != nil {
		return "", err
	}

	url, err := s.blobs.SignedURL(ctx, doc.Path, signedURLTTL)
	if err != nil {
		return "", fmt.Errorf("signing document url: %w", err)
	}

	return url, nil
}

func (s *Service) ListByContract(ctx context.Context, contractID uuid.UUID) ([]*Stored, error) {
	return s.repo.ListByContract(ctx, contractID)
}

func (s *Service) renderAndUpload(ctx context.Context, c *contract.Contract, kind Kind, payload any) (*Stored, error) {
	pdf, err := s.renderer.Render(ctx, kind, payload)
	if err != nil {
		return nil, fmt.Errorf("rendering %s document: %w", kind, err)
	}

	path := fmt.Sprintf("contracts/%s/%s-%s.pdf", c.ID, c.Number, kind)

	if err := s.blobs.Upload(ctx, path, pdf, "application/pdf"); err != nil {
		return nil, fmt.Errorf("uploading %s document: %w", kind, err)
	}

	return &Stored{
		ContractID: c.ID,
		Kind:       kind,
		Path:       path,
	}, nil
}
