package document_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinklegion/stand/internal/document"
	"github.com/pinklegion/stand/internal/schedule"
	"github.com/pinklegion/stand/internal/vehicle"
)

type stubRenderer struct {
	rendered []document.Kind
	err      error
}

func (r *stubRenderer) Render(ctx context.Context, kind document.Kind, payload any) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}

	r.rendered = append(r.rendered, kind)

	return []byte("pdf:" + string(kind)), nil
}

type stubBlobs struct {
	uploads   []string
	removed   [][]string
	removeErr error
}

func (b *stubBlobs) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	b.uploads = append(b.uploads, path)
	return nil
}

func (b *stubBlobs) SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	return "https://cdn.example/" + path, nil
}

func (b *stubBlobs) Remove(ctx context.Context, paths []string) error {
	b.removed = append(b.removed, paths)
	return b.removeErr
}

type stubDocRepo struct {
	existing []*document.Stored
	replaced []*document.Stored
	byID     map[uuid.UUID]*document.Stored
}

func (r *stubDocRepo) ReplaceDocuments(ctx context.Context, contractID uuid.UUID, docs []*document.Stored) error {
	r.replaced = docs
	return nil
}

func (r *stubDocRepo) ListByContract(ctx context.Context, contractID uuid.UUID) ([]*document.Stored, error) {
	return r.existing, nil
}

func (r *stubDocRepo) GetDocument(ctx context.Context, id uuid.UUID) (*document.Stored, error) {
	doc, ok := r.byID[id]
	if !ok {
		return nil, document.ErrNotFound
	}

	return doc, nil
}

func TestService_Generate_FinancedSale(t *testing.T) {
	c := testContract()
	cl := testClient()
	v := &vehicle.Vehicle{Brand: "Renault", Model: "Clio"}

	entries, err := schedule.Compute(c.Terms())
	require.NoError(t, err)

	renderer := &stubRenderer{}
	blobs := &stubBlobs{}
	repo := &stubDocRepo{}

	svc := document.NewService(seller, renderer, blobs, repo)

	docs, err := svc.Generate(context.Background(), c, cl, v, entries, true)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, document.KindSale, docs[0].Kind)
	assert.Equal(t, document.KindDebtConfession, docs[1].Kind)
	assert.Equal(t, []document.Kind{document.KindSale, document.KindDebtConfession}, renderer.rendered)
	assert.Len(t, blobs.uploads, 2)
	assert.Equal(t, docs, repo.replaced)
	assert.Empty(t, blobs.removed)

	expectedPath := fmt.Sprintf("contracts/%s/AUTO-2024-0001-sale.pdf", c.ID)
	assert.Equal(t, expectedPath, docs[0].Path)
}

func TestService_Generate_CashSaleSkipsConfession(t *testing.T) {
	c := testContract()
	c.InstallmentCount = 0

	renderer := &stubRenderer{}
	repo := &stubDocRepo{}

	svc := document.NewService(seller, renderer, &stubBlobs{}, repo)

	docs, err := svc.Generate(context.Background(), c, testClient(), &vehicle.Vehicle{}, nil, true)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	assert.Equal(t, document.KindSale, docs[0].Kind)
}

func TestService_Generate_ReplacesPreviousBlobs(t *testing.T) {
	c := testContract()

	repo := &stubDocRepo{
		existing: []*document.Stored{
			{Path: "contracts/old/a.pdf"},
			{Path: "contracts/old/b.pdf"},
		},
	}
	blobs := &stubBlobs{}

	svc := document.NewService(seller, &stubRenderer{}, blobs, repo)

	_, err := svc.Generate(context.Background(), c, testClient(), &vehicle.Vehicle{}, nil, false)
	require.NoError(t, err)

	require.Len(t, blobs.removed, 1)
	assert.Equal(t, []string{"contracts/old/a.pdf", "contracts/old/b.pdf"}, blobs.removed[0])
}

func TestService_Generate_BlobRemoveFailureIsTolerated(t *testing.T) {
	c := testContract()

	repo := &stubDocRepo{
		existing: []*document.Stored{{Path: "contracts/old/a.pdf"}},
	}
	blobs := &stubBlobs{removeErr: errors.New("gateway down")}

	svc := document.NewService(seller, &stubRenderer{}, blobs, repo)

	docs, err := svc.Generate(context.Background(), c, testClient(), &vehicle.Vehicle{}, nil, false)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestService_Generate_RenderFailure(t *testing.T) {
	c := testContract()

	svc := document.NewService(
		seller,
		&stubRenderer{err: errors.New("renderer down")},
		&stubBlobs{},
		&stubDocRepo{},
	)

	_, err := svc.Generate(context.Background(), c, testClient(), &vehicle.Vehicle{}, nil, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rendering sale document")
}

func TestService_DownloadURL(t *testing.T) {
	id := uuid.New()
	repo := &stubDocRepo{
		byID: map[uuid.UUID]*document.Stored{
			id: {ID: id, Path: "contracts/x/doc.pdf"},
		},
	}

	svc := document.NewService(seller, &stubRenderer{}, &stubBlobs{}, repo)

	url, err := svc.DownloadURL(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/contracts/x/doc.pdf", url)

	_, err = svc.DownloadURL(context.Background(), uuid.New())
	assert.ErrorIs(t, err, document.ErrNotFound)
}
