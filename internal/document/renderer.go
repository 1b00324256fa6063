package document

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Renderer turns a document payload into PDF bytes. The rendering engine
// itself (layout, fonts) lives outside this system.
type Renderer interface {
	Render(ctx context.Context, kind Kind, payload any) ([]byte, error)
}

// HTTPRenderer calls the external PDF rendering service.
type HTTPRenderer struct {
	baseURL string
	client  *http.Client
}

func NewHTTPRenderer(baseURL string) *HTTPRenderer {
	return &HTTPRenderer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (r *HTTPRenderer) Render(ctx context.Context, kind Kind, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", kind, err)
	}

	url := fmt.Sprintf("%s/render/%s", r.baseURL, kind)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating render request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("renderer returned status %d for %s", resp.StatusCode, kind)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading rendered pdf: %w", err)
	}

	return pdf, nil
}
