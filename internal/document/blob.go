package document

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// BlobStore is the storage collaborator holding the generated PDFs.
type BlobStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) error
	SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)
	Remove(ctx context.Context, paths []string) error
}

// HTTPBlobStore talks to the hosted object-storage gateway.
type HTTPBlobStore struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewHTTPBlobStore(baseURL, token string) *HTTPBlobStore {
	return &HTTPBlobStore{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *HTTPBlobStore) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.objectURL(path), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating upload request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("uploading %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("upload of %s returned status %d", path, resp.StatusCode)
	}

	return nil
}

func (s *HTTPBlobStore) SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	u := fmt.Sprintf("%s/sign/%s?expires_in=%d", s.baseURL, url.PathEscape(path), int(ttl.Seconds()))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return "", fmt.Errorf("creating sign request: %w", err)
	}

	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("signing %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("signing %s returned status %d", path, resp.StatusCode)
	}

	var out struct {
		SignedURL string `json:"signed_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding signed url: %w", err)
	}

	return out.SignedURL, nil
}

func (s *HTTPBlobStore) Remove(ctx context.Context, paths []string) error {
	body, err := json.Marshal(map[string][]string{"paths": paths})
	if err != nil {
		return fmt.Errorf("encoding remove request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.baseURL+"/objects", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating remove request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("removing objects: %w", err)
	}
	defer resp.Body.Close()

	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("remove returned status %d", resp.StatusCode)
	}

	return nil
}

func (s *HTTPBlobStore) objectURL(path string) string {
	return s.baseURL + "/objects/" + strings.TrimPrefix(path, "/")
}

func (s *HTTPBlobStore) authorize(req *http.Request) {
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
}
