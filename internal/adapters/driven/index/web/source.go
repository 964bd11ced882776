// Package web implements the driven.PartSource port over HTTP: the
// runtime service fetches the four serialised index parts from a
// static asset host. A part only counts as loadable when the response
// succeeds AND declares a JSON content type; anything else invalidates
// the whole precomputed-load path.
package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/minbar-labs/minbar-cli/internal/core/domain"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.PartSource = (*Source)(nil)

// requestTimeout bounds a single part fetch.
const requestTimeout = 30 * time.Second

// Source fetches index parts from {baseURL}/{name}.json.
type Source struct {
	baseURL string
	client  *http.Client
}

// NewSource creates a part source. A nil httpClient selects a default
// with a request timeout.
func NewSource(baseURL string, httpClient *http.Client) *Source {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Source{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  httpClient,
	}
}

// ReadPart fetches one part and validates status and content type.
func (s *Source) ReadPart(ctx context.Context, name string) (driven.IndexPart, error) {
	url := fmt.Sprintf("%s/%s.json", s.baseURL, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return driven.IndexPart{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return driven.IndexPart{}, fmt.Errorf("%w: fetch %s: %v", domain.ErrPartInvalid, name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return driven.IndexPart{}, fmt.Errorf("%w: %s returned status %d", domain.ErrPartInvalid, name, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return driven.IndexPart{}, fmt.Errorf("%w: %s has content type %q", domain.ErrPartInvalid, name, contentType)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return driven.IndexPart{}, fmt.Errorf("%w: read %s: %v", domain.ErrPartInvalid, name, err)
	}

	return driven.IndexPart{Name: name, Data: data}, nil
}
