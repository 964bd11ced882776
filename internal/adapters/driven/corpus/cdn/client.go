// Package cdn implements the driven.CorpusClient port against the
// CDN-hosted hadith dataset. The host publishes two resource shapes:
// a per-document wrapper object and a per-chapter batch array. Both
// are normalised into canonical Documents here, at the ingestion
// boundary, with defaulting rules applied once.
package cdn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/minbar-labs/minbar-cli/internal/core/domain"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.CorpusClient = (*Client)(nil)

const (
	// DefaultBaseURL is the public corpus host.
	DefaultBaseURL = "https://cdn.jsdelivr.net/gh/md-rifatkhan/hadithbangla@main"

	// defaultRequestsPerSecond throttles corpus fetches. The host is
	// a public CDN; the full-corpus build issues tens of thousands of
	// requests and should stay polite.
	defaultRequestsPerSecond = 20

	// requestTimeout bounds a single fetch.
	requestTimeout = 30 * time.Second
)

// rawRecord is the corpus host's document shape. Fields vary between
// the per-document and chapter-batch resources; absent fields decode
// to zero values and are defaulted during normalisation.
type rawRecord struct {
	HadithID     int    `json:"hadith_id"`
	Narrator     string `json:"narrator"`
	Bn           string `json:"bn"`
	Ar           string `json:"ar"`
	ChapterID    int    `json:"chapter_id"`
	ChapterTitle string `json:"chapter_title"`
	Grade        string `json:"grade"`
	GradeColor   string `json:"grade_color"`
}

// documentEnvelope wraps the per-document resource body.
type documentEnvelope struct {
	Hadith *rawRecord `json:"hadith"`
}

// Client fetches and normalises corpus records over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// New creates a corpus client. An empty baseURL selects the public
// host; a nil httpClient selects a default with a request timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{
		baseURL: baseURL,
		client:  httpClient,
		limiter: rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), 1),
	}
}

// get issues one throttled GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, url string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s returned status %d", domain.ErrNotFound, url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// FetchDocument retrieves and normalises a single hadith.
func (c *Client) FetchDocument(ctx context.Context, col domain.Collection, number int) (domain.Document, error) {
	url := fmt.Sprintf("%s/%s/hadith/%d.json", c.baseURL, col.Path, number)

	var envelope documentEnvelope
	if err := c.get(ctx, url, &envelope); err != nil {
		return domain.Document{}, err
	}
	if envelope.Hadith == nil {
		return domain.Document{}, fmt.Errorf("%w: %s has no hadith record", domain.ErrInvalidDocument, url)
	}

	doc, err := normalise(col, *envelope.Hadith, number)
	if err != nil {
		return domain.Document{}, err
	}
	return doc, nil
}

// FetchChapter retrieves one chapter's batch. Records that cannot
// become valid documents are dropped silently; the batch itself may
// legitimately come back empty.
func (c *Client) FetchChapter(ctx context.Context, col domain.Collection, chapterID int) ([]domain.Document, error) {
	url := fmt.Sprintf("%s/%s/Chapter/%d.json", c.baseURL, col.Path, chapterID)

	var records []rawRecord
	if err := c.get(ctx, url, &records); err != nil {
		return nil, err
	}

	docs := make([]domain.Document, 0, len(records))
	for _, rec := range records {
		rec.ChapterID = chapterID
		doc, err := normalise(col, rec, rec.HadithID)
		if err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// normalise maps a raw record into the canonical Document, applying
// the defaulting rules: requested number when the record carries no
// id, DefaultChapterID for an unknown chapter, and the standard grade
// colour when ungraded.
func normalise(col domain.Collection, rec rawRecord, number int) (domain.Document, error) {
	if rec.HadithID > 0 {
		number = rec.HadithID
	}

	doc := domain.Document{
		ID:             domain.NewDocumentID(col.ID, rec.ChapterID, number),
		CollectionID:   col.ID,
		CollectionName: col.Name,
		ChapterID:      rec.ChapterID,
		Number:         number,
		Narrator:       rec.Narrator,
		Text:           rec.Bn,
		Excerpt:        domain.MakeExcerpt(rec.Bn),
		Arabic:         rec.Ar,
		Grade:          rec.Grade,
		GradeColor:     rec.GradeColor,
	}
	if doc.ChapterID < 1 {
		doc.ChapterID = domain.DefaultChapterID
	}
	if doc.GradeColor == "" {
		doc.GradeColor = domain.DefaultGradeColor
	}

	if err := doc.Validate(); err != nil {
		return domain.Document{}, err
	}
	return doc, nil
}
