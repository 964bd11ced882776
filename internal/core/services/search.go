package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/minbar-labs/minbar-cli/internal/core/domain"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driven"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driving"
	"github.com/minbar-labs/minbar-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

const (
	// fallbackCollections bounds how many catalogue collections the
	// live fallback build scans.
	fallbackCollections = 3

	// fallbackChapters bounds how many chapters per collection the
	// fallback build fetches.
	fallbackChapters = 5

	// fallbackMaxDocuments caps the fallback index size across all
	// collections and chapters combined.
	fallbackMaxDocuments = 500

	// insertBatchSize is how many documents are indexed between
	// cancellation checks during bulk insertion.
	insertBatchSize = 10

	// unavailableMessage is surfaced to the UI when both load paths fail.
	unavailableMessage = "Search is currently unavailable."
)

// SearchService loads the hadith index and answers queries against it.
//
// Initialisation prefers the precomputed index parts and degrades to a
// bounded live build against the corpus host when the parts are
// missing or malformed. Queries never fail: every internal error is
// logged and surfaces as an empty result list.
type SearchService struct {
	engine driven.SearchEngine
	parts  driven.PartSource
	corpus driven.CorpusClient
	cache  driven.DocumentCache

	initOnce sync.Once
	initErr  error

	mu      sync.RWMutex
	state   driving.SearchState
	message string
}

// NewSearchService creates a search service. The parts source, corpus
// client and cache are all required; the engine starts empty and is
// populated by Init.
func NewSearchService(
	engine driven.SearchEngine,
	parts driven.PartSource,
	corpus driven.CorpusClient,
	cache driven.DocumentCache,
) *SearchService {
	return &SearchService{
		engine: engine,
		parts:  parts,
		corpus: corpus,
		cache:  cache,
		state:  driving.StateLoading,
	}
}

// Init loads the index. It runs the load protocol at most once; later
// calls return the first outcome.
func (s *SearchService) Init(ctx context.Context) error {
	s.initOnce.Do(func() {
		s.initErr = s.load(ctx)
	})
	return s.initErr
}

// State reports the service lifecycle state.
func (s *SearchService) State() driving.SearchState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Message returns the user-facing message for the error state.
func (s *SearchService) Message() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.message
}

func (s *SearchService) setState(state driving.SearchState, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.message = message
}

// load runs the two-stage initialisation protocol.
func (s *SearchService) load(ctx context.Context) error {
	logger.Section("Search Index Load")

	err := s.loadFromParts(ctx)
	if err == nil {
		logger.Info("Loaded precomputed index: %d documents", s.engine.DocCount())
		s.setState(driving.StateReady, "")
		return nil
	}
	logger.Warn("Prebuilt index not available, loading hadith data for search: %v", err)

	if err := s.loadFallback(ctx); err != nil {
		logger.Error("Failed to load search index: %v", err)
		s.setState(driving.StateError, unavailableMessage)
		return fmt.Errorf("%w: %v", domain.ErrIndexUnavailable, err)
	}

	logger.Info("Search index loaded with %d hadith", s.engine.DocCount())
	s.setState(driving.StateReady, "")
	return nil
}

// loadFromParts fetches and imports every expected index part. Any
// missing or invalid part aborts the whole path so the fallback can
// build a consistent index instead.
func (s *SearchService) loadFromParts(ctx context.Context) error {
	for _, name := range driven.PartNames {
		part, err := s.parts.ReadPart(ctx, name)
		if err != nil {
			return fmt.Errorf("load part %s: %w", name, err)
		}
		if err := s.engine.Import(ctx, part); err != nil {
			return fmt.Errorf("import part %s: %w", name, err)
		}
	}
	return nil
}

// loadFallback builds a bounded live index from the corpus host,
// reusing the session cache when a previous initialisation already
// fetched the documents.
func (s *SearchService) loadFallback(ctx context.Context) error {
	if cached, ok := s.cache.Get(); ok {
		logger.Debug("Replaying %d cached documents", len(cached))
		if err := s.indexBatch(ctx, cached, len(cached)); err != nil {
			return err
		}
		if s.engine.DocCount() == 0 {
			return fmt.Errorf("empty document cache")
		}
		return nil
	}

	var fetched []domain.Document
	total := 0

	for _, col := range domain.Catalogue()[:fallbackCollections] {
		for chapterID := 1; chapterID <= fallbackChapters && total < fallbackMaxDocuments; chapterID++ {
			docs, err := s.corpus.FetchChapter(ctx, col, chapterID)
			if err != nil {
				logger.Warn("Failed to load search data for %s: %v", col.Name, err)
				break
			}

			remaining := fallbackMaxDocuments - total
			if len(docs) > remaining {
				docs = docs[:remaining]
			}
			if err := s.indexBatch(ctx, docs, insertBatchSize); err != nil {
				return err
			}
			fetched = append(fetched, docs...)
			total += len(docs)
		}
	}

	if total == 0 {
		return fmt.Errorf("no documents could be fetched from the corpus host")
	}

	s.cache.Put(fetched)
	return nil
}

// indexBatch inserts documents in batches, checking for cancellation
// between batches so a long bulk insertion cannot wedge the caller.
func (s *SearchService) indexBatch(ctx context.Context, docs []domain.Document, batchSize int) error {
	if batchSize < 1 {
		batchSize = 1
	}
	for i, doc := range docs {
		if i%batchSize == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		if err := doc.Validate(); err != nil {
			logger.Debug("Skipping invalid document: %v", err)
			continue
		}
		if err := s.engine.Index(ctx, doc); err != nil {
			return fmt.Errorf("index %s: %w", doc.ID, err)
		}
	}
	return nil
}

// Search runs a query with optional filters. An empty query or an
// unready service yields an empty result list; engine failures are
// logged and degrade the same way.
func (s *SearchService) Search(ctx context.Context, query string, opts domain.SearchOptions) []domain.SearchResult {
	if s.State() != driving.StateReady {
		logger.Debug("Search skipped: service is %s", s.State())
		return []domain.SearchResult{}
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.SearchResult{}
	}

	sets, err := s.engine.Search(ctx, query, domain.RawSearchLimit)
	if err != nil {
		logger.Error("Search error: %v", err)
		return []domain.SearchResult{}
	}

	return collateResults(sets, opts)
}

// collateResults flattens the engine's field-grouped result sets into
// a single ranked list: deduplicate by document id preserving
// first-seen order, apply the AND-ed filters, and cap the output.
// The engine returns one result set per matched field, so a document
// matching on both text and narrator arrives twice and must leave once.
func collateResults(sets []driven.FieldMatches, opts domain.SearchOptions) []domain.SearchResult {
	seen := make(map[string]struct{})
	results := make([]domain.SearchResult, 0, domain.MaxSearchResults)

	for _, set := range sets {
		for _, hit := range set.Hits {
			if _, dup := seen[hit.ID]; dup {
				continue
			}
			seen[hit.ID] = struct{}{}

			if !opts.Matches(hit.Document) {
				continue
			}

			results = append(results, domain.SearchResult{ID: hit.ID, Document: hit.Document})
			if len(results) >= domain.MaxSearchResults {
				return results
			}
		}
	}

	return results
}
