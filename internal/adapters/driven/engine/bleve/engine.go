// Package bleve adapts the bleve full-text library to the
// driven.SearchEngine port. The index itself is memory-only; stored
// document fields live in an engine-side registry so search results
// come back enriched without a second lookup, and export/import
// serialises that registry as the part set.
package bleve

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	bleve2 "github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/minbar-labs/minbar-cli/internal/core/domain"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.SearchEngine = (*Engine)(nil)

// manifestVersion guards part compatibility across releases.
const manifestVersion = 1

// docShards is how many document parts the export produces.
// Together with the manifest this yields the fixed four-part set.
const docShards = 3

// IndexedFields are the tokenised, forward-matching fields, in the
// order their result sets are returned from Search.
var IndexedFields = []string{"text", "arabic", "narrator", "grade", "collection_name"}

// Engine is a bleve-backed search engine over hadith documents.
type Engine struct {
	mu     sync.RWMutex
	idx    bleve2.Index
	docs   map[string]domain.Document
	order  []string
	closed bool
}

// manifest is the first export part: enough engine configuration to
// refuse incompatible part sets on import.
type manifest struct {
	Version int      `json:"version"`
	Fields  []string `json:"fields"`
	Count   int      `json:"count"`
	Shards  int      `json:"shards"`
}

// indexEntry is the shape handed to bleve for tokenising.
type indexEntry map[string]string

// New creates an empty in-memory engine.
func New() (*Engine, error) {
	mapping := bleve2.NewIndexMapping()
	idx, err := bleve2.NewMemOnly(mapping)
	if err != nil {
		return nil, fmt.Errorf("create bleve index: %w", err)
	}

	return &Engine{
		idx:  idx,
		docs: make(map[string]domain.Document),
	}, nil
}

// entry extracts the indexed field values for a document.
func entry(doc domain.Document) indexEntry {
	return indexEntry{
		"text":            doc.Text,
		"arabic":          doc.Arabic,
		"narrator":        doc.Narrator,
		"grade":           doc.Grade,
		"collection_name": doc.CollectionName,
	}
}

// Index adds a document. Re-indexing an existing id replaces it.
func (e *Engine) Index(_ context.Context, doc domain.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return domain.ErrEngineClosed
	}

	if err := e.idx.Index(doc.ID, entry(doc)); err != nil {
		return fmt.Errorf("index %s: %w", doc.ID, err)
	}
	if _, exists := e.docs[doc.ID]; !exists {
		e.order = append(e.order, doc.ID)
	}
	e.docs[doc.ID] = doc
	return nil
}

// DocCount returns the number of indexed documents.
func (e *Engine) DocCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.docs)
}

// fieldQuery builds the forward-matching query for one field: every
// whitespace token must match a term prefix within that field.
func fieldQuery(field, text string) query.Query {
	tokens := strings.Fields(strings.ToLower(text))
	if len(tokens) == 0 {
		return nil
	}

	prefixes := make([]query.Query, 0, len(tokens))
	for _, tok := range tokens {
		pq := bleve2.NewPrefixQuery(tok)
		pq.SetField(field)
		prefixes = append(prefixes, pq)
	}
	if len(prefixes) == 1 {
		return prefixes[0]
	}
	return bleve2.NewConjunctionQuery(prefixes...)
}

// Search runs one query per indexed field and returns the per-field
// result sets in field declaration order, each enriched from the
// document registry and capped at limit hits.
func (e *Engine) Search(ctx context.Context, text string, limit int) ([]driven.FieldMatches, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		return nil, domain.ErrEngineClosed
	}
	if limit < 1 {
		limit = domain.RawSearchLimit
	}

	var sets []driven.FieldMatches
	for _, field := range IndexedFields {
		q := fieldQuery(field, text)
		if q == nil {
			continue
		}

		req := bleve2.NewSearchRequestOptions(q, limit, 0, false)
		res, err := e.idx.SearchInContext(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("search field %s: %w", field, err)
		}

		hits := make([]driven.Hit, 0, len(res.Hits))
		for _, match := range res.Hits {
			doc, ok := e.docs[match.ID]
			if !ok {
				continue
			}
			hits = append(hits, driven.Hit{ID: match.ID, Document: doc})
		}
		if len(hits) > 0 {
			sets = append(sets, driven.FieldMatches{Field: field, Hits: hits})
		}
	}

	return sets, nil
}

// Export serialises the engine state: the manifest first, then the
// document registry split round-robin across the doc shards. The
// parts channel closes only after every part has been emitted.
func (e *Engine) Export(ctx context.Context) (<-chan driven.IndexPart, <-chan error) {
	parts := make(chan driven.IndexPart)
	errs := make(chan error, 1)

	go func() {
		defer close(parts)
		defer close(errs)

		e.mu.RLock()
		m := manifest{
			Version: manifestVersion,
			Fields:  IndexedFields,
			Count:   len(e.docs),
			Shards:  docShards,
		}
		shards := make([][]domain.Document, docShards)
		for i, id := range e.order {
			shards[i%docShards] = append(shards[i%docShards], e.docs[id])
		}
		e.mu.RUnlock()

		emit := func(name string, payload any) bool {
			data, err := json.Marshal(payload)
			if err != nil {
				errs <- fmt.Errorf("marshal part %s: %w", name, err)
				return false
			}
			select {
			case parts <- driven.IndexPart{Name: name, Data: data}:
				return true
			case <-ctx.Done():
				errs <- ctx.Err()
				return false
			}
		}

		if !emit("manifest", m) {
			return
		}
		for i, shard := range shards {
			if shard == nil {
				shard = []domain.Document{}
			}
			if !emit(fmt.Sprintf("docs-%d", i+1), shard) {
				return
			}
		}
	}()

	return parts, errs
}

// Import merges one part. The manifest must arrive before any doc
// shard and is rejected when produced by an incompatible engine.
func (e *Engine) Import(ctx context.Context, part driven.IndexPart) error {
	if part.Name == "manifest" {
		var m manifest
		if err := json.Unmarshal(part.Data, &m); err != nil {
			return fmt.Errorf("%w: manifest: %v", domain.ErrPartInvalid, err)
		}
		if m.Version != manifestVersion {
			return fmt.Errorf("%w: manifest version %d", domain.ErrPartInvalid, m.Version)
		}
		if m.Shards != docShards {
			return fmt.Errorf("%w: %d shards, want %d", domain.ErrPartInvalid, m.Shards, docShards)
		}
		return nil
	}

	var docs []domain.Document
	if err := json.Unmarshal(part.Data, &docs); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrPartInvalid, part.Name, err)
	}
	for _, doc := range docs {
		if err := e.Index(ctx, doc); err != nil {
			return fmt.Errorf("import %s: %w", part.Name, err)
		}
	}
	return nil
}

// Close releases the bleve index. The engine rejects further use.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	return e.idx.Close()
}
