package driven

import (
	"context"

	"github.com/minbar-labs/minbar-cli/internal/core/domain"
)

// Hit is a single engine match: the document id plus the stored
// document, enriched for display without a second lookup.
type Hit struct {
	ID       string
	Document domain.Document
}

// FieldMatches is the engine's native result shape: the hits for one
// indexed field, in the engine's relevance order for that field. A
// document matching several fields appears in several FieldMatches;
// deduplication is the query pipeline's job, not the engine's.
type FieldMatches struct {
	// Field is the indexed field these hits matched on.
	Field string

	// Hits are the matches for the field, best first.
	Hits []Hit
}

// IndexPart is one serialised fragment of the engine's state. Parts
// are persisted and loaded independently; the part set as a whole
// reconstructs the index.
type IndexPart struct {
	// Name is the fixed part identifier, also used as the filename
	// stem ("manifest", "docs-1", ...).
	Name string

	// Data is the part payload, valid JSON.
	Data []byte
}

// SearchEngine provides full-text indexing and forward-matching
// search over hadith documents. Backed by bleve.
type SearchEngine interface {
	// Index adds a document to the engine. Re-indexing an existing id
	// replaces the stored document (last write wins).
	Index(ctx context.Context, doc domain.Document) error

	// Search runs a forward/prefix tokenised query against every
	// indexed field and returns one result set per field, in field
	// declaration order, each capped at limit hits.
	Search(ctx context.Context, query string, limit int) ([]FieldMatches, error)

	// DocCount returns the number of indexed documents.
	DocCount() int

	// Export serialises the engine state as a sequence of named
	// parts. The parts channel is closed once every part has been
	// emitted; a failure is reported on the error channel.
	Export(ctx context.Context) (<-chan IndexPart, <-chan error)

	// Import merges one serialised part into the engine. Parts must
	// be imported in the order Export produced them, manifest first.
	Import(ctx context.Context, part IndexPart) error

	// Close releases engine resources.
	Close() error
}
