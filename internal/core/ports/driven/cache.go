package driven

import "github.com/minbar-labs/minbar-cli/internal/core/domain"

// DocumentCache memoises the documents fetched by the runtime
// fallback build, so a second service initialisation in the same
// session replays the cached set instead of hitting the network.
// The cache is written once and read-only afterwards.
type DocumentCache interface {
	// Get returns the cached documents and whether the cache has
	// been populated.
	Get() ([]domain.Document, bool)

	// Put populates the cache. A populated cache is not replaced.
	Put(docs []domain.Document)
}
