// Package memory holds the fallback corpus for the lifetime of the
// process. The first fallback load pays the network cost; later
// re-initialisations replay the cached documents instead of hitting
// the CDN again.
package memory

import (
	"sync"

	"github.com/minbar-labs/minbar-cli/internal/core/domain"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driven"
)

// Ensure Cache implements the interface.
var _ driven.DocumentCache = (*Cache)(nil)

// Cache is a write-once in-process document cache.
type Cache struct {
	mu   sync.RWMutex
	docs []domain.Document
	set  bool
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Get returns the cached documents and whether a set has been stored.
func (c *Cache) Get() ([]domain.Document, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.set {
		return nil, false
	}
	out := make([]domain.Document, len(c.docs))
	copy(out, c.docs)
	return out, true
}

// Put stores the document set. The first non-empty set wins; later
// calls are ignored so a completed fallback load is never clobbered.
func (c *Cache) Put(docs []domain.Document) {
	if len(docs) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set {
		return
	}
	c.docs = make([]domain.Document, len(docs))
	copy(c.docs, docs)
	c.set = true
}
