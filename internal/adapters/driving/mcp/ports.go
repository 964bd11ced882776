package mcp

import (
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Search provides hadith search.
	Search driving.SearchService

	// Bookmarks manages saved hadith references. Optional.
	Bookmarks driving.BookmarkService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
