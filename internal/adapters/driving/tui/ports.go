// Package tui provides the interactive terminal UI for searching the
// hadith collections.
package tui

import (
	"errors"

	"github.com/minbar-labs/minbar-cli/internal/core/ports/driving"
)

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("tui: search service is required")

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Search provides hadith search.
	Search driving.SearchService

	// Bookmarks manages saved hadith references. Optional; without it
	// the bookmark toggle is disabled.
	Bookmarks driving.BookmarkService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
