package driving

import (
	"context"

	"github.com/minbar-labs/minbar-cli/internal/core/domain"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driven"
)

// BookmarkService manages saved hadith references.
type BookmarkService interface {
	// Add bookmarks a document.
	Add(ctx context.Context, doc domain.Document) (*driven.Bookmark, error)

	// Remove deletes the bookmark for a document.
	Remove(ctx context.Context, documentID string) error

	// List returns all bookmarks, newest first.
	List(ctx context.Context) ([]driven.Bookmark, error)

	// IsBookmarked reports whether a document is bookmarked.
	IsBookmarked(ctx context.Context, documentID string) (bool, error)
}
