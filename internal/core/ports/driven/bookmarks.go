package driven

import "context"

// Bookmark is a saved hadith reference.
type Bookmark struct {
	// ID is the bookmark's own identifier.
	ID string

	// DocumentID is the bookmarked hadith.
	DocumentID string

	// CollectionID and Number locate the hadith for display.
	CollectionID string
	Number       int

	// Excerpt is the bookmarked hadith's list-view excerpt.
	Excerpt string
}

// BookmarkStore persists bookmarks. Backed by SQLite.
type BookmarkStore interface {
	// Save stores a bookmark. Saving an already-bookmarked document
	// returns domain.ErrAlreadyExists.
	Save(ctx context.Context, b Bookmark) error

	// Delete removes the bookmark for a document. Returns
	// domain.ErrNotFound when the document is not bookmarked.
	Delete(ctx context.Context, documentID string) error

	// Get retrieves the bookmark for a document.
	Get(ctx context.Context, documentID string) (*Bookmark, error)

	// List returns all bookmarks, newest first.
	List(ctx context.Context) ([]Bookmark, error)

	// Close releases store resources.
	Close() error
}
