package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/minbar-labs/minbar-cli/internal/core/domain"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driven"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driving"
)

// Ensure BookmarkService implements the interface.
var _ driving.BookmarkService = (*BookmarkService)(nil)

// BookmarkService manages saved hadith references over a persistent
// store.
type BookmarkService struct {
	store driven.BookmarkStore
}

// NewBookmarkService creates a bookmark service.
func NewBookmarkService(store driven.BookmarkStore) *BookmarkService {
	return &BookmarkService{store: store}
}

// Add bookmarks a document.
func (s *BookmarkService) Add(ctx context.Context, doc domain.Document) (*driven.Bookmark, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	b := driven.Bookmark{
		ID:           uuid.NewString(),
		DocumentID:   doc.ID,
		CollectionID: doc.CollectionID,
		Number:       doc.Number,
		Excerpt:      doc.Excerpt,
	}
	if b.Excerpt == "" {
		b.Excerpt = domain.MakeExcerpt(doc.Text)
	}

	if err := s.store.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("save bookmark: %w", err)
	}
	return &b, nil
}

// Remove deletes the bookmark for a document.
func (s *BookmarkService) Remove(ctx context.Context, documentID string) error {
	if err := s.store.Delete(ctx, documentID); err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	return nil
}

// List returns all bookmarks, newest first.
func (s *BookmarkService) List(ctx context.Context) ([]driven.Bookmark, error) {
	bookmarks, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return bookmarks, nil
}

// IsBookmarked reports whether a document is bookmarked.
func (s *BookmarkService) IsBookmarked(ctx context.Context, documentID string) (bool, error) {
	_, err := s.store.Get(ctx, documentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get bookmark: %w", err)
	}
	return true, nil
}
