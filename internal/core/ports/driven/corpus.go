package driven

import (
	"context"

	"github.com/minbar-labs/minbar-cli/internal/core/domain"
)

// CorpusClient provides read-only access to the external hadith
// corpus. Implementations normalise the host's raw record shapes into
// canonical Documents at this boundary; records without a usable id
// or translation text are dropped, not returned.
type CorpusClient interface {
	// FetchDocument retrieves a single hadith by number. Returns
	// domain.ErrNotFound for a non-success HTTP status.
	FetchDocument(ctx context.Context, col domain.Collection, number int) (domain.Document, error)

	// FetchChapter retrieves one chapter's batch of hadith. Returns
	// domain.ErrNotFound for a non-success HTTP status.
	FetchChapter(ctx context.Context, col domain.Collection, chapterID int) ([]domain.Document, error)
}
