package driving

import (
	"context"

	"github.com/minbar-labs/minbar-cli/internal/core/domain"
)

// SearchState describes the lifecycle of the search service.
type SearchState int

const (
	// StateLoading means initialisation has not completed yet.
	// Callers should defer querying until the service is ready.
	StateLoading SearchState = iota

	// StateReady means the index is loaded and queryable.
	StateReady

	// StateError means both the precomputed load and the fallback
	// build failed. Queries return empty results.
	StateError
)

// String returns the state name for display and logging.
func (s SearchState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// SearchService provides search over the hadith index.
//
// Search never fails from the caller's perspective: any internal
// error degrades to an empty result list and is logged, so UI code
// has no error path to handle.
type SearchService interface {
	// Init loads the index, preferring the precomputed parts and
	// falling back to a bounded live build. It runs once per service
	// instance; later calls are no-ops. The returned error reports a
	// total initialisation failure and is also reflected in State.
	Init(ctx context.Context) error

	// Search runs a query with optional filters. An empty or
	// whitespace query yields an empty result list.
	Search(ctx context.Context, query string, opts domain.SearchOptions) []domain.SearchResult

	// State reports the service lifecycle state.
	State() SearchState

	// Message returns the user-facing message for the error state,
	// empty otherwise.
	Message() string
}
