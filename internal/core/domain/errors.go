package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidDocument indicates a source record that cannot become
	// an indexable document (missing id or text).
	ErrInvalidDocument = errors.New("invalid document")

	// ErrUnknownCollection indicates a collection id outside the
	// fixed catalogue.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrIndexUnavailable indicates the search index failed to
	// initialise. Queries against an unavailable index return empty
	// results rather than failing.
	ErrIndexUnavailable = errors.New("search index unavailable")

	// ErrPartInvalid indicates a serialised index part that is
	// missing, malformed, or served with the wrong content type.
	ErrPartInvalid = errors.New("invalid index part")

	// ErrEngineClosed indicates the search engine has been closed.
	ErrEngineClosed = errors.New("search engine closed")
)
