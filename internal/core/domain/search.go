package domain

import "strings"

const (
	// FilterAll is the sentinel meaning "do not filter on this field".
	FilterAll = "all"

	// RawSearchLimit bounds how many raw matches are requested from
	// the engine per query, before dedup and filtering.
	RawSearchLimit = 50

	// MaxSearchResults bounds the final result list handed to callers.
	MaxSearchResults = 20
)

// SearchOptions carries the optional filters for a query. A zero
// value or FilterAll in any field disables that filter; all supplied
// filters are combined with AND.
type SearchOptions struct {
	// CollectionID restricts results to one collection (exact match).
	CollectionID string

	// Grade restricts results to one grade label (exact match).
	Grade string

	// Narrator restricts results to documents whose narrator contains
	// this substring, case-insensitively.
	Narrator string
}

// SearchResult pairs a matched document id with the stored document.
// Results are transient and produced per query.
type SearchResult struct {
	ID       string
	Document Document
}

// Matches reports whether the document passes every active filter.
func (o SearchOptions) Matches(d Document) bool {
	if o.CollectionID != "" && o.CollectionID != FilterAll && d.CollectionID != o.CollectionID {
		return false
	}
	if o.Grade != "" && o.Grade != FilterAll && d.Grade != o.Grade {
		return false
	}
	if o.Narrator != "" {
		if !strings.Contains(strings.ToLower(d.Narrator), strings.ToLower(o.Narrator)) {
			return false
		}
	}
	return true
}
