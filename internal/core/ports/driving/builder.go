package driving

import "context"

// BuildStats summarises one offline index build.
type BuildStats struct {
	// RunID identifies the build run in logs.
	RunID string

	// Indexed is the number of documents inserted into the index.
	Indexed int

	// Skipped is the number of fetches that failed or produced an
	// invalid record. Skips are expected and non-fatal.
	Skipped int

	// PerCollection maps collection id to documents indexed from it.
	PerCollection map[string]int

	// Parts lists the names of the serialised parts written out.
	Parts []string
}

// IndexBuilder produces the serialised search index covering the
// full corpus.
type IndexBuilder interface {
	// Build scans the whole catalogue, indexes every valid document,
	// and writes the exported index parts. It returns an error only
	// for failures outside the per-document fetch loop; individual
	// fetch failures are skipped and counted in the stats.
	Build(ctx context.Context) (*BuildStats, error)
}
