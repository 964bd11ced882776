package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minbar-labs/minbar-cli/internal/core/domain"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driven"
)

// smallCatalogueCorpus populates a corpus with a handful of documents
// per collection; everything else 404s and must be skipped.
func smallCatalogueCorpus() *fakeCorpus {
	corpus := newFakeCorpus()
	for _, col := range domain.Catalogue() {
		for n := 1; n <= 3; n++ {
			corpus.addDocument(col.ID, n, makeDoc(col.ID, 1, n, "some hadith text"))
		}
	}
	return corpus
}

// TestBuild_SkipsFailuresAndCompletes tests that missing documents
// are skipped, counted, and never abort the scan.
func TestBuild_SkipsFailuresAndCompletes(t *testing.T) {
	engine := newFakeEngine()
	corpus := smallCatalogueCorpus()
	writer := &fakePartWriter{}

	stats, err := NewBuildService(engine, corpus, writer).Build(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 18, stats.Indexed) // 6 collections x 3 documents
	assert.Equal(t, 18, engine.DocCount())
	assert.NotEmpty(t, stats.RunID)

	// Every document number in the catalogue was attempted.
	wantAttempts := 0
	for _, col := range domain.Catalogue() {
		wantAttempts += col.TotalHadith
	}
	assert.Equal(t, wantAttempts, corpus.docCalls)
	assert.Equal(t, wantAttempts-18, stats.Skipped)
}

// TestBuild_PerCollectionCounts tests the per-collection breakdown.
func TestBuild_PerCollectionCounts(t *testing.T) {
	engine := newFakeEngine()
	corpus := smallCatalogueCorpus()

	stats, err := NewBuildService(engine, corpus, &fakePartWriter{}).Build(context.Background())

	require.NoError(t, err)
	require.Len(t, stats.PerCollection, 6)
	for _, col := range domain.Catalogue() {
		assert.Equal(t, 3, stats.PerCollection[col.ID], col.ID)
	}
}

// TestBuild_WritesAllParts tests the export completion barrier: the
// build reports success only with the full part set written.
func TestBuild_WritesAllParts(t *testing.T) {
	engine := newFakeEngine()
	corpus := smallCatalogueCorpus()
	writer := &fakePartWriter{}

	stats, err := NewBuildService(engine, corpus, writer).Build(context.Background())

	require.NoError(t, err)
	require.Len(t, writer.parts, len(driven.PartNames))
	assert.Equal(t, driven.PartNames, stats.Parts)
	for i, part := range writer.parts {
		assert.Equal(t, driven.PartNames[i], part.Name)
		assert.NotEmpty(t, part.Data)
	}
}

// TestBuild_WriteFailureIsFatal tests that part-write errors, being
// outside the per-document loop, fail the build.
func TestBuild_WriteFailureIsFatal(t *testing.T) {
	engine := newFakeEngine()
	corpus := smallCatalogueCorpus()
	writer := &fakePartWriter{failOn: "docs-2"}

	_, err := NewBuildService(engine, corpus, writer).Build(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "docs-2")
}

// TestBuild_ContextCancelled tests that cancellation stops the scan.
func TestBuild_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBuildService(newFakeEngine(), smallCatalogueCorpus(), &fakePartWriter{}).Build(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
