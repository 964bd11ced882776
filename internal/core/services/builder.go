package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/minbar-labs/minbar-cli/internal/core/domain"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driven"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driving"
	"github.com/minbar-labs/minbar-cli/internal/logger"
)

// Ensure BuildService implements the interface.
var _ driving.IndexBuilder = (*BuildService)(nil)

// progressInterval is how many successful insertions pass between
// progress log lines.
const progressInterval = 100

// BuildService runs the offline index build: a full scan of the
// corpus catalogue, document by document, followed by an export of
// the engine state into serialised parts.
type BuildService struct {
	engine driven.SearchEngine
	corpus driven.CorpusClient
	writer driven.PartWriter
}

// NewBuildService creates an index builder.
func NewBuildService(engine driven.SearchEngine, corpus driven.CorpusClient, writer driven.PartWriter) *BuildService {
	return &BuildService{
		engine: engine,
		corpus: corpus,
		writer: writer,
	}
}

// Build scans every collection in the catalogue and indexes each
// valid document. A single fetch or parse failure is skipped and
// counted, never fatal; the scan always covers the full catalogue.
// Errors are returned only from outside the per-document loop:
// context cancellation, the engine export, or part writing.
func (b *BuildService) Build(ctx context.Context) (*driving.BuildStats, error) {
	stats := &driving.BuildStats{
		RunID:         uuid.NewString(),
		PerCollection: make(map[string]int),
	}

	logger.Section("Index Build")
	logger.Info("Starting search index build (run %s)", stats.RunID)

	for _, col := range domain.Catalogue() {
		logger.Info("Processing %s...", col.Name)

		for number := 1; number <= col.TotalHadith; number++ {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			doc, err := b.corpus.FetchDocument(ctx, col, number)
			if err != nil {
				stats.Skipped++
				if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidDocument) {
					logger.Warn("Could not fetch hadith %s/%d: %v", col.Path, number, err)
				} else {
					logger.Error("Error processing %s/%d: %v", col.Path, number, err)
				}
				continue
			}

			if err := b.engine.Index(ctx, doc); err != nil {
				stats.Skipped++
				logger.Error("Error indexing %s: %v", doc.ID, err)
				continue
			}

			stats.Indexed++
			stats.PerCollection[col.ID]++
			if stats.Indexed%progressInterval == 0 {
				logger.Info("Indexed %d hadith...", stats.Indexed)
			}
		}
	}

	logger.Info("Total hadith indexed: %d (%d skipped)", stats.Indexed, stats.Skipped)
	logger.Info("Exporting index...")

	if err := b.exportParts(ctx, stats); err != nil {
		return nil, err
	}

	logger.Info("Search index build complete: %d parts written", len(stats.Parts))
	return stats, nil
}

// exportParts drains the engine's export stream, writing each part as
// it arrives. It returns only after the stream is closed and every
// part has been flushed, so a successful build always has the
// complete part set on storage.
func (b *BuildService) exportParts(ctx context.Context, stats *driving.BuildStats) error {
	parts, errs := b.engine.Export(ctx)

	for part := range parts {
		if err := b.writer.WritePart(ctx, part); err != nil {
			return fmt.Errorf("write part %s: %w", part.Name, err)
		}
		logger.Debug("Wrote part %s (%d bytes)", part.Name, len(part.Data))
		stats.Parts = append(stats.Parts, part.Name)
	}

	if err, ok := <-errs; ok && err != nil {
		return fmt.Errorf("export index: %w", err)
	}
	return nil
}
