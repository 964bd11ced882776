package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	cfgfile "github.com/minbar-labs/minbar-cli/internal/adapters/driven/config/file"
	"github.com/minbar-labs/minbar-cli/internal/adapters/driven/engine/bleve"
	indexfile "github.com/minbar-labs/minbar-cli/internal/adapters/driven/index/file"
	"github.com/minbar-labs/minbar-cli/internal/core/services"
)

var buildDir string

var buildCmd = &cobra.Command{
	Use:   "build-index",
	Short: "Build the full search index offline",
	Long: `Scans every hadith in all six collections, indexes each valid
document, and writes the serialised index parts to the part directory.
Individual fetch failures are skipped and counted; the build only
fails on errors outside the per-document loop.

The full scan issues one request per hadith and takes a while. Progress
is logged with --verbose.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildDir, "dir", "d", "", "output directory for index parts (default from config, then ./search-index)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	if builderService == nil {
		cfg, err := config()
		if err != nil {
			return err
		}

		dir := buildDir
		if dir == "" {
			dir = cfg.GetString(cfgfile.KeyIndexDir)
		}

		writer, err := indexfile.NewStore(dir)
		if err != nil {
			return fmt.Errorf("opening part directory: %w", err)
		}

		engine, err := bleve.New()
		if err != nil {
			return fmt.Errorf("creating engine: %w", err)
		}

		builderService = services.NewBuildService(engine, newCorpusClient(cfg), writer)
	}

	stats, err := builderService.Build(cmd.Context())
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	cmd.Printf("Indexed %d documents (%d skipped)\n", stats.Indexed, stats.Skipped)

	ids := make([]string, 0, len(stats.PerCollection))
	for id := range stats.PerCollection {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		cmd.Printf("  %-12s %d\n", id, stats.PerCollection[id])
	}

	cmd.Printf("Parts written: %v\n", stats.Parts)
	return nil
}
