// Package cli implements the minbar command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cfgfile "github.com/minbar-labs/minbar-cli/internal/adapters/driven/config/file"
	"github.com/minbar-labs/minbar-cli/internal/adapters/driven/corpus/cdn"
	"github.com/minbar-labs/minbar-cli/internal/adapters/driven/engine/bleve"
	indexfile "github.com/minbar-labs/minbar-cli/internal/adapters/driven/index/file"
	"github.com/minbar-labs/minbar-cli/internal/adapters/driven/index/web"
	"github.com/minbar-labs/minbar-cli/internal/adapters/driven/storage/memory"
	"github.com/minbar-labs/minbar-cli/internal/adapters/driven/storage/sqlite"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driven"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driving"
	"github.com/minbar-labs/minbar-cli/internal/core/services"
	"github.com/minbar-labs/minbar-cli/internal/logger"
)

// version is set by the version command; overridden at build time.
var version = "dev"

var verbose bool

// Package-level services. Wired lazily on first use; tests inject
// fakes directly.
var (
	searchService   driving.SearchService
	builderService  driving.IndexBuilder
	bookmarkService driving.BookmarkService
	configStore     driven.ConfigStore
)

// sessionCache holds fallback documents for the process lifetime so
// repeated loads in one run skip the corpus fetch.
var sessionCache = memory.NewCache()

var rootCmd = &cobra.Command{
	Use:   "minbar",
	Short: "Search the six canonical hadith collections",
	Long: `Minbar searches the Bengali hadith corpus across the six canonical
collections. The index is built offline with build-index and loaded as
precomputed parts at runtime, with a bounded live fallback when the
parts are unavailable.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// config returns the TOML config store, opening it on first use.
func config() (driven.ConfigStore, error) {
	if configStore != nil {
		return configStore, nil
	}
	store, err := cfgfile.NewConfigStore("")
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	configStore = store
	return configStore, nil
}

// newCorpusClient wires the CDN corpus client from configuration.
func newCorpusClient(cfg driven.ConfigStore) *cdn.Client {
	return cdn.New(cfg.GetString(cfgfile.KeyCorpusURL), nil)
}

// newSearchService wires a fresh search service from configuration.
// An index URL selects the HTTP part source; otherwise parts come
// from the local part directory.
func newSearchService(cfg driven.ConfigStore) (driving.SearchService, error) {
	engine, err := bleve.New()
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}

	var parts driven.PartSource
	if url := cfg.GetString(cfgfile.KeyIndexURL); url != "" {
		parts = web.NewSource(url, nil)
	} else {
		store, err := indexfile.NewStore(cfg.GetString(cfgfile.KeyIndexDir))
		if err != nil {
			return nil, fmt.Errorf("opening part directory: %w", err)
		}
		parts = store
	}

	return services.NewSearchService(engine, parts, newCorpusClient(cfg), sessionCache), nil
}

// getSearchService returns the shared search service, wiring it on
// first use.
func getSearchService() (driving.SearchService, error) {
	if searchService != nil {
		return searchService, nil
	}

	cfg, err := config()
	if err != nil {
		return nil, err
	}

	service, err := newSearchService(cfg)
	if err != nil {
		return nil, err
	}
	searchService = service
	return searchService, nil
}

// getBookmarkService returns the shared bookmark service, wiring the
// SQLite store on first use.
func getBookmarkService() (driving.BookmarkService, error) {
	if bookmarkService != nil {
		return bookmarkService, nil
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return nil, fmt.Errorf("opening bookmark store: %w", err)
	}
	bookmarkService = services.NewBookmarkService(store)
	return bookmarkService, nil
}
