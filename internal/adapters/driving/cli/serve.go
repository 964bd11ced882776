package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cfgfile "github.com/minbar-labs/minbar-cli/internal/adapters/driven/config/file"
	indexfile "github.com/minbar-labs/minbar-cli/internal/adapters/driven/index/file"
	"github.com/minbar-labs/minbar-cli/internal/adapters/driving/httpapi"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driving"
	"github.com/minbar-labs/minbar-cli/internal/logger"
)

var (
	serveAddr string
	serveDir  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search API and index parts over HTTP",
	Long: `Starts an HTTP server exposing the search API under /api and the
serialised index parts under /search-index/ for browser clients.

The part directory is watched; rerunning build-index swaps the fresh
index in without a restart.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (default from config, then "+httpapi.DefaultAddr+")")
	serveCmd.Flags().StringVarP(&serveDir, "dir", "d", "", "index part directory (default from config, then ./search-index)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config()
	if err != nil {
		return err
	}

	dir := serveDir
	if dir == "" {
		dir = cfg.GetString(cfgfile.KeyIndexDir)
	}
	store, err := indexfile.NewStore(dir)
	if err != nil {
		return fmt.Errorf("opening part directory: %w", err)
	}

	newSearch := func() driving.SearchService {
		service, err := newSearchService(cfg)
		if err != nil {
			// Engine creation failing here means something is badly
			// wrong; surface it through the error state on Init.
			logger.Error("Wiring search service: %v", err)
			return nil
		}
		return service
	}

	search, err := getSearchService()
	if err != nil {
		return err
	}
	if err := search.Init(cmd.Context()); err != nil {
		logger.Warn("Index unavailable at startup: %v", err)
	}

	server, err := httpapi.NewServer(httpapi.Config{
		Search:    search,
		NewSearch: newSearch,
		PartDir:   store.Dir(),
	})
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.GetString(cfgfile.KeyServeAddr)
	}

	return server.Start(cmd.Context(), addr)
}
