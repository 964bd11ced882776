package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minbar-labs/minbar-cli/internal/adapters/driving/mcp"
	"github.com/minbar-labs/minbar-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC. Use
--port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  minbar mcp serve

  # HTTP mode
  minbar mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	search, err := getSearchService()
	if err != nil {
		return err
	}
	if err := search.Init(cmd.Context()); err != nil {
		logger.Warn("Index unavailable: %v", err)
	}

	bookmarks, err := getBookmarkService()
	if err != nil {
		logger.Warn("Bookmarks disabled: %v", err)
		bookmarks = nil
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Search:    search,
		Bookmarks: bookmarks,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
