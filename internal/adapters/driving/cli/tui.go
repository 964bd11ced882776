package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/minbar-labs/minbar-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Minbar.

Type a query and press enter to search. Results show the collection,
hadith number, narrator, grade and an excerpt.

Controls:
  Enter    - Search
  Tab      - Cycle collection filter
  ↑/↓      - Navigate results
  Ctrl+B   - Toggle bookmark on the selected result
  Esc      - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	search, err := getSearchService()
	if err != nil {
		return err
	}

	// Bookmarks are optional; the TUI runs without them.
	bookmarks, err := getBookmarkService()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bookmarks disabled: %v\n", err)
		bookmarks = nil
	}

	app, err := tui.NewApp(&tui.Ports{
		Search:    search,
		Bookmarks: bookmarks,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
