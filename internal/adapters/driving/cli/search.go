package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minbar-labs/minbar-cli/internal/core/domain"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driving"
)

var (
	searchCollection string
	searchGrade      string
	searchNarrator   string
	searchJSON       bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the hadith collections",
	Long: `Searches translation, Arabic text, narrator and grade across the
indexed collections. Filters narrow the results after matching:
--collection and --grade match exactly, --narrator matches anywhere in
the narrator chain.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchCollection, "collection", "c", domain.FilterAll, "restrict to one collection id")
	searchCmd.Flags().StringVarP(&searchGrade, "grade", "g", domain.FilterAll, "restrict to one authenticity grade")
	searchCmd.Flags().StringVarP(&searchNarrator, "narrator", "n", "", "restrict to narrators containing this text")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	service, err := getSearchService()
	if err != nil {
		return err
	}

	if err := service.Init(cmd.Context()); err != nil {
		return fmt.Errorf("%s", service.Message())
	}

	opts := domain.SearchOptions{
		CollectionID: searchCollection,
		Grade:        searchGrade,
		Narrator:     searchNarrator,
	}

	results := service.Search(cmd.Context(), query, opts)

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, service, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, service driving.SearchService, results []domain.SearchResult) error {
	if service.State() == driving.StateError {
		cmd.Println(service.Message())
		return nil
	}

	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("%d results:\n\n", len(results))
	for i := range results {
		doc := results[i].Document

		cmd.Printf("  [%d] %s #%d", i+1, doc.CollectionName, doc.Number)
		if doc.Grade != "" {
			cmd.Printf(" (%s)", doc.Grade)
		}
		cmd.Println()

		if doc.Narrator != "" {
			cmd.Printf("      %s\n", doc.Narrator)
		}
		cmd.Printf("      %s\n", doc.Excerpt)
		cmd.Println()
	}

	return nil
}
