package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minbar-labs/minbar-cli/internal/core/domain"
)

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Manage bookmarked hadith",
}

var bookmarkAddCmd = &cobra.Command{
	Use:   "add [collection] [number]",
	Short: "Bookmark a hadith by collection and number",
	Args:  cobra.ExactArgs(2),
	RunE:  runBookmarkAdd,
}

var bookmarkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarked hadith, newest first",
	RunE:  runBookmarkList,
}

var bookmarkRemoveCmd = &cobra.Command{
	Use:   "remove [document-id]",
	Short: "Remove a bookmark",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarkRemove,
}

func init() {
	bookmarkCmd.AddCommand(bookmarkAddCmd)
	bookmarkCmd.AddCommand(bookmarkListCmd)
	bookmarkCmd.AddCommand(bookmarkRemoveCmd)
	rootCmd.AddCommand(bookmarkCmd)
}

func runBookmarkAdd(cmd *cobra.Command, args []string) error {
	col, ok := domain.CollectionByID(args[0])
	if !ok {
		return fmt.Errorf("unknown collection %q", args[0])
	}

	var number int
	if _, err := fmt.Sscanf(args[1], "%d", &number); err != nil || number < 1 {
		return fmt.Errorf("invalid hadith number %q", args[1])
	}

	service, err := getBookmarkService()
	if err != nil {
		return err
	}

	doc, err := fetchDocument(cmd, col, number)
	if err != nil {
		return err
	}

	b, err := service.Add(cmd.Context(), doc)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			cmd.Printf("%s #%d is already bookmarked.\n", col.Name, number)
			return nil
		}
		return err
	}

	cmd.Printf("Bookmarked %s #%d (%s)\n", col.Name, number, b.DocumentID)
	return nil
}

// fetchDocument retrieves one hadith from the corpus host.
func fetchDocument(cmd *cobra.Command, col domain.Collection, number int) (domain.Document, error) {
	cfg, err := config()
	if err != nil {
		return domain.Document{}, err
	}

	corpus := newCorpusClient(cfg)
	doc, err := corpus.FetchDocument(cmd.Context(), col, number)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Document{}, fmt.Errorf("%s #%d not found", col.Name, number)
		}
		return domain.Document{}, fmt.Errorf("fetching hadith: %w", err)
	}
	return doc, nil
}

func runBookmarkList(cmd *cobra.Command, _ []string) error {
	service, err := getBookmarkService()
	if err != nil {
		return err
	}

	bookmarks, err := service.List(cmd.Context())
	if err != nil {
		return err
	}

	if len(bookmarks) == 0 {
		cmd.Println("No bookmarks.")
		return nil
	}

	for _, b := range bookmarks {
		name := b.CollectionID
		if col, ok := domain.CollectionByID(b.CollectionID); ok {
			name = col.Name
		}
		cmd.Printf("  %s #%d (%s)\n", name, b.Number, b.DocumentID)
		if b.Excerpt != "" {
			cmd.Printf("      %s\n", b.Excerpt)
		}
	}
	return nil
}

func runBookmarkRemove(cmd *cobra.Command, args []string) error {
	service, err := getBookmarkService()
	if err != nil {
		return err
	}

	if err := service.Remove(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no bookmark for %s", args[0])
		}
		return err
	}

	cmd.Printf("Removed bookmark for %s\n", args[0])
	return nil
}
