package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/minbar-labs/minbar-cli/internal/core/domain"
)

// initDoneMsg reports that the search service finished initialising.
type initDoneMsg struct {
	err error
}

// searchDoneMsg carries the results of one query.
type searchDoneMsg struct {
	query   string
	results []domain.SearchResult
}

// bookmarkToggledMsg reports a bookmark add or remove.
type bookmarkToggledMsg struct {
	documentID string
	bookmarked bool
	err        error
}

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *Styles

	input textinput.Model

	// filters holds the collection filter cycle: "all" then the
	// catalogue in canonical order.
	filters     []string
	filterIndex int

	query         string
	results       []domain.SearchResult
	selectedIndex int

	// bookmarked caches bookmark state per visible result.
	bookmarked map[string]bool

	status string
	err    error

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	ti := textinput.New()
	ti.Placeholder = "হাদিস খুঁজুন..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	filters := []string{domain.FilterAll}
	for _, col := range domain.Catalogue() {
		filters = append(filters, col.ID)
	}

	return &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     DefaultStyles(),
		input:      ti,
		filters:    filters,
		bookmarked: make(map[string]bool),
		status:     "Loading index...",
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle("minbar - Hadith Search"),
		a.initSearch(),
	)
}

// initSearch initialises the search service off the UI loop.
func (a *App) initSearch() tea.Cmd {
	return func() tea.Msg {
		return initDoneMsg{err: a.ports.Search.Init(a.ctx)}
	}
}

// runSearch executes the current query with the active filter.
func (a *App) runSearch() tea.Cmd {
	query := a.input.Value()
	opts := domain.SearchOptions{CollectionID: a.filters[a.filterIndex]}

	return func() tea.Msg {
		return searchDoneMsg{
			query:   query,
			results: a.ports.Search.Search(a.ctx, query, opts),
		}
	}
}

// toggleBookmark adds or removes the bookmark for the selected result.
func (a *App) toggleBookmark() tea.Cmd {
	if a.ports.Bookmarks == nil || len(a.results) == 0 {
		return nil
	}

	doc := a.results[a.selectedIndex].Document
	bookmarked := a.bookmarked[doc.ID]

	return func() tea.Msg {
		if bookmarked {
			err := a.ports.Bookmarks.Remove(a.ctx, doc.ID)
			return bookmarkToggledMsg{documentID: doc.ID, bookmarked: false, err: err}
		}
		_, err := a.ports.Bookmarks.Add(a.ctx, doc)
		return bookmarkToggledMsg{documentID: doc.ID, bookmarked: true, err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = max(20, msg.Width-12)
		return a, nil

	case initDoneMsg:
		if msg.err != nil {
			a.status = a.ports.Search.Message()
			a.err = msg.err
		} else {
			a.status = ""
		}
		return a, nil

	case searchDoneMsg:
		a.query = msg.query
		a.results = msg.results
		a.selectedIndex = 0
		return a, nil

	case bookmarkToggledMsg:
		if msg.err != nil {
			a.status = fmt.Sprintf("Bookmark failed: %v", msg.err)
			return a, nil
		}
		a.bookmarked[msg.documentID] = msg.bookmarked
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleKey routes key presses.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return a, tea.Quit

	case "enter":
		return a, a.runSearch()

	case "tab":
		a.filterIndex = (a.filterIndex + 1) % len(a.filters)
		if a.query != "" {
			return a, a.runSearch()
		}
		return a, nil

	case "up", "ctrl+k":
		if a.selectedIndex > 0 {
			a.selectedIndex--
		}
		return a, nil

	case "down", "ctrl+j":
		if a.selectedIndex < len(a.results)-1 {
			a.selectedIndex++
		}
		return a, nil

	case "ctrl+b":
		return a, a.toggleBookmark()
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("minbar"))
	b.WriteString("  ")
	b.WriteString(a.styles.Muted.Render(a.filterLabel()))
	b.WriteString("\n\n")
	b.WriteString(a.styles.InputField.Render(a.input.View()))
	b.WriteString("\n\n")

	if a.err != nil {
		b.WriteString(a.styles.Error.Render(a.status))
		b.WriteString("\n")
	} else if a.status != "" {
		b.WriteString(a.styles.Muted.Render(a.status))
		b.WriteString("\n")
	} else {
		b.WriteString(a.viewResults())
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("enter search · tab filter · ↑/↓ navigate · ctrl+b bookmark · esc quit"))

	return b.String()
}

// filterLabel renders the active collection filter.
func (a *App) filterLabel() string {
	id := a.filters[a.filterIndex]
	if id == domain.FilterAll {
		return "[all collections]"
	}
	if col, ok := domain.CollectionByID(id); ok {
		return "[" + col.Name + "]"
	}
	return "[" + id + "]"
}

// viewResults renders the result list.
func (a *App) viewResults() string {
	if a.query == "" {
		return a.styles.Muted.Render("Type a query and press enter.")
	}
	if len(a.results) == 0 {
		return a.styles.Muted.Render("No results for " + a.query + ".")
	}

	var b strings.Builder
	for i, result := range a.results {
		doc := result.Document

		marker := "  "
		if a.bookmarked[doc.ID] {
			marker = "★ "
		}

		header := fmt.Sprintf("%s%s #%d", marker, doc.CollectionName, doc.Number)
		if i == a.selectedIndex {
			b.WriteString(a.styles.Selected.Render(header))
		} else {
			b.WriteString(a.styles.Normal.Render(header))
		}
		if doc.Grade != "" {
			b.WriteString("  ")
			b.WriteString(gradeStyle(doc.GradeColor).Render(doc.Grade))
		}
		b.WriteString("\n")

		if doc.Narrator != "" {
			b.WriteString(a.styles.Muted.Render("    " + doc.Narrator))
			b.WriteString("\n")
		}
		b.WriteString(a.styles.Normal.Render("    " + doc.Excerpt))
		b.WriteString("\n\n")
	}

	b.WriteString(a.styles.StatusBar.Render(fmt.Sprintf("%d results", len(a.results))))
	return b.String()
}
