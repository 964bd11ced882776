package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/minbar-labs/minbar-cli/internal/core/domain"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driving"
)

// SearchInput is the input schema for the search_hadith tool.
type SearchInput struct {
	Query      string `json:"query" jsonschema:"the search text, matched against translation, Arabic, narrator and grade"`
	Collection string `json:"collection,omitempty" jsonschema:"restrict results to one collection id (e.g. bukhari), or 'all'"`
	Grade      string `json:"grade,omitempty" jsonschema:"restrict results to one authenticity grade, or 'all'"`
	Narrator   string `json:"narrator,omitempty" jsonschema:"restrict results to narrators containing this text"`
}

// SearchOutput is the output schema for the search_hadith tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
	State   string               `json:"state"`
	Message string               `json:"message,omitempty"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	ID         string `json:"id"`
	Collection string `json:"collection"`
	Number     int    `json:"number"`
	Narrator   string `json:"narrator,omitempty"`
	Excerpt    string `json:"excerpt"`
	Grade      string `json:"grade,omitempty"`
}

// CollectionsOutput is the output schema for the list_collections tool.
type CollectionsOutput struct {
	Collections []CollectionOutput `json:"collections"`
}

// CollectionOutput represents one hadith collection.
type CollectionOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BengaliName string `json:"bengali_name"`
	TotalHadith int    `json:"total_hadith"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_hadith",
		Description: "Search the hadith collections by keyword with optional collection, grade and narrator filters",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_collections",
		Description: "List the available hadith collections",
	}, s.handleListCollections)
}

// handleSearch handles the search_hadith tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.SearchOptions{
		CollectionID: input.Collection,
		Grade:        input.Grade,
		Narrator:     input.Narrator,
	}

	results := s.ports.Search.Search(ctx, input.Query, opts)

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
		State:   s.ports.Search.State().String(),
	}
	if s.ports.Search.State() == driving.StateError {
		output.Message = s.ports.Search.Message()
	}

	for i := range results {
		doc := results[i].Document
		output.Results[i] = SearchResultOutput{
			ID:         results[i].ID,
			Collection: doc.CollectionName,
			Number:     doc.Number,
			Narrator:   doc.Narrator,
			Excerpt:    doc.Excerpt,
			Grade:      doc.Grade,
		}
	}

	return nil, output, nil
}

// handleListCollections handles the list_collections tool invocation.
func (s *Server) handleListCollections(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, CollectionsOutput, error) {
	catalogue := domain.Catalogue()

	output := CollectionsOutput{
		Collections: make([]CollectionOutput, len(catalogue)),
	}
	for i, col := range catalogue {
		output.Collections[i] = CollectionOutput{
			ID:          col.ID,
			Name:        col.Name,
			BengaliName: col.BengaliName,
			TotalHadith: col.TotalHadith,
		}
	}

	return nil, output, nil
}
