// Package httpapi exposes the search service over HTTP and hosts the
// serialised index parts for browser clients. The part directory is
// watched so a rebuilt index is picked up without a restart.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/minbar-labs/minbar-cli/internal/core/domain"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driving"
	"github.com/minbar-labs/minbar-cli/internal/logger"
)

// DefaultAddr is the default listen address for the serve command.
const DefaultAddr = ":8432"

// ErrMissingSearchService is returned when no search service is provided.
var ErrMissingSearchService = errors.New("httpapi: search service is required")

// Config holds the server's dependencies.
type Config struct {
	// Search is the initial search service.
	Search driving.SearchService

	// NewSearch builds a fresh search service for index hot reloads.
	// Optional; without it reloads are disabled.
	NewSearch func() driving.SearchService

	// PartDir is the local directory of index parts. It is served
	// under /search-index/ and watched for rebuilds. Optional.
	PartDir string
}

// Server serves the search API and the static index parts.
type Server struct {
	echo      *echo.Echo
	newSearch func() driving.SearchService
	partDir   string

	mu     sync.RWMutex
	search driving.SearchService
}

// searchResponse is the wire shape of /api/search.
type searchResponse struct {
	Results []resultPayload `json:"results"`
	Count   int             `json:"count"`
	State   string          `json:"state"`
	Message string          `json:"message,omitempty"`
}

// resultPayload is the wire shape of a single result.
type resultPayload struct {
	ID             string `json:"id"`
	CollectionID   string `json:"collection_id"`
	CollectionName string `json:"collection_name"`
	ChapterID      int    `json:"chapter_id"`
	Number         int    `json:"number"`
	Narrator       string `json:"narrator,omitempty"`
	Excerpt        string `json:"excerpt"`
	Arabic         string `json:"arabic,omitempty"`
	Grade          string `json:"grade,omitempty"`
	GradeColor     string `json:"grade_color"`
}

// collectionPayload is the wire shape of one catalogue entry.
type collectionPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BengaliName string `json:"bengali_name"`
	TotalHadith int    `json:"total_hadith"`
}

// NewServer creates the HTTP server and registers its routes.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Search == nil {
		return nil, ErrMissingSearchService
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:      e,
		search:    cfg.Search,
		newSearch: cfg.NewSearch,
		partDir:   cfg.PartDir,
	}

	api := e.Group("/api")
	api.GET("/search", s.handleSearch)
	api.GET("/collections", s.handleCollections)
	e.GET("/healthz", s.handleHealth)

	if cfg.PartDir != "" {
		e.Static("/search-index", cfg.PartDir)
	}

	return s, nil
}

// Start runs the server until the context is cancelled. When a part
// directory is configured and reloads are enabled, the directory is
// watched for index rebuilds.
func (s *Server) Start(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}

	if s.partDir != "" && s.newSearch != nil {
		stop, err := s.watchParts(ctx)
		if err != nil {
			logger.Warn("Part directory watch disabled: %v", err)
		} else {
			defer stop()
		}
	}

	go func() {
		<-ctx.Done()
		s.echo.Shutdown(context.Background()) //nolint:errcheck
	}()

	logger.Info("Listening on %s", addr)
	err := s.echo.Start(addr)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// current returns the active search service.
func (s *Server) current() driving.SearchService {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.search
}

// swap replaces the active search service.
func (s *Server) swap(search driving.SearchService) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = search
}

func (s *Server) handleSearch(c echo.Context) error {
	search := s.current()

	opts := domain.SearchOptions{
		CollectionID: c.QueryParam("collection"),
		Grade:        c.QueryParam("grade"),
		Narrator:     c.QueryParam("narrator"),
	}

	results := search.Search(c.Request().Context(), c.QueryParam("q"), opts)

	resp := searchResponse{
		Results: make([]resultPayload, len(results)),
		Count:   len(results),
		State:   search.State().String(),
	}
	if search.State() == driving.StateError {
		resp.Message = search.Message()
	}

	for i := range results {
		doc := results[i].Document
		resp.Results[i] = resultPayload{
			ID:             results[i].ID,
			CollectionID:   doc.CollectionID,
			CollectionName: doc.CollectionName,
			ChapterID:      doc.ChapterID,
			Number:         doc.Number,
			Narrator:       doc.Narrator,
			Excerpt:        doc.Excerpt,
			Arabic:         doc.Arabic,
			Grade:          doc.Grade,
			GradeColor:     doc.GradeColor,
		}
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleCollections(c echo.Context) error {
	catalogue := domain.Catalogue()

	payload := make([]collectionPayload, len(catalogue))
	for i, col := range catalogue {
		payload[i] = collectionPayload{
			ID:          col.ID,
			Name:        col.Name,
			BengaliName: col.BengaliName,
			TotalHadith: col.TotalHadith,
		}
	}

	return c.JSON(http.StatusOK, map[string]any{"collections": payload})
}

func (s *Server) handleHealth(c echo.Context) error {
	search := s.current()

	status := http.StatusOK
	if search.State() == driving.StateError {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]string{"state": search.State().String()})
}
