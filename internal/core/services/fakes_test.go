package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/minbar-labs/minbar-cli/internal/core/domain"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driven"
)

// fakeEngine is an in-memory SearchEngine for service tests. Search
// matches by case-insensitive substring per field, mirroring the real
// engine's field-grouped result shape.
type fakeEngine struct {
	mu    sync.Mutex
	order []string
	docs  map[string]domain.Document

	indexErr  error
	searchErr error
	importErr error
	exportErr error
}

var fakeFields = []string{"text", "arabic", "narrator", "grade", "collection_name"}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{docs: make(map[string]domain.Document)}
}

func (e *fakeEngine) Index(_ context.Context, doc domain.Document) error {
	if e.indexErr != nil {
		return e.indexErr
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.docs[doc.ID]; !exists {
		e.order = append(e.order, doc.ID)
	}
	e.docs[doc.ID] = doc
	return nil
}

func (e *fakeEngine) fieldValue(doc domain.Document, field string) string {
	switch field {
	case "text":
		return doc.Text
	case "arabic":
		return doc.Arabic
	case "narrator":
		return doc.Narrator
	case "grade":
		return doc.Grade
	case "collection_name":
		return doc.CollectionName
	default:
		return ""
	}
}

func (e *fakeEngine) Search(_ context.Context, query string, limit int) ([]driven.FieldMatches, error) {
	if e.searchErr != nil {
		return nil, e.searchErr
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	q := strings.ToLower(query)
	var sets []driven.FieldMatches
	for _, field := range fakeFields {
		var hits []driven.Hit
		for _, id := range e.order {
			doc := e.docs[id]
			if strings.Contains(strings.ToLower(e.fieldValue(doc, field)), q) {
				hits = append(hits, driven.Hit{ID: id, Document: doc})
				if len(hits) >= limit {
					break
				}
			}
		}
		if len(hits) > 0 {
			sets = append(sets, driven.FieldMatches{Field: field, Hits: hits})
		}
	}
	return sets, nil
}

func (e *fakeEngine) DocCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.docs)
}

type fakeManifest struct {
	Fields []string `json:"fields"`
	Count  int      `json:"count"`
}

func (e *fakeEngine) Export(_ context.Context) (<-chan driven.IndexPart, <-chan error) {
	parts := make(chan driven.IndexPart, len(driven.PartNames))
	errs := make(chan error, 1)

	go func() {
		defer close(parts)
		defer close(errs)

		if e.exportErr != nil {
			errs <- e.exportErr
			return
		}

		e.mu.Lock()
		defer e.mu.Unlock()

		manifest, _ := json.Marshal(fakeManifest{Fields: fakeFields, Count: len(e.docs)})
		parts <- driven.IndexPart{Name: "manifest", Data: manifest}

		shards := make([][]domain.Document, 3)
		for i, id := range e.order {
			shards[i%3] = append(shards[i%3], e.docs[id])
		}
		for i, shard := range shards {
			data, _ := json.Marshal(shard)
			parts <- driven.IndexPart{Name: fmt.Sprintf("docs-%d", i+1), Data: data}
		}
	}()

	return parts, errs
}

func (e *fakeEngine) Import(ctx context.Context, part driven.IndexPart) error {
	if e.importErr != nil {
		return e.importErr
	}
	if part.Name == "manifest" {
		var m fakeManifest
		return json.Unmarshal(part.Data, &m)
	}
	var docs []domain.Document
	if err := json.Unmarshal(part.Data, &docs); err != nil {
		return err
	}
	for _, doc := range docs {
		if err := e.Index(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}

func (e *fakeEngine) Close() error { return nil }

// fakePartSource serves index parts from memory.
type fakePartSource struct {
	parts map[string]driven.IndexPart
	// failing marks part names that return ErrPartInvalid.
	failing map[string]bool
	reads   int
}

func newFakePartSource() *fakePartSource {
	return &fakePartSource{
		parts:   make(map[string]driven.IndexPart),
		failing: make(map[string]bool),
	}
}

// fill populates the source from an engine's export.
func (s *fakePartSource) fill(e *fakeEngine) {
	parts, _ := e.Export(context.Background())
	for part := range parts {
		s.parts[part.Name] = part
	}
}

func (s *fakePartSource) ReadPart(_ context.Context, name string) (driven.IndexPart, error) {
	s.reads++
	if s.failing[name] {
		return driven.IndexPart{}, fmt.Errorf("%w: %s", domain.ErrPartInvalid, name)
	}
	part, ok := s.parts[name]
	if !ok {
		return driven.IndexPart{}, fmt.Errorf("%w: %s not found", domain.ErrPartInvalid, name)
	}
	return part, nil
}

// fakeCorpus serves documents and chapter batches from memory.
type fakeCorpus struct {
	mu           sync.Mutex
	docs         map[string]domain.Document // key: colID/number
	chapters     map[string][]domain.Document
	failAll      bool
	docCalls     int
	chapterCalls int
}

func newFakeCorpus() *fakeCorpus {
	return &fakeCorpus{
		docs:     make(map[string]domain.Document),
		chapters: make(map[string][]domain.Document),
	}
}

func (c *fakeCorpus) addDocument(colID string, number int, doc domain.Document) {
	c.docs[fmt.Sprintf("%s/%d", colID, number)] = doc
}

func (c *fakeCorpus) addChapter(colID string, chapterID int, docs []domain.Document) {
	c.chapters[fmt.Sprintf("%s/%d", colID, chapterID)] = docs
}

func (c *fakeCorpus) FetchDocument(_ context.Context, col domain.Collection, number int) (domain.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docCalls++
	if c.failAll {
		return domain.Document{}, fmt.Errorf("connection refused")
	}
	doc, ok := c.docs[fmt.Sprintf("%s/%d", col.ID, number)]
	if !ok {
		return domain.Document{}, fmt.Errorf("%w: %s/%d", domain.ErrNotFound, col.ID, number)
	}
	return doc, nil
}

func (c *fakeCorpus) FetchChapter(_ context.Context, col domain.Collection, chapterID int) ([]domain.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chapterCalls++
	if c.failAll {
		return nil, fmt.Errorf("connection refused")
	}
	docs, ok := c.chapters[fmt.Sprintf("%s/%d", col.ID, chapterID)]
	if !ok {
		return nil, fmt.Errorf("%w: chapter %s/%d", domain.ErrNotFound, col.ID, chapterID)
	}
	return docs, nil
}

// fakePartWriter collects written parts.
type fakePartWriter struct {
	parts  []driven.IndexPart
	failOn string
}

func (w *fakePartWriter) WritePart(_ context.Context, part driven.IndexPart) error {
	if w.failOn != "" && part.Name == w.failOn {
		return fmt.Errorf("disk full")
	}
	w.parts = append(w.parts, part)
	return nil
}

// fakeCache is an in-memory DocumentCache.
type fakeCache struct {
	mu   sync.Mutex
	docs []domain.Document
	set  bool
}

func (c *fakeCache) Get() ([]domain.Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.docs, c.set
}

func (c *fakeCache) Put(docs []domain.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set {
		return
	}
	c.docs = docs
	c.set = true
}

// fakeBookmarkStore is an in-memory BookmarkStore.
type fakeBookmarkStore struct {
	mu        sync.Mutex
	bookmarks map[string]driven.Bookmark
	order     []string
}

func newFakeBookmarkStore() *fakeBookmarkStore {
	return &fakeBookmarkStore{bookmarks: make(map[string]driven.Bookmark)}
}

func (s *fakeBookmarkStore) Save(_ context.Context, b driven.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookmarks[b.DocumentID]; ok {
		return domain.ErrAlreadyExists
	}
	s.bookmarks[b.DocumentID] = b
	s.order = append(s.order, b.DocumentID)
	return nil
}

func (s *fakeBookmarkStore) Delete(_ context.Context, documentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookmarks[documentID]; !ok {
		return domain.ErrNotFound
	}
	delete(s.bookmarks, documentID)
	for i, id := range s.order {
		if id == documentID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *fakeBookmarkStore) Get(_ context.Context, documentID string) (*driven.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookmarks[documentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (s *fakeBookmarkStore) List(_ context.Context) ([]driven.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]driven.Bookmark, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		out = append(out, s.bookmarks[s.order[i]])
	}
	return out, nil
}

func (s *fakeBookmarkStore) Close() error { return nil }

// makeDoc builds a valid test document.
func makeDoc(colID string, chapterID, number int, text string) domain.Document {
	col, _ := domain.CollectionByID(colID)
	return domain.Document{
		ID:             domain.NewDocumentID(colID, chapterID, number),
		CollectionID:   colID,
		CollectionName: col.Name,
		ChapterID:      chapterID,
		Number:         number,
		Narrator:       "আবু হুরায়রা (রাঃ)",
		Text:           text,
		Excerpt:        domain.MakeExcerpt(text),
		Grade:          "সহিহ হাদিস",
		GradeColor:     domain.DefaultGradeColor,
	}
}
