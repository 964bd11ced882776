package domain

import "fmt"

const (
	// ExcerptLimit is the maximum excerpt length in runes.
	ExcerptLimit = 200

	// ExcerptMarker is appended when the text exceeds ExcerptLimit.
	ExcerptMarker = "..."

	// DefaultGradeColor is used when the corpus record carries no
	// grade colour of its own.
	DefaultGradeColor = "#46B891"

	// DefaultChapterID is substituted when the source record does not
	// state which chapter the hadith belongs to. Keeping the default
	// fixed keeps document ids deterministic across build paths.
	DefaultChapterID = 1
)

// Document is the unit of indexing and retrieval: one hadith with its
// Bengali translation and display metadata. Documents are built once
// during index construction and never mutated afterwards.
type Document struct {
	// ID uniquely identifies the document within the corpus.
	// See NewDocumentID for the derivation.
	ID string

	// CollectionID identifies the source collection.
	CollectionID string

	// CollectionName is the display name of the collection.
	CollectionName string

	// ChapterID is the chapter the hadith belongs to within its
	// collection. Defaults to DefaultChapterID when unknown.
	ChapterID int

	// Number is the 1-based hadith number within the collection.
	Number int

	// Narrator is the chain-of-transmission annotation, if any.
	Narrator string

	// Text is the Bengali translation, the primary indexed body.
	Text string

	// Excerpt is a bounded prefix of Text for list views.
	Excerpt string

	// Arabic is the original Arabic rendering, if present.
	Arabic string

	// Grade is the reliability grade label, empty when ungraded.
	Grade string

	// GradeColor is the display colour paired with Grade.
	GradeColor string
}

// NewDocumentID derives the deterministic document id from the
// collection, chapter and hadith number. A chapter below 1 is treated
// as unknown and replaced with DefaultChapterID, so the offline
// builder and the runtime fallback agree on ids for the same hadith.
func NewDocumentID(collectionID string, chapterID, number int) string {
	if chapterID < 1 {
		chapterID = DefaultChapterID
	}
	return fmt.Sprintf("%s-%d-%d", collectionID, chapterID, number)
}

// MakeExcerpt returns the first ExcerptLimit runes of text, with
// ExcerptMarker appended when the text was longer. Text at or under
// the limit is returned unchanged.
func MakeExcerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= ExcerptLimit {
		return text
	}
	return string(runes[:ExcerptLimit]) + ExcerptMarker
}

// Validate reports whether the document is acceptable for indexing.
// Documents without an id or translation text are skipped by both
// build paths rather than inserted.
func (d Document) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: empty document id", ErrInvalidDocument)
	}
	if d.Text == "" {
		return fmt.Errorf("%w: empty text for %s", ErrInvalidDocument, d.ID)
	}
	if d.Number < 1 {
		return fmt.Errorf("%w: hadith number %d for %s", ErrInvalidDocument, d.Number, d.ID)
	}
	return nil
}
