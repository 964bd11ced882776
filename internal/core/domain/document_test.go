package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDocumentID_Deterministic tests that identical inputs always
// derive the same id.
func TestNewDocumentID_Deterministic(t *testing.T) {
	a := NewDocumentID("bukhari", 3, 17)
	b := NewDocumentID("bukhari", 3, 17)

	assert.Equal(t, a, b)
	assert.Equal(t, "bukhari-3-17", a)
}

// TestNewDocumentID_UnknownChapter tests chapter defaulting, which
// keeps builder-derived and fallback-derived ids identical.
func TestNewDocumentID_UnknownChapter(t *testing.T) {
	assert.Equal(t, NewDocumentID("muslim", DefaultChapterID, 9), NewDocumentID("muslim", 0, 9))
	assert.Equal(t, NewDocumentID("muslim", DefaultChapterID, 9), NewDocumentID("muslim", -4, 9))
}

// TestMakeExcerpt_UnderLimit tests that short text passes through unchanged.
func TestMakeExcerpt_UnderLimit(t *testing.T) {
	text := "আল্লাহর রাসূল বলেছেন"
	assert.Equal(t, text, MakeExcerpt(text))
}

// TestMakeExcerpt_AtLimit tests the exact boundary.
func TestMakeExcerpt_AtLimit(t *testing.T) {
	text := strings.Repeat("ক", ExcerptLimit)
	assert.Equal(t, text, MakeExcerpt(text))
}

// TestMakeExcerpt_OverLimit tests truncation and marker for long text.
func TestMakeExcerpt_OverLimit(t *testing.T) {
	text := strings.Repeat("ক", ExcerptLimit+50)

	excerpt := MakeExcerpt(text)

	require.True(t, strings.HasSuffix(excerpt, ExcerptMarker))
	body := strings.TrimSuffix(excerpt, ExcerptMarker)
	assert.Equal(t, ExcerptLimit, len([]rune(body)))
	assert.Equal(t, strings.Repeat("ক", ExcerptLimit), body)
}

// TestDocument_Validate tests the indexability rules.
func TestDocument_Validate(t *testing.T) {
	valid := Document{ID: "bukhari-1-1", CollectionID: "bukhari", Number: 1, Text: "কিছু হাদিস"}
	assert.NoError(t, valid.Validate())

	noID := valid
	noID.ID = ""
	assert.ErrorIs(t, noID.Validate(), ErrInvalidDocument)

	noText := valid
	noText.Text = ""
	assert.ErrorIs(t, noText.Validate(), ErrInvalidDocument)

	badNumber := valid
	badNumber.Number = 0
	assert.ErrorIs(t, badNumber.Validate(), ErrInvalidDocument)
}
