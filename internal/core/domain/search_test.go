package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func filterDoc() Document {
	return Document{
		ID:           "bukhari-1-1",
		CollectionID: "bukhari",
		Narrator:     "আবু হুরায়রা (রাঃ)",
		Grade:        "সহিহ হাদিস",
		Text:         "text",
		Number:       1,
	}
}

// TestSearchOptions_Matches_NoFilters tests that the zero value
// matches everything.
func TestSearchOptions_Matches_NoFilters(t *testing.T) {
	assert.True(t, SearchOptions{}.Matches(filterDoc()))
}

// TestSearchOptions_Matches_AllSentinel tests the "all" sentinel.
func TestSearchOptions_Matches_AllSentinel(t *testing.T) {
	opts := SearchOptions{CollectionID: FilterAll, Grade: FilterAll}
	assert.True(t, opts.Matches(filterDoc()))
}

// TestSearchOptions_Matches_Collection tests exact collection matching.
func TestSearchOptions_Matches_Collection(t *testing.T) {
	assert.True(t, SearchOptions{CollectionID: "bukhari"}.Matches(filterDoc()))
	assert.False(t, SearchOptions{CollectionID: "muslim"}.Matches(filterDoc()))
}

// TestSearchOptions_Matches_Grade tests exact grade matching.
func TestSearchOptions_Matches_Grade(t *testing.T) {
	assert.True(t, SearchOptions{Grade: "সহিহ হাদিস"}.Matches(filterDoc()))
	assert.False(t, SearchOptions{Grade: "জাল হাদিস"}.Matches(filterDoc()))
}

// TestSearchOptions_Matches_NarratorSubstring tests case-insensitive
// narrator substring matching.
func TestSearchOptions_Matches_NarratorSubstring(t *testing.T) {
	doc := filterDoc()
	doc.Narrator = "Abu Hurairah (RA)"

	assert.True(t, SearchOptions{Narrator: "hurairah"}.Matches(doc))
	assert.True(t, SearchOptions{Narrator: "ABU"}.Matches(doc))
	assert.False(t, SearchOptions{Narrator: "anas"}.Matches(doc))
}

// TestSearchOptions_Matches_Combined tests that filters AND together.
func TestSearchOptions_Matches_Combined(t *testing.T) {
	doc := filterDoc()

	assert.True(t, SearchOptions{CollectionID: "bukhari", Grade: "সহিহ হাদিস"}.Matches(doc))
	assert.False(t, SearchOptions{CollectionID: "bukhari", Grade: "জাল হাদিস"}.Matches(doc))
	assert.False(t, SearchOptions{CollectionID: "muslim", Grade: "সহিহ হাদিস"}.Matches(doc))
}
