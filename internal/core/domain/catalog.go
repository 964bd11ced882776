package domain

// Collection describes one of the six canonical hadith collections
// served by the corpus host.
type Collection struct {
	// ID is the stable identifier used in document ids and filters.
	ID string

	// Path is the directory segment on the corpus host.
	Path string

	// Name is the English display name.
	Name string

	// BengaliName is the Bengali display name shown in result lists.
	BengaliName string

	// TotalHadith is the known number of hadith in the collection.
	// Document numbers run from 1 to TotalHadith inclusive.
	TotalHadith int
}

// catalogue is the fixed set of source collections. The corpus host
// publishes exactly these six; counts come from the upstream dataset.
var catalogue = []Collection{
	{ID: "bukhari", Path: "Bukhari", Name: "Sahih Bukhari", BengaliName: "সহীহ বুখারী", TotalHadith: 7563},
	{ID: "muslim", Path: "Muslim", Name: "Sahih Muslim", BengaliName: "সহীহ মুসলিম", TotalHadith: 7563},
	{ID: "abu-dawood", Path: "AbuDaud", Name: "Sunan Abu Dawood", BengaliName: "সুনান আবু দাউদ", TotalHadith: 5274},
	{ID: "ibn-majah", Path: "Ibne-Mazah", Name: "Sunan Ibn Majah", BengaliName: "সুনান ইবনে মাজাহ", TotalHadith: 4341},
	{ID: "nasai", Path: "Al-Nasai", Name: "Sunan An-Nasa'i", BengaliName: "সুনান নাসাঈ", TotalHadith: 5758},
	{ID: "tirmidhi", Path: "At-tirmizi", Name: "Sunan At-Tirmidhi", BengaliName: "সুনান তিরমিযী", TotalHadith: 3956},
}

// Catalogue returns the fixed collection catalogue in canonical order.
// Callers receive a copy and may not mutate the catalogue.
func Catalogue() []Collection {
	out := make([]Collection, len(catalogue))
	copy(out, catalogue)
	return out
}

// CollectionByID looks up a collection by its identifier.
func CollectionByID(id string) (Collection, bool) {
	for _, c := range catalogue {
		if c.ID == id {
			return c, true
		}
	}
	return Collection{}, false
}
