package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minbar-labs/minbar-cli/internal/core/domain"
)

func doc(id string) domain.Document {
	return domain.Document{ID: id, CollectionID: "bukhari", Number: 1, Text: "হাদিস"}
}

// TestCache_EmptyMiss tests that a fresh cache reports a miss.
func TestCache_EmptyMiss(t *testing.T) {
	cache := NewCache()

	docs, ok := cache.Get()
	assert.False(t, ok)
	assert.Nil(t, docs)
}

// TestCache_PutGet tests the store-and-replay round trip.
func TestCache_PutGet(t *testing.T) {
	cache := NewCache()

	cache.Put([]domain.Document{doc("bukhari-1-1"), doc("bukhari-1-2")})

	docs, ok := cache.Get()
	require.True(t, ok)
	require.Len(t, docs, 2)
	assert.Equal(t, "bukhari-1-1", docs[0].ID)
}

// TestCache_WriteOnce tests that a stored set is not replaced.
func TestCache_WriteOnce(t *testing.T) {
	cache := NewCache()

	cache.Put([]domain.Document{doc("bukhari-1-1")})
	cache.Put([]domain.Document{doc("muslim-1-1"), doc("muslim-1-2")})

	docs, ok := cache.Get()
	require.True(t, ok)
	require.Len(t, docs, 1)
	assert.Equal(t, "bukhari-1-1", docs[0].ID)
}

// TestCache_IgnoresEmptySet tests that an empty set never marks the
// cache as populated.
func TestCache_IgnoresEmptySet(t *testing.T) {
	cache := NewCache()

	cache.Put(nil)

	_, ok := cache.Get()
	assert.False(t, ok)
}

// TestCache_GetReturnsCopy tests that callers cannot mutate the
// cached set through the returned slice.
func TestCache_GetReturnsCopy(t *testing.T) {
	cache := NewCache()
	cache.Put([]domain.Document{doc("bukhari-1-1")})

	first, ok := cache.Get()
	require.True(t, ok)
	first[0].ID = "mutated"

	second, ok := cache.Get()
	require.True(t, ok)
	assert.Equal(t, "bukhari-1-1", second[0].ID)
}
