package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigStore_SetGet tests set-and-get with immediate persistence.
func TestConfigStore_SetGet(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyIndexURL, "https://minbar.example/search-index"))

	assert.Equal(t, "https://minbar.example/search-index", store.GetString(KeyIndexURL))

	// Value survives a reload from disk.
	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://minbar.example/search-index", reopened.GetString(KeyIndexURL))
}

// TestConfigStore_TypedGetters tests typed accessors and their
// zero-value fallbacks.
func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("limit", 25))
	require.NoError(t, store.Set("verbose", true))

	assert.Equal(t, 25, store.GetInt("limit"))
	assert.True(t, store.GetBool("verbose"))

	// Missing keys return zero values.
	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("missing"))
	assert.False(t, store.GetBool("missing"))

	// Type mismatches also return zero values.
	assert.Equal(t, "", store.GetString("limit"))
	assert.Equal(t, 0, store.GetInt("verbose"))
}

// TestConfigStore_LoadFlattensNestedTables tests dot-notation access
// to nested TOML tables.
func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[index]\nurl = \"https://minbar.example/search-index\"\ndir = \"search-index\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://minbar.example/search-index", store.GetString(KeyIndexURL))
	assert.Equal(t, "search-index", store.GetString(KeyIndexDir))
}

// TestConfigStore_MissingFileStartsEmpty tests first-run behaviour.
func TestConfigStore_MissingFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	_, ok := store.Get(KeyServeAddr)
	assert.False(t, ok)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}
