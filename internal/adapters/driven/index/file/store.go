// Package file stores serialised index parts as JSON files in a
// directory. The offline builder writes through it; the serve command
// reads the same directory back to host the parts and to warm its own
// in-process index.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/minbar-labs/minbar-cli/internal/core/domain"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driven"
)

// Ensure Store implements both part ports.
var (
	_ driven.PartWriter = (*Store)(nil)
	_ driven.PartSource = (*Store)(nil)
)

// DefaultDir is the conventional output directory for index parts.
const DefaultDir = "search-index"

// Store reads and writes index parts under one directory.
type Store struct {
	dir string
}

// NewStore creates the part directory if needed and returns a store
// over it. An empty dir selects DefaultDir.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create part directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the part directory path.
func (s *Store) Dir() string {
	return s.dir
}

// partPath maps a part name to its file.
func (s *Store) partPath(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// WritePart stores one part as {name}.json.
func (s *Store) WritePart(_ context.Context, part driven.IndexPart) error {
	if err := os.WriteFile(s.partPath(part.Name), part.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", part.Name, err)
	}
	return nil
}

// ReadPart loads one part, rejecting missing files and non-JSON
// content so callers can abandon a broken part set.
func (s *Store) ReadPart(_ context.Context, name string) (driven.IndexPart, error) {
	data, err := os.ReadFile(s.partPath(name))
	if err != nil {
		return driven.IndexPart{}, fmt.Errorf("%w: %s: %v", domain.ErrPartInvalid, name, err)
	}
	if !json.Valid(data) {
		return driven.IndexPart{}, fmt.Errorf("%w: %s is not valid JSON", domain.ErrPartInvalid, name)
	}
	return driven.IndexPart{Name: name, Data: data}, nil
}
