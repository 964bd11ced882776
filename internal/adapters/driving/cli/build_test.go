package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minbar-labs/minbar-cli/internal/core/ports/driven"
	"github.com/minbar-labs/minbar-cli/internal/core/ports/driving"
)

// fakeIndexBuilder is a test double for the builder driving port.
type fakeIndexBuilder struct {
	stats *driving.BuildStats
	err   error
}

func (f *fakeIndexBuilder) Build(context.Context) (*driving.BuildStats, error) {
	return f.stats, f.err
}

func runBuildCommand(t *testing.T, builder driving.IndexBuilder) (string, error) {
	t.Helper()

	builderService = builder
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"build-index"})
	t.Cleanup(func() {
		builderService = nil
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// TestBuildCommand tests the stats summary output.
func TestBuildCommand(t *testing.T) {
	builder := &fakeIndexBuilder{
		stats: &driving.BuildStats{
			RunID:   "run-1",
			Indexed: 34455,
			Skipped: 12,
			PerCollection: map[string]int{
				"bukhari": 7560,
				"muslim":  7555,
			},
			Parts: driven.PartNames,
		},
	}

	out, err := runBuildCommand(t, builder)

	require.NoError(t, err)
	assert.Contains(t, out, "Indexed 34455 documents (12 skipped)")
	assert.Contains(t, out, "bukhari")
	assert.Contains(t, out, "manifest")
}

// TestBuildCommand_Failure tests error propagation.
func TestBuildCommand_Failure(t *testing.T) {
	builder := &fakeIndexBuilder{err: errors.New("write docs-2: disk full")}

	_, err := runBuildCommand(t, builder)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
