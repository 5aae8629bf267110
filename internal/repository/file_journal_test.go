package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileJournal(t *testing.T) {
	ctx := context.Background()

	t.Run("Start truncates and writes the header", func(t *testing.T) {
		// Given: a stale journal from an earlier game
		path := filepath.Join(t.TempDir(), "log.txt")
		require.NoError(t, os.WriteFile(path, []byte("old game\n"), 0o600))
		journal := NewFileJournal(path)

		// When: starting a new game
		require.NoError(t, journal.Start(ctx, "game-1", 3))

		// Then: only the header remains
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Tic-Tac-Toe Log (board 3 x 3)\n=================================\n", string(content))
	})

	t.Run("Records are appended in order", func(t *testing.T) {
		// Given: a started journal
		path := filepath.Join(t.TempDir(), "log.txt")
		journal := NewFileJournal(path)
		require.NoError(t, journal.Start(ctx, "game-1", 3))

		// When: recording a move and the result
		require.NoError(t, journal.Record(ctx, sampleRecord("first")))
		require.NoError(t, journal.Record(ctx, sampleRecord("second")))

		// Then: both records follow the header
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Tic-Tac-Toe Log (board 3 x 3)\n"+
			"=================================\n"+
			"first\nX - -\n- O -\n- - Z\n---------------------------\n"+
			"second\nX - -\n- O -\n- - Z\n---------------------------\n", string(content))
		assert.Equal(t, path, journal.Location("game-1"))
	})

	t.Run("Unopenable path reports an error", func(t *testing.T) {
		// Given: a path inside a directory that does not exist
		journal := NewFileJournal(filepath.Join(t.TempDir(), "missing", "log.txt"))

		// Then: both calls fail without panicking
		require.Error(t, journal.Start(ctx, "game-1", 3))
		require.Error(t, journal.Record(ctx, sampleRecord("x")))
	})
}
