package repository

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-nxn/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisJournal_Start(t *testing.T) {
	t.Run("Start resets the game keys", func(t *testing.T) {
		ctx, st := suite.New(t)

		journal := NewRedisJournal(st.Storage)

		// Given: a journal with one record from a previous run
		require.NoError(t, journal.Start(ctx, "game-1", 3))
		require.NoError(t, journal.Record(ctx, sampleRecord("old")))

		// When: starting again under the same id
		err := journal.Start(ctx, "game-1", 4)

		// Then: only the new header is stored
		require.NoError(t, err)

		lines, err := journal.Lines(ctx, "game-1")
		require.NoError(t, err)
		assert.Equal(t, HeaderLines(4), lines)

		moves, err := journal.Moves(ctx, "game-1")
		require.NoError(t, err)
		assert.Empty(t, moves)
	})
}

func TestRedisJournal_Record(t *testing.T) {
	t.Run("Record appends text and structured entries", func(t *testing.T) {
		ctx, st := suite.New(t)

		journal := NewRedisJournal(st.Storage)
		require.NoError(t, journal.Start(ctx, "game-1", 3))

		// When: recording two entries
		first := sampleRecord("Player 1 (X) moved (human) at (1,1)")
		second := sampleRecord("Player 1 (X) WINS")
		require.NoError(t, journal.Record(ctx, first))
		require.NoError(t, journal.Record(ctx, second))

		// Then: the text list holds header plus both records
		lines, err := journal.Lines(ctx, "game-1")
		require.NoError(t, err)

		expected := append(HeaderLines(3), RecordLines(first)...)
		expected = append(expected, RecordLines(second)...)
		assert.Equal(t, expected, lines)

		// Then: the structured list round-trips the records
		moves, err := journal.Moves(ctx, "game-1")
		require.NoError(t, err)
		require.Len(t, moves, 2)
		assert.Equal(t, first, moves[0])
		assert.Equal(t, "Player 1 (X) WINS", moves[1].Annotation)
	})

	t.Run("Games do not share keys", func(t *testing.T) {
		ctx, st := suite.New(t)

		journal := NewRedisJournal(st.Storage)
		require.NoError(t, journal.Start(ctx, "game-1", 3))
		require.NoError(t, journal.Start(ctx, "game-2", 3))
		require.NoError(t, journal.Record(ctx, sampleRecord("only one")))

		lines, err := journal.Lines(ctx, "game-2")
		require.NoError(t, err)
		assert.Equal(t, HeaderLines(3), lines)
		assert.Equal(t, "redis key game:game-2:journal", journal.Location("game-2"))
	})
}
