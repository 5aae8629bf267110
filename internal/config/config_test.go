package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from yaml file", func(t *testing.T) {
		// Given: a config file with a redis journal and custom bounds
		path := writeConfig(t, `
log-level: debug
board:
  min-size: 4
  max-size: 6
symbols: ["A", "B", "C"]
journal:
  driver: redis
  file: game.log
redis:
  host: cache
  port: "7000"
`)

		// When: loading the config
		conf, err := Load(path)

		// Then: every field reflects the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, Board{MinSize: 4, MaxSize: 6}, conf.Board)
		assert.Equal(t, []string{"A", "B", "C"}, conf.Symbols)
		assert.Equal(t, Journal{Driver: JournalRedis, File: "game.log"}, conf.Journal)
		assert.Equal(t, "cache:7000", conf.Redis.GetRedisAddr())
	})

	t.Run("Falls back to defaults when file is missing", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, 3, conf.Board.MinSize)
		assert.Equal(t, 10, conf.Board.MaxSize)
		assert.Equal(t, []string{"X", "O", "Z"}, conf.Symbols)
		assert.Equal(t, JournalFile, conf.Journal.Driver)
		assert.Equal(t, "tic_tac_toe_log.txt", conf.Journal.File)
	})

	t.Run("Rejects unknown journal driver", func(t *testing.T) {
		// Given: a config file with an unsupported journal driver
		path := writeConfig(t, "journal:\n  driver: kafka\n")

		// When: loading the config
		_, err := Load(path)

		// Then: ErrUnknownJournal is returned
		require.ErrorIs(t, err, ErrUnknownJournal)
	})

	t.Run("Rejects duplicate symbols from file", func(t *testing.T) {
		// Given: a config file reusing X for two players
		path := writeConfig(t, "symbols: [\"X\", \"X\", \"Z\"]\n")

		// When: loading the config
		_, err := Load(path)

		// Then: ErrBadSymbols is returned
		require.ErrorIs(t, err, ErrBadSymbols)
	})

	t.Run("MustLoad panics on broken yaml", func(t *testing.T) {
		// Given: a file that is not valid yaml
		path := writeConfig(t, "board: [unterminated")

		// Then: MustLoad panics
		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Board:   Board{MinSize: 3, MaxSize: 10},
			Symbols: []string{"X", "O", "Z"},
			Journal: Journal{Driver: JournalFile, File: "log.txt"},
		}
	}

	t.Run("Accepts defaults", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("Rejects inverted bounds", func(t *testing.T) {
		conf := valid()
		conf.Board = Board{MinSize: 8, MaxSize: 4}

		assert.ErrorIs(t, conf.Validate(), ErrBadSizeBounds)
	})

	t.Run("Rejects short alphabet", func(t *testing.T) {
		conf := valid()
		conf.Symbols = []string{"X", "O"}

		assert.ErrorIs(t, conf.Validate(), ErrNotEnoughSymbols)
	})

	t.Run("Rejects empty symbol", func(t *testing.T) {
		// Given: an alphabet where player two has no symbol
		conf := valid()
		conf.Symbols = []string{"X", "", "Z"}

		// Then: validation fails before any board is placed on
		assert.ErrorIs(t, conf.Validate(), ErrBadSymbols)
	})

	t.Run("Rejects multi character symbol", func(t *testing.T) {
		conf := valid()
		conf.Symbols = []string{"XX", "O", "Z"}

		assert.ErrorIs(t, conf.Validate(), ErrBadSymbols)
	})

	t.Run("Rejects duplicate symbol", func(t *testing.T) {
		// Given: two players sharing X
		conf := valid()
		conf.Symbols = []string{"X", "X", "Z"}

		// Then: validation fails so no line can be credited to the wrong player
		assert.ErrorIs(t, conf.Validate(), ErrBadSymbols)
	})

	t.Run("Accepts single rune non ascii symbols", func(t *testing.T) {
		conf := valid()
		conf.Symbols = []string{"✕", "○", "△"}

		assert.NoError(t, conf.Validate())
	})
}
