package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	JournalFile  = "file"
	JournalRedis = "redis"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	Board    Board    `yaml:"board"`
	Symbols  []string `yaml:"symbols" env:"SYMBOLS" env-default:"X,O,Z"`
	Journal  Journal  `yaml:"journal"`
	Redis    Redis    `yaml:"redis"`
}

type Board struct {
	MinSize int `yaml:"min-size" env:"BOARD_MIN_SIZE" env-default:"3"`
	MaxSize int `yaml:"max-size" env:"BOARD_MAX_SIZE" env-default:"10"`
}

type Journal struct {
	Driver string `yaml:"driver" env:"JOURNAL_DRIVER" env-default:"file"`
	File   string `yaml:"file" env:"JOURNAL_FILE" env-default:"tic_tac_toe_log.txt"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

var (
	ErrNotEnoughSymbols = errors.New("not enough player symbols")
	ErrBadSymbols       = errors.New("player symbols must be distinct single characters")
	ErrBadSizeBounds    = errors.New("invalid board size bounds")
	ErrUnknownJournal   = errors.New("unknown journal driver")
)

// MaxPlayers is the largest player count any game mode uses.
const MaxPlayers = 3

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the yaml file at path when it exists and falls back to the
// environment and defaults otherwise.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Board.MinSize < 1 || that.Board.MaxSize < that.Board.MinSize {
		return fmt.Errorf("%w: %d..%d", ErrBadSizeBounds, that.Board.MinSize, that.Board.MaxSize)
	}

	if len(that.Symbols) < MaxPlayers {
		return fmt.Errorf("%w: need %d, got %d", ErrNotEnoughSymbols, MaxPlayers, len(that.Symbols))
	}

	seen := make(map[string]bool, len(that.Symbols))
	for i, symbol := range that.Symbols {
		if utf8.RuneCountInString(symbol) != 1 {
			return fmt.Errorf("%w: symbol %d is %q", ErrBadSymbols, i+1, symbol)
		}

		if seen[symbol] {
			return fmt.Errorf("%w: %q repeats", ErrBadSymbols, symbol)
		}
		seen[symbol] = true
	}

	switch that.Journal.Driver {
	case JournalFile, JournalRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownJournal, that.Journal.Driver)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
