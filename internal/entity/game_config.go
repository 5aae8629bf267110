package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-nxn/internal/apperror"
)

type GameMode int

const (
	ModeHumanVsHuman    GameMode = 1
	ModeHumanVsComputer GameMode = 2
	ModeThreePlayers    GameMode = 3
)

func (m GameMode) PlayerCount() (int, error) {
	switch m {
	case ModeHumanVsHuman, ModeHumanVsComputer:
		return 2, nil
	case ModeThreePlayers:
		return 3, nil
	default:
		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidGameMode, int(m))
	}
}

func (m GameMode) String() string {
	switch m {
	case ModeHumanVsHuman:
		return "User vs User"
	case ModeHumanVsComputer:
		return "User vs Computer"
	case ModeThreePlayers:
		return "3 Players (mix human/computer)"
	default:
		return fmt.Sprintf("mode %d", int(m))
	}
}

type SizeLimits struct {
	Min int
	Max int
}

func (that SizeLimits) Check(size int) error {
	if size < that.Min || size > that.Max {
		return fmt.Errorf("%w: must be between %d and %d, got %d", apperror.ErrInvalidBoardSize, that.Min, that.Max, size)
	}

	return nil
}

// GameConfig is validated once by NewGameConfig and not changed afterwards.
type GameConfig struct {
	BoardSize int
	Mode      GameMode
	Kinds     []PlayerKind

	// ForcedHuman is set when an all-computer setup had player 1 switched to human.
	ForcedHuman bool
}

// NewGameConfig validates the setup. kinds is only consulted in three
// player mode; missing entries default to human.
func NewGameConfig(limits SizeLimits, size int, mode GameMode, kinds []PlayerKind) (GameConfig, error) {
	if err := limits.Check(size); err != nil {
		return GameConfig{}, err
	}

	count, err := mode.PlayerCount()
	if err != nil {
		return GameConfig{}, err
	}

	conf := GameConfig{BoardSize: size, Mode: mode, Kinds: make([]PlayerKind, count)}

	switch mode {
	case ModeHumanVsHuman:
	case ModeHumanVsComputer:
		conf.Kinds[1] = Computer
	case ModeThreePlayers:
		copy(conf.Kinds, kinds)

		allComputers := true
		for _, kind := range conf.Kinds {
			if kind != Computer {
				allComputers = false
				break
			}
		}

		if allComputers {
			conf.Kinds[0] = Human
			conf.ForcedHuman = true
		}
	}

	return conf, nil
}

// Players assigns symbols in order; symbols must hold at least one per player.
func (that GameConfig) Players(symbols []string) []Player {
	players := make([]Player, len(that.Kinds))
	for i, kind := range that.Kinds {
		players[i] = Player{Index: i, Mark: Mark(symbols[i]), Kind: kind}
	}

	return players
}
