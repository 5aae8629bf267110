package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-nxn/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/entity"
)

// Random is the part of *rand.Rand the bot needs.
type Random interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n) //nolint: gosec // it's ok
}

// BotMoveSource samples cells uniformly until it hits a legal one.
type BotMoveSource struct {
	random Random
}

// NewBotMoveSource uses the process-wide generator when random is nil.
func NewBotMoveSource(random Random) *BotMoveSource {
	if random == nil {
		random = globalRandom{}
	}

	return &BotMoveSource{random: random}
}

func (that *BotMoveSource) NextMove(ctx context.Context, board *entity.Board, player entity.Player) (entity.Cell, error) {
	if board.IsFull() {
		return entity.Cell{}, fmt.Errorf("%w for %s", apperror.ErrNoAvailableMoves, player)
	}

	size := board.Size()
	for {
		if err := ctx.Err(); err != nil {
			return entity.Cell{}, fmt.Errorf("bot interrupted: %w", err)
		}

		row, col := that.random.IntN(size), that.random.IntN(size)
		if board.IsValidMove(row, col) {
			return entity.Cell{Row: row, Col: col}, nil
		}
	}
}
