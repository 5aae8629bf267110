package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-nxn/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/entity"
)

// LineReader yields one line of user input at a time, without the newline.
type LineReader interface {
	ReadLine() (string, error)
}

// HumanMoveSource prompts until the player enters a legal 1-based move.
// Bad input never consumes the turn.
type HumanMoveSource struct {
	in  LineReader
	out io.Writer
}

func NewHumanMoveSource(in LineReader, out io.Writer) *HumanMoveSource {
	return &HumanMoveSource{in: in, out: out}
}

func (that *HumanMoveSource) NextMove(ctx context.Context, board *entity.Board, player entity.Player) (entity.Cell, error) {
	for {
		if err := ctx.Err(); err != nil {
			return entity.Cell{}, fmt.Errorf("prompt interrupted: %w", err)
		}

		fmt.Fprintf(that.out, "Player %d enter your move (row col): ", player.Number())

		line, err := that.in.ReadLine()
		if errors.Is(err, io.EOF) {
			return entity.Cell{}, apperror.ErrInputClosed
		}
		if err != nil {
			return entity.Cell{}, fmt.Errorf("failed to read move: %w", err)
		}

		row, col, err := parseMove(line)
		if err != nil {
			fmt.Fprintln(that.out, "Invalid input. Please enter two integers.")
			continue
		}

		// 1-based on screen, 0-based on the board
		row--
		col--

		if !board.IsValidMove(row, col) {
			fmt.Fprintln(that.out, "Invalid move! Cell is occupied or out of range. Try again.")
			continue
		}

		return entity.Cell{Row: row, Col: col}, nil
	}
}

func parseMove(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: want 2 numbers, got %d fields", apperror.ErrInvalidInput, len(fields))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", apperror.ErrInvalidInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: col %q", apperror.ErrInvalidInput, fields[1])
	}

	return row, col, nil
}
