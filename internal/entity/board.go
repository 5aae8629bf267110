package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-nxn/internal/apperror"
)

// Mark is the symbol a player writes into a cell.
type Mark string

const (
	EmptyCell Mark = ""

	// EmptyPlaceholder is how an empty cell is displayed and journaled.
	EmptyPlaceholder = "-"
)

func (m Mark) String() string {
	if m == EmptyCell {
		return EmptyPlaceholder
	}
	return string(m)
}

// Cell is a 0-based board coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Human returns the 1-based coordinate shown to players.
func (c Cell) Human() string {
	return fmt.Sprintf("(%d,%d)", c.Row+1, c.Col+1)
}

// Board is a square grid stored row-major in a single buffer.
// Its size never changes and a written cell is never overwritten.
type Board struct {
	size  int
	cells []Mark
}

func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size %d", apperror.ErrBoardAllocation, size)
	}

	return &Board{
		size:  size,
		cells: make([]Mark, size*size),
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

// At returns the mark at an in-bounds cell.
func (that *Board) At(row, col int) Mark {
	return that.cells[row*that.size+col]
}

// IsValidMove checks bounds before occupancy, so it never indexes out of range.
func (that *Board) IsValidMove(row, col int) bool {
	return that.InBounds(row, col) && that.At(row, col) == EmptyCell
}

// CheckMove explains why a move is not valid.
func (that *Board) CheckMove(row, col int) error {
	if !that.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d board", apperror.ErrInvalidCell, row, col, that.size, that.size)
	}

	if that.At(row, col) != EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// Place writes mark into the cell. Calling it for a cell that fails
// IsValidMove is a programming error and panics.
func (that *Board) Place(row, col int, mark Mark) {
	if mark == EmptyCell {
		panic("entity: place called with an empty mark")
	}

	if err := that.CheckMove(row, col); err != nil {
		panic(fmt.Errorf("entity: place %s at (%d,%d): %w", mark, row, col, err))
	}

	that.cells[row*that.size+col] = mark
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// EmptyCells returns every free coordinate in row-major order.
func (that *Board) EmptyCells() []Cell {
	free := make([]Cell, 0, len(that.cells))
	for i, cell := range that.cells {
		if cell == EmptyCell {
			free = append(free, Cell{Row: i / that.size, Col: i % that.size})
		}
	}

	return free
}

// Snapshot copies the grid row by row.
func (that *Board) Snapshot() [][]Mark {
	rows := make([][]Mark, that.size)
	for row := range rows {
		rows[row] = make([]Mark, that.size)
		copy(rows[row], that.cells[row*that.size:(row+1)*that.size])
	}

	return rows
}

// Render formats the grid with 1-based row and column headers.
func (that *Board) Render() string {
	return that.RenderWith(Mark.String)
}

// RenderWith is Render with a custom cell formatter, e.g. for colours.
func (that *Board) RenderWith(format func(Mark) string) string {
	var sb strings.Builder

	sb.WriteString("   ")
	for col := 0; col < that.size; col++ {
		fmt.Fprintf(&sb, "%2d ", col+1)
	}
	sb.WriteString("\n")

	for row := 0; row < that.size; row++ {
		fmt.Fprintf(&sb, "%2d ", row+1)
		for col := 0; col < that.size; col++ {
			sb.WriteString(" " + format(that.At(row, col)) + " ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
