package tictactoe

import "github.com/rocketscienceinc/tictactoe-nxn/internal/entity"

// HasWon reports whether mark fills a whole row, a whole column or one of the
// two full diagonals. Only complete lines of length N count: on a 10x10 board
// a player needs all ten cells of a line, never a shorter run.
func HasWon(board *entity.Board, mark entity.Mark) bool {
	if mark == entity.EmptyCell {
		return false
	}

	size := board.Size()

	for row := 0; row < size; row++ {
		if lineComplete(size, mark, func(i int) entity.Mark { return board.At(row, i) }) {
			return true
		}
	}

	for col := 0; col < size; col++ {
		if lineComplete(size, mark, func(i int) entity.Mark { return board.At(i, col) }) {
			return true
		}
	}

	if lineComplete(size, mark, func(i int) entity.Mark { return board.At(i, i) }) {
		return true
	}

	return lineComplete(size, mark, func(i int) entity.Mark { return board.At(i, size-1-i) })
}

func lineComplete(size int, mark entity.Mark, at func(i int) entity.Mark) bool {
	for i := 0; i < size; i++ {
		if at(i) != mark {
			return false
		}
	}

	return true
}
