package apperror

import "errors"

var (
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrInvalidGameMode  = errors.New("invalid game mode")
	ErrInvalidInput     = errors.New("invalid input")
	ErrBoardAllocation  = errors.New("board allocation failed")
	ErrInvalidCell      = errors.New("invalid cell")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrGameFinished     = errors.New("game is already finished")
	ErrInputClosed      = errors.New("input stream closed")
)

// IsConfigError reports whether err stops the game before play begins.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidBoardSize) ||
		errors.Is(err, ErrInvalidGameMode) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrBoardAllocation)
}
