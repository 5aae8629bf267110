package apperror

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConfigError(t *testing.T) {
	t.Run("Wrapped setup errors are config errors", func(t *testing.T) {
		for _, err := range []error{ErrInvalidBoardSize, ErrInvalidGameMode, ErrInvalidInput, ErrBoardAllocation} {
			assert.True(t, IsConfigError(fmt.Errorf("setup: %w", err)), err.Error())
		}
	})

	t.Run("Gameplay errors are not config errors", func(t *testing.T) {
		for _, err := range []error{ErrCellOccupied, ErrInputClosed, ErrNoAvailableMoves} {
			assert.False(t, IsConfigError(err), err.Error())
		}
	})
}
