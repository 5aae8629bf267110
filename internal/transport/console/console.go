package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/entity"
)

// markColors are handed out to players in seat order.
var markColors = []string{"9", "12", "10"}

// Console is the terminal side of the game: it reads setup answers and moves
// from one buffered input and prints boards and announcements.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	output *termenv.Output

	palette map[entity.Mark]termenv.Color
}

func New(in io.Reader, out io.Writer, opts ...termenv.OutputOption) *Console {
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		output:  termenv.NewOutput(out, opts...),
		palette: map[entity.Mark]termenv.Color{},
	}
}

func (that *Console) Writer() io.Writer {
	return that.out
}

// ReadLine returns the next input line without its line ending. A final line
// with no newline is still returned; io.EOF follows once input is exhausted.
func (that *Console) ReadLine() (string, error) {
	line, err := that.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (that *Console) readInt() (int, error) {
	line, err := that.ReadLine()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperror.ErrInvalidInput, err)
	}

	// one answer per line; "3 1" is rejected rather than silently cut to 3
	fields := strings.Fields(line)
	if len(fields) != 1 {
		return 0, fmt.Errorf("%w: want one number, got %d fields", apperror.ErrInvalidInput, len(fields))
	}

	value, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidInput, fields[0])
	}

	return value, nil
}

func (that *Console) Printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}

// AskGameConfig runs the setup dialogue. Any error it returns is a
// configuration error and the game must not start.
func (that *Console) AskGameConfig(limits entity.SizeLimits, symbols []string) (entity.GameConfig, error) {
	size, err := that.askBoardSize(limits)
	if err != nil {
		return entity.GameConfig{}, err
	}

	mode, err := that.askGameMode()
	if err != nil {
		return entity.GameConfig{}, err
	}

	var kinds []entity.PlayerKind
	if mode == entity.ModeThreePlayers {
		kinds = that.askPlayerKinds(symbols, 3)
	}

	conf, err := entity.NewGameConfig(limits, size, mode, kinds)
	if err != nil {
		return entity.GameConfig{}, err
	}

	if conf.ForcedHuman {
		that.Printf("At least one player must be human. Setting Player 1 to human.\n")
	}

	return conf, nil
}

func (that *Console) askBoardSize(limits entity.SizeLimits) (int, error) {
	that.Printf("Enter board size (%d - %d): ", limits.Min, limits.Max)

	size, err := that.readInt()
	if err != nil {
		that.Printf("Invalid input. Exiting.\n")
		return 0, err
	}

	if err = limits.Check(size); err != nil {
		that.Printf("Invalid board size! Must be between %d and %d.\n", limits.Min, limits.Max)
		return 0, err
	}

	return size, nil
}

func (that *Console) askGameMode() (entity.GameMode, error) {
	that.Printf("\nChoose Game Mode:\n")
	for _, mode := range []entity.GameMode{entity.ModeHumanVsHuman, entity.ModeHumanVsComputer, entity.ModeThreePlayers} {
		that.Printf("%d. %s\n", int(mode), mode)
	}
	that.Printf("Choice: ")

	choice, err := that.readInt()
	if err != nil {
		that.Printf("Invalid input. Exiting.\n")
		return 0, err
	}

	mode := entity.GameMode(choice)
	if _, err = mode.PlayerCount(); err != nil {
		that.Printf("Invalid choice!\n")
		return 0, err
	}

	return mode, nil
}

func (that *Console) askPlayerKinds(symbols []string, count int) []entity.PlayerKind {
	that.Printf("\nConfigure %d players (0 = Human, 1 = Computer):\n", count)

	kinds := make([]entity.PlayerKind, count)
	for i := range kinds {
		that.Printf("Player %d (%s): ", i+1, symbols[i])

		choice, err := that.readInt()
		if err != nil {
			that.Printf("Invalid input. Assuming human.\n")
			continue
		}

		if choice == 1 {
			kinds[i] = entity.Computer
		}
	}

	return kinds
}
