package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-nxn/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/entity"
)

var ErrNoPlayers = errors.New("game needs at least one player")

// MoveSource yields the next move for the player whose turn it is.
type MoveSource interface {
	NextMove(ctx context.Context, board *entity.Board, player entity.Player) (entity.Cell, error)
}

// Journal receives one record per transition. Failures never stop the game.
type Journal interface {
	Record(ctx context.Context, record entity.MoveRecord) error
}

// View shows the game to the people playing it.
type View interface {
	ShowBoard(board *entity.Board)
	AnnounceTurn(player entity.Player)
	AnnounceMove(player entity.Player, cell entity.Cell)
	AnnounceWin(player entity.Player)
	AnnounceDraw()
}

type StateKind int

const (
	AwaitingMove StateKind = iota
	Evaluating
	Won
	Draw
)

func (k StateKind) String() string {
	switch k {
	case AwaitingMove:
		return "awaiting_move"
	case Evaluating:
		return "evaluating"
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// State is the controller position. Player is the index of the player to
// move, or of the winner once Kind is Won.
type State struct {
	Kind   StateKind
	Player int
}

func (that State) IsTerminal() bool {
	return that.Kind == Won || that.Kind == Draw
}

// Seat binds a player to the source of its moves.
type Seat struct {
	Player entity.Player
	Source MoveSource
}

type Result struct {
	State  State
	Winner *entity.Player
	Moves  int
}

type GameController struct {
	logger  *slog.Logger
	gameID  string
	board   *entity.Board
	seats   []Seat
	journal Journal
	view    View

	state State
	moves int
}

func NewGameController(logger *slog.Logger, gameID string, board *entity.Board, seats []Seat, journal Journal, view View) (*GameController, error) {
	if len(seats) == 0 {
		return nil, ErrNoPlayers
	}

	return &GameController{
		logger:  logger.With("component", "game_controller", "game_id", gameID),
		gameID:  gameID,
		board:   board,
		seats:   seats,
		journal: journal,
		view:    view,
		state:   State{Kind: AwaitingMove, Player: 0},
	}, nil
}

func (that *GameController) State() State {
	return that.state
}

func (that *GameController) Moves() int {
	return that.moves
}

// Run steps the game until it reaches Won or Draw.
func (that *GameController) Run(ctx context.Context) (Result, error) {
	for !that.state.IsTerminal() {
		if err := that.Step(ctx); err != nil {
			return Result{State: that.state, Moves: that.moves}, err
		}
	}

	result := Result{State: that.state, Moves: that.moves}
	if that.state.Kind == Won {
		winner := that.seats[that.state.Player].Player
		result.Winner = &winner
	}

	return result, nil
}

// Step plays exactly one move and evaluates it.
func (that *GameController) Step(ctx context.Context) error {
	if that.state.IsTerminal() {
		return apperror.ErrGameFinished
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("game interrupted: %w", err)
	}

	idx := that.state.Player
	seat := that.seats[idx]

	that.view.ShowBoard(that.board)
	that.view.AnnounceTurn(seat.Player)

	cell, err := seat.Source.NextMove(ctx, that.board, seat.Player)
	if err != nil {
		return fmt.Errorf("failed to get move for %s: %w", seat.Player, err)
	}

	that.board.Place(cell.Row, cell.Col, seat.Player.Mark)
	that.moves++
	that.state = State{Kind: Evaluating, Player: idx}

	that.view.AnnounceMove(seat.Player, cell)
	that.record(ctx, seat.Player, cell, moveAnnotation(seat.Player, cell))

	that.evaluate(ctx, idx, cell)

	return nil
}

// evaluate checks the win before the draw, so a last move that both completes
// a line and fills the board is credited as a win.
func (that *GameController) evaluate(ctx context.Context, idx int, cell entity.Cell) {
	player := that.seats[idx].Player

	switch {
	case HasWon(that.board, player.Mark):
		that.state = State{Kind: Won, Player: idx}
		that.logger.Info("game won", "player", player.Number(), "mark", string(player.Mark), "moves", that.moves)

		that.view.ShowBoard(that.board)
		that.view.AnnounceWin(player)
		that.record(ctx, player, cell, fmt.Sprintf("%s WINS", player))
	case that.board.IsFull():
		that.state = State{Kind: Draw, Player: idx}
		that.logger.Info("game drawn", "moves", that.moves)

		that.view.ShowBoard(that.board)
		that.view.AnnounceDraw()
		that.record(ctx, player, cell, "Game ended in a DRAW")
	default:
		that.state = State{Kind: AwaitingMove, Player: (idx + 1) % len(that.seats)}
	}
}

func (that *GameController) record(ctx context.Context, player entity.Player, cell entity.Cell, annotation string) {
	record := entity.MoveRecord{
		GameID:     that.gameID,
		Player:     player,
		Cell:       cell,
		Board:      that.board.Snapshot(),
		Annotation: annotation,
	}

	if err := that.journal.Record(ctx, record); err != nil {
		that.logger.Warn("failed to journal move", "error", err)
	}
}

func moveAnnotation(player entity.Player, cell entity.Cell) string {
	return fmt.Sprintf("%s moved (%s) at %s", player, player.Kind, cell.Human())
}
