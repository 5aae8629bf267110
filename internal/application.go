package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/config"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/entity"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/repository"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/service"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/transport/console"
)

// gameJournal is a tictactoe.Journal that can also be reset for a new game.
type gameJournal interface {
	tictactoe.Journal
	Start(ctx context.Context, gameID string, size int) error
	Location(gameID string) string
}

// RunApp - runs one game on the given terminal streams. Errors matching
// apperror.IsConfigError mean the game never started.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	term := console.New(in, out)

	limits := entity.SizeLimits{Min: conf.Board.MinSize, Max: conf.Board.MaxSize}
	gameConf, err := term.AskGameConfig(limits, conf.Symbols)
	if err != nil {
		return fmt.Errorf("game setup failed: %w", err)
	}

	board, err := entity.NewBoard(gameConf.BoardSize)
	if err != nil {
		term.Printf("Memory allocation failed. Exiting.\n")
		return fmt.Errorf("could not create board: %w", err)
	}

	players := gameConf.Players(conf.Symbols)
	term.SetPlayers(players)

	journal, closeJournal := openJournal(ctx, log, conf)
	defer closeJournal()

	gameID := uuid.NewString()
	log = log.With("game_id", gameID)

	if err = journal.Start(ctx, gameID, gameConf.BoardSize); err != nil {
		log.Warn("could not start journal", "error", err)
	}

	bot := service.NewBotMoveSource(nil)
	human := service.NewHumanMoveSource(term, term.Writer())

	seats := make([]tictactoe.Seat, len(players))
	for i, player := range players {
		seats[i] = tictactoe.Seat{Player: player, Source: human}
		if player.IsBot() {
			seats[i].Source = bot
		}
	}

	controller, err := tictactoe.NewGameController(logger, gameID, board, seats, journal, term)
	if err != nil {
		return fmt.Errorf("could not create game controller: %w", err)
	}

	log.Info("game started", "size", gameConf.BoardSize, "mode", int(gameConf.Mode), "players", len(players))

	result, err := controller.Run(ctx)
	if err != nil {
		return fmt.Errorf("game aborted after %d moves: %w", result.Moves, err)
	}

	log.Info("game finished", "state", result.State.Kind.String(), "moves", result.Moves)
	term.Printf("Game log saved to \"%s\"\n", journal.Location(gameID))

	return nil
}

// openJournal never fails: when redis is unreachable the file journal is used,
// since gameplay must not depend on logging.
func openJournal(ctx context.Context, log *slog.Logger, conf *config.Config) (gameJournal, func()) {
	fileJournal := repository.NewFileJournal(conf.Journal.File)

	if conf.Journal.Driver != config.JournalRedis {
		return fileJournal, func() {}
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		log.Warn("redis journal unavailable, falling back to file", "error", err, "file", conf.Journal.File)
		return fileJournal, func() {}
	}

	return repository.NewRedisJournal(redisStorage.Connection), func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}
}
