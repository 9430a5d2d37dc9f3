package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type botService interface {
	MakeTurn(game *entity.Game) error
}

// GamePlay drives a human-vs-computer game: every human turn is answered by the bot.
type GamePlay struct {
	logger     *slog.Logger
	botService botService
}

func NewGamePlay(logger *slog.Logger, botService botService) *GamePlay {
	return &GamePlay{
		logger:     logger.With("component", "gameplay"),
		botService: botService,
	}
}

func (that *GamePlay) NewGame(ctx context.Context) *entity.Game {
	game := entity.NewGame(uuid.NewString())

	that.logger.InfoContext(ctx, "game started", "gameID", game.ID)

	return game
}

// Restart clears a game in place, keeping its id.
func (that *GamePlay) Restart(ctx context.Context, game *entity.Game) {
	game.Reset()

	that.logger.InfoContext(ctx, "game restarted", "gameID", game.ID)
}

func (that *GamePlay) MakeTurn(ctx context.Context, game *entity.Game, cell int) error {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	if err := game.MakeTurn(engine.Player, cell); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsFinished() {
		logResult(ctx, log, game)

		return nil
	}

	if err := that.botService.MakeTurn(game); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	if game.IsFinished() {
		logResult(ctx, log, game)
	}

	return nil
}

func logResult(ctx context.Context, log *slog.Logger, game *entity.Game) {
	if game.IsDraw() {
		log.InfoContext(ctx, "game finished in a draw", "board", game.Board.String())
		return
	}

	log.InfoContext(ctx, "game finished", "winner", game.Winner.String(), "board", game.Board.String())
}
