package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn plays the computer's optimal move in game.
func (that *botService) MakeTurn(game *entity.Game) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	// the search borrows its own copy, the game board is only touched by MakeTurn
	board := game.Board

	chosenCell := engine.FindBestMove(&board)
	if chosenCell == engine.NoMove {
		return ErrNoAvailableMoves
	}

	that.logger.Debug("bot chose cell", "gameID", game.ID, "cell", chosenCell, "board", board.String())

	if err := game.MakeTurn(engine.Opponent, chosenCell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
