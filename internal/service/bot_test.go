package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	x = engine.Player
	o = engine.Opponent
	e = engine.Empty
)

func newTestBot() BotService {
	return NewBotService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func ongoingGame(board engine.Board) *entity.Game {
	return &entity.Game{
		ID:     "game",
		Board:  board,
		Turn:   engine.Opponent,
		Status: entity.StatusOngoing,
	}
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Takes the winning cell", func(t *testing.T) {
		// Given: the computer has two in the top row
		game := ongoingGame(engine.Board{o, o, e, x, x, e, e, e, e})

		// When: the bot makes a turn
		err := newTestBot().MakeTurn(game)

		// Then: it wins the game
		require.NoError(t, err)
		assert.Equal(t, o, game.Board[2])
		assert.True(t, game.IsFinished())
		assert.Equal(t, engine.Opponent, game.Winner)
	})

	t.Run("Blocks the human", func(t *testing.T) {
		// Given: the human threatens the top row
		game := ongoingGame(engine.Board{x, x, e, o, e, e, e, e, e})

		// When: the bot makes a turn
		err := newTestBot().MakeTurn(game)

		// Then: the threat is blocked and the human is to move
		require.NoError(t, err)
		assert.Equal(t, engine.Board{x, x, o, o, e, e, e, e, e}, game.Board)
		assert.Equal(t, engine.Player, game.Turn)
		assert.True(t, game.IsOngoing())
	})

	t.Run("Finished game", func(t *testing.T) {
		// Given: a game already won by the computer
		game := ongoingGame(engine.Board{o, o, o, x, x, e, x, e, e})
		game.Status = entity.StatusFinished

		// When: the bot makes a turn
		err := newTestBot().MakeTurn(game)

		// Then: an error ErrGameFinished should be returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("No empty cell", func(t *testing.T) {
		// Given: a full board that was never marked finished
		game := ongoingGame(engine.Board{o, x, o, o, x, x, x, o, x})

		// When: the bot makes a turn
		err := newTestBot().MakeTurn(game)

		// Then: the no-move condition is reported
		require.ErrorIs(t, err, ErrNoAvailableMoves)
	})

	t.Run("Not the computer's turn", func(t *testing.T) {
		// Given: a game where the human is to move
		game := ongoingGame(engine.Board{x, o, e, e, e, e, e, e, e})
		game.Turn = engine.Player

		// When: the bot makes a turn
		err := newTestBot().MakeTurn(game)

		// Then: the rule error is wrapped and the board is untouched
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, engine.Board{x, o, e, e, e, e, e, e, e}, game.Board)
	})
}
