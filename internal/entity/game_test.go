package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
)

const (
	x = engine.Player
	o = engine.Opponent
	e = engine.Empty
)

func TestNewGame(t *testing.T) {
	// Given: create a new game
	game := NewGame("123")

	// Then: the game state should correspond to the expected initial state
	expectedGame := &Game{
		ID:     "123",
		Board:  engine.Board{},
		Turn:   engine.Player,
		Winner: engine.Empty,
		Status: StatusOngoing,
	}

	require.Equal(t, expectedGame, game)
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: create a new game
		game := NewGame("123")

		// When: the human makes a turn
		err := game.MakeTurn(engine.Player, 4)
		require.NoError(t, err)

		// Then: the game state should reflect the turn and the turn change
		assert.Equal(t, engine.Board{e, e, e, e, x, e, e, e, e}, game.Board)
		assert.Equal(t, engine.Opponent, game.Turn)
		assert.True(t, game.IsOngoing())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: the human took cell 0
		game := NewGame("123")
		require.NoError(t, game.MakeTurn(engine.Player, 0))

		// When: the computer tries to move to the same cell
		err := game.MakeTurn(engine.Opponent, 0)

		// Then: an error ErrCellOccupied must be returned and the state is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, engine.Board{x, e, e, e, e, e, e, e, e}, game.Board)
		assert.Equal(t, engine.Opponent, game.Turn)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")

		// When: the computer tries to move first
		err := game.MakeTurn(engine.Opponent, 1)

		// Then: an error ErrNotYourTurn must be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, engine.Board{}, game.Board)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		game := NewGame("123")

		assert.ErrorIs(t, game.MakeTurn(engine.Player, 9), apperror.ErrInvalidCell)
		assert.ErrorIs(t, game.MakeTurn(engine.Player, -1), apperror.ErrInvalidCell)
	})

	t.Run("Win finishes the game", func(t *testing.T) {
		// Given: the computer has two marks in the left column
		game := &Game{
			Board:  engine.Board{o, x, x, o, x, e, e, e, e},
			Turn:   engine.Opponent,
			Status: StatusOngoing,
		}

		// When: the computer completes the column
		err := game.MakeTurn(engine.Opponent, 6)

		// Then: the game is finished with the column as winning line
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.False(t, game.IsDraw())
		assert.Equal(t, engine.Opponent, game.Winner)
		assert.Equal(t, engine.Line{0, 3, 6}, game.WinLine)
		assert.True(t, game.InWinLine(3))
		assert.False(t, game.InWinLine(4))
	})

	t.Run("Full board is a draw", func(t *testing.T) {
		// Given: a board with one cell left and no line possible
		game := &Game{
			Board:  engine.Board{o, x, o, o, x, x, x, o, e},
			Turn:   engine.Player,
			Status: StatusOngoing,
		}

		// When: the human fills the last cell
		err := game.MakeTurn(engine.Player, 8)

		// Then: the game ends in a draw
		require.NoError(t, err)
		assert.True(t, game.IsDraw())
		assert.Equal(t, engine.Empty, game.Turn)
		assert.False(t, game.InWinLine(8))
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game where the human has already won
		game := &Game{
			Board:  engine.Board{x, x, x, e, o, e, e, o, e},
			Status: StatusFinished,
			Winner: engine.Player,
		}

		// When: the computer tries to move after the game is over
		err := game.MakeTurn(engine.Opponent, 3)

		// Then: an error ErrGameFinished should be returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGame_Reset(t *testing.T) {
	// Given: a finished game
	game := &Game{
		ID:      "123",
		Board:   engine.Board{o, o, o, x, x, e, x, e, e},
		Winner:  engine.Opponent,
		WinLine: engine.Line{0, 1, 2},
		Status:  StatusFinished,
	}

	// When: resetting it
	game.Reset()

	// Then: a fresh game with the same id starts
	require.Equal(t, NewGame("123"), game)
}
