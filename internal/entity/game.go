package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is one human-vs-computer match. The human always plays engine.Player
// and moves first; the computer plays engine.Opponent.
type Game struct {
	ID      string
	Board   engine.Board
	Turn    engine.Cell
	Winner  engine.Cell
	WinLine engine.Line
	Status  string
}

func NewGame(id string) *Game {
	game := &Game{ID: id}
	game.Reset()

	return game
}

// Reset clears the board and hands the first move to the human.
func (that *Game) Reset() {
	that.Board = engine.Board{}
	that.Turn = engine.Player
	that.Winner = engine.Empty
	that.WinLine = engine.Line{}
	that.Status = StatusOngoing
}

func (that *Game) MakeTurn(mark engine.Cell, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= engine.Size {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != engine.Empty {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = mark
	that.Turn = mark.Other()

	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	if winner, line, ok := that.Board.Winner(); ok {
		that.Winner = winner
		that.WinLine = line
		that.Status = StatusFinished
		that.Turn = engine.Empty

		return
	}

	// the game will continue until all the squares are full
	if that.Board.Full() {
		that.Winner = engine.Empty
		that.Status = StatusFinished
		that.Turn = engine.Empty

		return
	}

	that.Status = StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == engine.Empty
}

// InWinLine reports whether cell is part of the completed winning line.
func (that *Game) InWinLine(cell int) bool {
	if !that.IsFinished() || that.Winner == engine.Empty {
		return false
	}

	for _, i := range that.WinLine {
		if i == cell {
			return true
		}
	}

	return false
}
