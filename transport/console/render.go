package console

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	colorPlayer   = "#1E4FD8"
	colorOpponent = "#D81E1E"
	colorWinLine  = "#2E8B57"
	colorDraw     = "#FF8C00"
)

const rowSeparator = "---+---+---"

// renderBoard draws the 3x3 grid. Empty cells show the key that plays them.
func renderBoard(out *termenv.Output, game *entity.Game) string {
	var builder strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			builder.WriteString(rowSeparator + "\n")
		}

		cells := make([]string, 0, 3)
		for column := 0; column < 3; column++ {
			cells = append(cells, renderCell(out, game, column+row*3))
		}

		builder.WriteString(strings.Join(cells, "|") + "\n")
	}

	return builder.String()
}

func renderCell(out *termenv.Output, game *entity.Game, index int) string {
	var style termenv.Style

	switch mark := game.Board[index]; mark {
	case engine.Player:
		style = out.String(" " + mark.String() + " ").Foreground(out.Color(colorPlayer)).Bold()
	case engine.Opponent:
		style = out.String(" " + mark.String() + " ").Foreground(out.Color(colorOpponent)).Bold()
	default:
		style = out.String(fmt.Sprintf(" %d ", index+1)).Faint()
	}

	switch {
	case game.InWinLine(index):
		style = style.Background(out.Color(colorWinLine))
	case game.IsDraw():
		style = style.Background(out.Color(colorDraw))
	}

	return style.String()
}

func resultMessage(game *entity.Game) string {
	switch {
	case game.IsDraw():
		return "It's a draw."
	case game.Winner == engine.Player:
		return "You win!"
	default:
		return "The computer wins."
	}
}
