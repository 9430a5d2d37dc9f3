package engine

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidNotation = errors.New("invalid board notation")

// ParseBoard reads a board written as nine characters, row by row:
// 'X' for Player, 'O' for Opponent and '-', '.' or '_' for Empty.
// Rows may be separated by '/', e.g. "OO-/XX-/---".
func ParseBoard(notation string) (Board, error) {
	var board Board

	cells := strings.ReplaceAll(notation, "/", "")
	if len(cells) != Size {
		return board, fmt.Errorf("%w: want %d cells, got %d", ErrInvalidNotation, Size, len(cells))
	}

	for i := 0; i < Size; i++ {
		switch cells[i] {
		case 'X', 'x':
			board[i] = Player
		case 'O', 'o':
			board[i] = Opponent
		case '-', '.', '_':
			board[i] = Empty
		default:
			return board, fmt.Errorf("%w: unexpected %q at %d", ErrInvalidNotation, cells[i], i)
		}
	}

	return board, nil
}

// String writes the board in the compact notation accepted by ParseBoard,
// without row separators.
func (b Board) String() string {
	var builder strings.Builder
	builder.Grow(Size)

	for _, cell := range b {
		builder.WriteString(cell.String())
	}

	return builder.String()
}
