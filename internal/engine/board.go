package engine

// Cell is the state of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	Player
	Opponent
)

// Size is the number of cells on the board.
const Size = 9

// Board is a 3x3 grid stored row-major: index = column + row*3.
type Board [Size]Cell

// Line is a winning combination of three board indices.
type Line [3]int

// Lines lists every winning combination: rows, columns, diagonals.
var Lines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (c Cell) String() string {
	switch c {
	case Player:
		return "X"
	case Opponent:
		return "O"
	default:
		return "-"
	}
}

// Other returns the opposing mark. Empty stays Empty.
func (c Cell) Other() Cell {
	switch c {
	case Player:
		return Opponent
	case Opponent:
		return Player
	default:
		return Empty
	}
}

// Owns reports whether all three cells of the line hold mark.
func (b Board) Owns(mark Cell, line Line) bool {
	return b[line[0]] == mark && b[line[1]] == mark && b[line[2]] == mark
}

// Winner returns the owner of the first completed line, Opponent lines first.
func (b Board) Winner() (Cell, Line, bool) {
	for _, mark := range [2]Cell{Opponent, Player} {
		for _, line := range Lines {
			if b.Owns(mark, line) {
				return mark, line, true
			}
		}
	}

	return Empty, Line{}, false
}

// Full reports whether no Empty cell is left.
func (b Board) Full() bool {
	for _, cell := range b {
		if cell == Empty {
			return false
		}
	}

	return true
}

// Terminal reports whether the game on this board is over.
func (b Board) Terminal() bool {
	if _, _, ok := b.Winner(); ok {
		return true
	}

	return b.Full()
}

// EmptyCells returns the indices of Empty cells in ascending order.
func (b Board) EmptyCells() []int {
	cells := make([]int, 0, Size)
	for i, cell := range b {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

// Mirror returns a copy of the board with Player and Opponent marks swapped.
func (b Board) Mirror() Board {
	for i, cell := range b {
		b[i] = cell.Other()
	}

	return b
}
