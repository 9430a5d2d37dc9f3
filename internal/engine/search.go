package engine

import "math"

// NoMove is returned by FindBestMove when the board has no Empty cell.
const NoMove = -1

const winScore = 10

// FindBestMove returns the Empty cell that is optimal for Opponent, assuming
// perfect play from both sides. Ties go to the lowest index.
//
// The board must not be terminal. It is mutated during the search and
// restored before return.
func FindBestMove(board *Board) int {
	cell, _ := Search(board)
	return cell
}

// Search is FindBestMove that also reports the score of the chosen cell.
func Search(board *Board) (int, int) {
	bestCell, bestScore := NoMove, math.MinInt

	for i := range board {
		if board[i] != Empty {
			continue
		}

		board[i] = Opponent
		score := Evaluate(board, 0, false)
		board[i] = Empty

		if score > bestScore {
			bestCell, bestScore = i, score
		}
	}

	if bestCell == NoMove {
		return NoMove, 0
	}

	return bestCell, bestScore
}

// Evaluate scores the board by exhaustive minimax. depth is the ply count
// from the root of the search; maximizing means Opponent is to move.
//
// An Opponent line scores 10-depth, a Player line depth-10, a full board 0.
func Evaluate(board *Board, depth int, maximizing bool) int {
	if score, done := terminalScore(board, depth); done {
		return score
	}

	mark, best := Player, math.MaxInt
	if maximizing {
		mark, best = Opponent, math.MinInt
	}

	for i := range board {
		if board[i] != Empty {
			continue
		}

		board[i] = mark
		score := Evaluate(board, depth+1, !maximizing)
		board[i] = Empty

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}

func terminalScore(board *Board, depth int) (int, bool) {
	winner, _, ok := board.Winner()
	switch {
	case ok && winner == Opponent:
		return winScore - depth, true
	case ok && winner == Player:
		return depth - winScore, true
	case board.Full():
		return 0, true
	default:
		return 0, false
	}
}
