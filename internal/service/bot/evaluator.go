package bot

import (
	"github.com/iamasit07/connect4-ai/internal/domain"
)

const (
	// Window scores, always from the point of view of the scoring piece
	ScoreFour          = 100 // four of ours, an already won window
	ScoreThree         = 10  // three of ours and one empty
	ScoreTwo           = 5   // two of ours and two empty
	ScoreOpponentThree = -80 // opponent threatens to complete this window

	CenterWeight = 6
	WindowLength = 4
)

// Scorer rates a board for piece. Higher is better for piece.
type Scorer interface {
	Score(board domain.Board, piece domain.Piece) int
}

// HeuristicScorer is the sliding-window evaluator.
type HeuristicScorer struct{}

func (HeuristicScorer) Score(board domain.Board, piece domain.Piece) int {
	return ScorePosition(board, piece)
}

// EvaluateWindow scores a single run of four cells.
func EvaluateWindow(window [WindowLength]domain.Piece, piece domain.Piece) int {
	opponent := piece.Opponent()
	own, opp, empty := 0, 0, 0

	for _, cell := range window {
		switch cell {
		case piece:
			own++
		case opponent:
			opp++
		case domain.Empty:
			empty++
		}
	}

	switch {
	case own == 4:
		return ScoreFour
	case own == 3 && empty == 1:
		return ScoreThree
	case own == 2 && empty == 2:
		return ScoreTwo
	case opp == 3 && empty == 1:
		return ScoreOpponentThree
	}
	return 0
}

// ScorePosition sums the center column bonus and every window on the board.
func ScorePosition(board domain.Board, piece domain.Piece) int {
	score := 0

	center := domain.Columns / 2
	for row := 0; row < domain.Rows; row++ {
		if board[row][center] == piece {
			score += CenterWeight
		}
	}

	forEachWindow(board, func(window [WindowLength]domain.Piece) {
		score += EvaluateWindow(window, piece)
	})

	return score
}

// forEachWindow visits every in-bounds window of four exactly once:
// horizontal, vertical, positive diagonal, then negative diagonal.
func forEachWindow(board domain.Board, visit func([WindowLength]domain.Piece)) {
	var window [WindowLength]domain.Piece

	// horizontal
	for row := 0; row < domain.Rows; row++ {
		for col := 0; col <= domain.Columns-WindowLength; col++ {
			for i := range window {
				window[i] = board[row][col+i]
			}
			visit(window)
		}
	}

	// vertical
	for col := 0; col < domain.Columns; col++ {
		for row := 0; row <= domain.Rows-WindowLength; row++ {
			for i := range window {
				window[i] = board[row+i][col]
			}
			visit(window)
		}
	}

	// positive diagonal, bottom-left to top-right
	for row := 0; row <= domain.Rows-WindowLength; row++ {
		for col := 0; col <= domain.Columns-WindowLength; col++ {
			for i := range window {
				window[i] = board[row+i][col+i]
			}
			visit(window)
		}
	}

	// negative diagonal, top-left to bottom-right
	for row := WindowLength - 1; row < domain.Rows; row++ {
		for col := 0; col <= domain.Columns-WindowLength; col++ {
			for i := range window {
				window[i] = board[row-i][col+i]
			}
			visit(window)
		}
	}
}
