package domain

import (
	"strings"

	"github.com/pkg/errors"
)

// Board is the 6x7 grid. Row 0 is the bottom row. Being an array, assigning
// a Board copies every cell, which is what move simulation relies on.
type Board [Rows][Columns]Piece

func NewBoard() Board {
	return Board{}
}

// CheckColumn reports ErrInvalidColumn for indexes outside the board.
func CheckColumn(column int) error {
	if column < 0 || column >= Columns {
		return ErrInvalidColumn
	}
	return nil
}

// IsValidMove is true when the top cell of column is still empty.
// Out of range columns are simply not valid.
func (b *Board) IsValidMove(column int) bool {
	if CheckColumn(column) != nil {
		return false
	}
	return b[Rows-1][column] == Empty
}

// NextOpenRow scans the column bottom to top for the first empty cell.
func (b *Board) NextOpenRow(column int) (int, error) {
	if err := CheckColumn(column); err != nil {
		return -1, err
	}
	for row := 0; row < Rows; row++ {
		if b[row][column] == Empty {
			return row, nil
		}
	}
	return -1, ErrColumnFull
}

// Drop writes piece into the cell without any validation. Callers go through
// IsValidMove and NextOpenRow first.
func (b *Board) Drop(row, column int, piece Piece) {
	b[row][column] = piece
}

// Place validates the column and drops piece into its next open row.
func (b *Board) Place(column int, piece Piece) (int, error) {
	row, err := b.NextOpenRow(column)
	if err != nil {
		return -1, err
	}
	b.Drop(row, column, piece)
	return row, nil
}

func (b *Board) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if b.IsValidMove(c) {
			return false
		}
	}
	return true
}

// ValidLocations lists the playable columns in ascending order.
func (b *Board) ValidLocations() []int {
	valid := make([]int, 0, Columns)
	for c := 0; c < Columns; c++ {
		if b.IsValidMove(c) {
			valid = append(valid, c)
		}
	}
	return valid
}

// At returns the piece at row, column. Row 0 is the bottom row.
func (b *Board) At(row, column int) Piece {
	return b[row][column]
}

// Count returns how many cells hold piece.
func (b *Board) Count(piece Piece) int {
	n := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if b[r][c] == piece {
				n++
			}
		}
	}
	return n
}

// Grid exports the cells as plain ints, row 0 (bottom) first.
func (b *Board) Grid() [][]int {
	grid := make([][]int, Rows)
	for r := range grid {
		grid[r] = make([]int, Columns)
		for c := range grid[r] {
			grid[r][c] = int(b[r][c])
		}
	}
	return grid
}

// String renders the board top row first, one digit per cell.
func (b Board) String() string {
	var sb strings.Builder
	for r := Rows - 1; r >= 0; r-- {
		for c := 0; c < Columns; c++ {
			sb.WriteByte(byte('0' + b[r][c]))
		}
		if r > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseBoard reads the format produced by Board.String. Blank lines and
// surrounding spaces are ignored. Floating pieces are rejected.
func ParseBoard(s string) (Board, error) {
	var board Board

	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) != Rows {
		return board, errors.Wrapf(ErrInvalidBoard, "expected %d rows, got %d", Rows, len(lines))
	}

	for i, line := range lines {
		if len(line) != Columns {
			return board, errors.Wrapf(ErrInvalidBoard, "row %d has %d cells", i, len(line))
		}
		row := Rows - 1 - i
		for c, ch := range line {
			piece := Piece(ch - '0')
			if piece != Empty && !piece.Valid() {
				return board, errors.Wrapf(ErrInvalidBoard, "unknown cell %q", ch)
			}
			board[row][c] = piece
		}
	}

	for c := 0; c < Columns; c++ {
		for r := 1; r < Rows; r++ {
			if board[r][c] != Empty && board[r-1][c] == Empty {
				return board, errors.Wrapf(ErrInvalidBoard, "floating piece at row %d column %d", r, c)
			}
		}
	}

	return board, nil
}
