package domain

// direction is a (row, column) step along a line.
type direction struct {
	dRow, dCol int
}

// The four line directions. Starting cells are chosen so that every cell of a
// run stays on the board: up-right starts low, down-right starts at row >= 3.
var directions = [...]direction{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal up-right
	{-1, 1}, // diagonal down-right
}

// WinningMove reports whether piece has four in a row anywhere on the board.
func WinningMove(b Board, piece Piece) bool {
	_, ok := WinningLine(b, piece)
	return ok
}

// WinningLine returns the cells of the first four-in-a-row found for piece.
func WinningLine(b Board, piece Piece) ([ToWin]Position, bool) {
	var line [ToWin]Position
	if !piece.Valid() {
		return line, false
	}

	for _, d := range directions {
		for r := 0; r < Rows; r++ {
			for c := 0; c < Columns; c++ {
				if !runFits(r, c, d) {
					continue
				}
				matched := true
				for i := 0; i < ToWin; i++ {
					if b[r+i*d.dRow][c+i*d.dCol] != piece {
						matched = false
						break
					}
				}
				if matched {
					for i := range line {
						line[i] = Position{Row: r + i*d.dRow, Column: c + i*d.dCol}
					}
					return line, true
				}
			}
		}
	}

	return line, false
}

// runFits reports whether a run of ToWin cells starting at (row, col) in
// direction d stays inside the board.
func runFits(row, col int, d direction) bool {
	endRow := row + (ToWin-1)*d.dRow
	endCol := col + (ToWin-1)*d.dCol
	return endRow >= 0 && endRow < Rows && endCol >= 0 && endCol < Columns
}
