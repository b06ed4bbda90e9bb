package domain

type Game struct {
	Board     Board
	Turn      Piece
	Result    GameResult
	MoveCount int
	LastMove  *Position
}

// NewGame starts an empty board with first to move.
func NewGame(first Piece) *Game {
	if !first.Valid() {
		first = PlayerPiece
	}
	return &Game{
		Board:  NewBoard(),
		Turn:   first,
		Result: InProgress,
	}
}

// MakeMove drops piece into column for the side to move. Rejected moves
// leave the game untouched.
func (g *Game) MakeMove(piece Piece, column int) (int, error) {
	if g.IsFinished() {
		return -1, ErrGameOver
	}

	if piece != g.Turn {
		return -1, ErrNotYourTurn
	}

	if err := CheckColumn(column); err != nil {
		return -1, err
	}

	if !g.Board.IsValidMove(column) {
		return -1, ErrColumnFull
	}

	row, err := g.Board.NextOpenRow(column)
	if err != nil {
		return -1, err
	}
	g.Board.Drop(row, column, piece)

	g.MoveCount++
	g.LastMove = &Position{Row: row, Column: column}

	if WinningMove(g.Board, piece) {
		g.Result = ResultFor(piece)
		return row, nil
	}

	if g.Board.IsFull() {
		g.Result = Draw
		return row, nil
	}

	g.Turn = piece.Opponent()

	return row, nil
}

// ForceDraw ends a game that can no longer continue.
func (g *Game) ForceDraw() {
	if !g.IsFinished() {
		g.Result = Draw
	}
}

func (g *Game) IsFinished() bool {
	return g.Result == PlayerWins || g.Result == AIWins || g.Result == Draw
}

// Winner returns the winning piece, or Empty for draws and running games.
func (g *Game) Winner() Piece {
	switch g.Result {
	case PlayerWins:
		return PlayerPiece
	case AIWins:
		return AIPiece
	}
	return Empty
}
