package domain

// Piece is the content of a single board cell.
type Piece int

const (
	Empty       Piece = 0
	PlayerPiece Piece = 1
	AIPiece     Piece = 2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Valid reports whether p is one of the two playable pieces.
func (p Piece) Valid() bool {
	return p == PlayerPiece || p == AIPiece
}

// Opponent returns the other side's piece. Empty has no opponent.
func (p Piece) Opponent() Piece {
	switch p {
	case PlayerPiece:
		return AIPiece
	case AIPiece:
		return PlayerPiece
	}
	return Empty
}

func (p Piece) String() string {
	switch p {
	case PlayerPiece:
		return "player"
	case AIPiece:
		return "ai"
	}
	return "empty"
}

// GameResult is the terminal status of a game, or InProgress.
type GameResult string

const (
	InProgress GameResult = "in_progress"
	PlayerWins GameResult = "player_wins"
	AIWins     GameResult = "ai_wins"
	Draw       GameResult = "draw"
)

// ResultFor returns the win result credited to piece.
func ResultFor(piece Piece) GameResult {
	if piece == AIPiece {
		return AIWins
	}
	return PlayerWins
}

// Position addresses a single cell, row 0 being the bottom row.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn Error = "column out of range"
	ErrColumnFull    Error = "column is full"
	ErrGameOver      Error = "game is already over"
	ErrNoValidMoves  Error = "no valid moves left"
	ErrNotYourTurn   Error = "not your turn"
	ErrInvalidBoard  Error = "invalid board"

	ErrSessionNotFound Error = "session not found"
	ErrMissingColumn   Error = "move without a column"
)
