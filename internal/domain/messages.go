package domain

// ClientMessage is what a presentation client sends over the socket.
// Column is nil when the message carried no column.
type ClientMessage struct {
	Type   string `json:"type"`
	Column *int   `json:"column"`
}

type ServerMessage struct {
	Type         string     `json:"type"`
	Message      string     `json:"message,omitempty"`
	GameID       string     `json:"gameId,omitempty"`
	Mode         string     `json:"mode,omitempty"`
	Board        [][]int    `json:"board,omitempty"`
	CurrentTurn  int        `json:"currentTurn,omitempty"`
	Result       GameResult `json:"result,omitempty"`
	Label        string     `json:"label,omitempty"`
	LastMove     *Position  `json:"lastMove,omitempty"`
	WinningCells []Position `json:"winningCells,omitempty"`
	MoveCount    int        `json:"moveCount"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
