package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/game"
)

type GamesHandler struct {
	SessionManager *game.SessionManager
}

func NewGamesHandler(sm *game.SessionManager) *GamesHandler {
	return &GamesHandler{SessionManager: sm}
}

type liveGameResponse struct {
	GameID    string `json:"gameId"`
	Mode      string `json:"mode"`
	Result    string `json:"result"`
	MoveCount int    `json:"moveCount"`
	StartedAt string `json:"startedAt"`
}

type gameStateResponse struct {
	GameID       string            `json:"gameId"`
	Mode         string            `json:"mode"`
	Board        [][]int           `json:"board"`
	CurrentTurn  int               `json:"currentTurn"`
	Result       string            `json:"result"`
	Label        string            `json:"label"`
	MoveCount    int               `json:"moveCount"`
	WinningCells []domain.Position `json:"winningCells,omitempty"`
}

// GetLiveGames returns a summary of every live session
func (h *GamesHandler) GetLiveGames(c *gin.Context) {
	activeGames := h.SessionManager.ActiveGames()

	response := make([]liveGameResponse, 0, len(activeGames))
	for _, g := range activeGames {
		response = append(response, liveGameResponse{
			GameID:    g.GameID,
			Mode:      string(g.Mode),
			Result:    g.Result,
			MoveCount: g.MoveCount,
			StartedAt: g.StartedAt.UTC().Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, response)
}

// GetGame returns the full snapshot of one session
func (h *GamesHandler) GetGame(c *gin.Context) {
	session, exists := h.SessionManager.GetSessionByGameID(c.Param("id"))
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	state := session.State()
	response := gameStateResponse{
		GameID:       session.GameID,
		Mode:         string(state.Mode),
		Board:        state.Board.Grid(),
		CurrentTurn:  int(state.Turn),
		Result:       string(state.Result),
		Label:        state.Label,
		MoveCount:    state.MoveCount,
		WinningCells: state.WinningCells,
	}

	c.JSON(http.StatusOK, response)
}
