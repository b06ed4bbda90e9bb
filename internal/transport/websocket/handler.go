package websocket

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/game"
	"github.com/iamasit07/connect4-ai/internal/transport/http/middleware"
)

// Handler manages WebSocket dependencies
type Handler struct {
	SessionManager *game.SessionManager
	Upgrader       websocket.Upgrader
	ReadTimeout    time.Duration
	PingInterval   time.Duration
}

// NewHandler creates a new WebSocket handler with dependencies
func NewHandler(sm *game.SessionManager, allowedOrigins []string, readTimeout, pingInterval time.Duration) *Handler {
	return &Handler{
		SessionManager: sm,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || middleware.OriginAllowed(origin, allowedOrigins)
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		ReadTimeout:  readTimeout,
		PingInterval: pingInterval,
	}
}

// HandleWebSocket is the HTTP handler that upgrades the connection
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Str("component", "ws").Err(err).Msg("Upgrade error")
		return
	}

	mode := game.Mode(r.URL.Query().Get("mode"))
	if mode != game.ModePvP && mode != game.ModePvAI {
		mode = ""
	}

	h.handleConnection(NewClient(conn), mode)
}

// handleConnection owns one game session for the lifetime of the socket
func (h *Handler) handleConnection(client *Client, mode game.Mode) {
	conn := client.conn
	conn.SetReadDeadline(time.Now().Add(h.ReadTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(h.ReadTimeout))
		return nil
	})
	go client.KeepAlive(h.PingInterval)

	session := h.SessionManager.CreateSession(mode)
	logger := log.With().Str("component", "ws").Str("game_id", session.GameID).Logger()
	session.OnEvict(func() {
		logger.Info().Msg("Idle session evicted, closing connection")
		client.Close()
	})

	defer func() {
		logger.Info().Msg("Connection closed")
		if err := h.SessionManager.RemoveSession(session.GameID); err != nil {
			if errors.Is(err, domain.ErrSessionNotFound) {
				logger.Debug().Msg("Session already evicted")
			} else {
				logger.Warn().Err(err).Msg("Failed to remove session")
			}
		}
		client.Close()
	}()

	if err := client.SendJSON(StateMessage(session.GameID, session.Start())); err != nil {
		logger.Warn().Err(err).Msg("Failed to send initial state")
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn().Err(err).Msg("Client disconnected unexpectedly")
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(h.ReadTimeout))

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Debug().Err(err).Msg("Invalid message format")
			if err := client.SendJSON(domain.ErrorMessage{Type: "error", Message: "Invalid message format"}); err != nil {
				logger.Warn().Err(err).Msg("Failed to write message")
				return
			}
			continue
		}

		if err := h.processMessage(client, session, msg); err != nil {
			logger.Warn().Err(err).Msg("Failed to write message")
			return
		}
	}
}

// processMessage routes specific actions. The returned error is a write
// failure; game rejections are reported to the client instead.
func (h *Handler) processMessage(client *Client, session *game.GameSession, msg domain.ClientMessage) error {
	switch msg.Type {
	case "make_move":
		if msg.Column == nil {
			return client.SendJSON(domain.ErrorMessage{Type: "error", Message: domain.ErrMissingColumn.Error()})
		}
		state, err := session.SubmitMove(*msg.Column)
		if err != nil {
			return client.SendJSON(domain.ErrorMessage{Type: "error", Message: err.Error()})
		}
		return client.SendJSON(StateMessage(session.GameID, state))

	case "hover":
		// pointer position only matters to the client's preview rendering
		return nil

	case "reset":
		return client.SendJSON(StateMessage(session.GameID, session.Reset()))

	case "get_state":
		return client.SendJSON(StateMessage(session.GameID, session.State()))
	}

	return client.SendJSON(domain.ErrorMessage{Type: "error", Message: "Unknown message type"})
}

// StateMessage converts a controller snapshot into the wire format.
func StateMessage(gameID string, state game.State) domain.ServerMessage {
	return domain.ServerMessage{
		Type:         "state",
		GameID:       gameID,
		Mode:         string(state.Mode),
		Board:        state.Board.Grid(),
		CurrentTurn:  int(state.Turn),
		Result:       state.Result,
		Label:        state.Label,
		LastMove:     state.LastMove,
		WinningCells: state.WinningCells,
		MoveCount:    state.MoveCount,
	}
}
