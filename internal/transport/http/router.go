package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/connect4-ai/internal/service/game"
	"github.com/iamasit07/connect4-ai/internal/transport/http/middleware"
)

// NewRouter wires the HTTP surface. wsHandler serves the game socket.
func NewRouter(sm *game.SessionManager, allowedOrigins []string, wsHandler http.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())
	router.Use(middleware.CORSMiddleware(allowedOrigins))

	gamesHandler := NewGamesHandler(sm)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/api/games", gamesHandler.GetLiveGames)
	router.GET("/api/games/:id", gamesHandler.GetGame)

	router.GET("/ws", gin.WrapF(wsHandler))

	return router
}
