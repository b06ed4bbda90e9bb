package cleanup

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/connect4-ai/internal/service/game"
)

type Worker struct {
	SessionManager *game.SessionManager
	Interval       time.Duration
	MaxIdle        time.Duration
}

func NewWorker(sm *game.SessionManager, interval, maxIdle time.Duration) *Worker {
	return &Worker{SessionManager: sm, Interval: interval, MaxIdle: maxIdle}
}

// Start runs one cleanup immediately and then every Interval until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	log.Info().Str("component", "cleanup").Dur("interval", w.Interval).Msg("Background worker started")

	w.runCleanup()

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("component", "cleanup").Msg("Background worker stopped")
			return
		case <-ticker.C:
			w.runCleanup()
		}
	}
}

func (w *Worker) runCleanup() {
	removed := w.SessionManager.CleanupOldSessions(w.MaxIdle)
	log.Debug().Str("component", "cleanup").Int("removed", removed).Msg("Scheduled cleanup finished")
}
