package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iamasit07/connect4-ai/internal/service/game"
)

func TestWorkerEvictsIdleSessionsUntilCancelled(t *testing.T) {
	sm := game.NewSessionManager(game.ModePvAI, game.FirstPlayer, 1)
	sm.CreateSession("")

	worker := NewWorker(sm, 5*time.Millisecond, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return len(sm.ActiveGames()) == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}
