package cleanup

import (
	"context"
	"log"
	"time"

	"github.com/iamasit07/connect-four-ai/backend/internal/service/game"
)

type Worker struct {
	SessionManager *game.SessionManager
	Interval       time.Duration
	MaxAge         time.Duration
}

func NewWorker(sm *game.SessionManager, interval, maxAge time.Duration) *Worker {
	return &Worker{SessionManager: sm, Interval: interval, MaxAge: maxAge}
}

// Start runs the cleanup periodically until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	log.Println("[CLEANUP] Background worker started")
	for {
		select {
		case <-ctx.Done():
			log.Println("[CLEANUP] Background worker stopped")
			return
		case <-ticker.C:
			w.runCleanup()
		}
	}
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() {
	if w.SessionManager.CleanupFinished(w.MaxAge) {
		log.Println("[CLEANUP] Released finished game")
	}
}
