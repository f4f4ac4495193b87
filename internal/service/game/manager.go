package game

import (
	"log"
	"sync"
	"time"

	"github.com/iamasit07/connect-four-ai/backend/internal/domain"
)

// SessionManager owns the single live game. Starting a new game discards
// the previous one.
type SessionManager struct {
	current  *GameSession
	engine   MoveEngine
	notifier Notifier
	botDelay time.Duration
	mu       sync.RWMutex
}

func NewSessionManager(engine MoveEngine, notifier Notifier, botDelay time.Duration) *SessionManager {
	return &SessionManager{
		engine:   engine,
		notifier: notifier,
		botDelay: botDelay,
	}
}

// NewSession replaces the live game with a fresh one and announces it.
func (sm *SessionManager) NewSession() *GameSession {
	sm.mu.Lock()
	if sm.current != nil && !sm.current.isFinished() {
		log.Printf("[SESSION] Abandoning unfinished game %s", sm.current.GameID)
	}
	session := NewGameSession(sm.engine, sm.notifier, sm.botDelay)
	sm.current = session
	sm.mu.Unlock()

	log.Printf("[SESSION] Created game %s", session.GameID)
	session.Start()
	return session
}

func (sm *SessionManager) Current() (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.current, sm.current != nil
}

// CurrentOrNew returns the live game, starting one if there is none.
func (sm *SessionManager) CurrentOrNew() *GameSession {
	if session, ok := sm.Current(); ok {
		return session
	}
	return sm.NewSession()
}

// Snapshot describes the live game, or fails with ErrNoSession.
func (sm *SessionManager) Snapshot() (domain.GameSnapshot, error) {
	session, ok := sm.Current()
	if !ok {
		return domain.GameSnapshot{}, domain.ErrNoSession
	}
	return session.Snapshot(), nil
}

func (gs *GameSession) isFinished() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.Game.IsFinished()
}

// CleanupFinished drops the live game if it ended more than maxAge ago.
// It returns whether a game was removed.
func (sm *SessionManager) CleanupFinished(maxAge time.Duration) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.current == nil {
		return false
	}

	sm.current.mu.Lock()
	finishedAt := sm.current.FinishedAt
	finished := sm.current.Game.IsFinished()
	sm.current.mu.Unlock()

	if !finished || time.Since(finishedAt) < maxAge {
		return false
	}

	log.Printf("[SESSION] Removing finished game %s", sm.current.GameID)
	sm.current = nil
	return true
}
