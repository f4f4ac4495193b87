package game

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/iamasit07/connect-four-ai/backend/internal/domain"
	"github.com/iamasit07/connect-four-ai/backend/internal/service/bot"
	"github.com/iamasit07/connect-four-ai/backend/pkg/uid"
)

// Notifier delivers server messages to the presentation layer.
type Notifier interface {
	SendMessage(message domain.ServerMessage) error
}

// MoveEngine chooses the computer's column.
type MoveEngine interface {
	BestMove(ctx context.Context, board domain.Board, depth int) bot.Decision
}

// GameSession is one human-vs-computer game. All access to the game state
// goes through the session lock.
type GameSession struct {
	GameID     string
	Game       *domain.Game
	CreatedAt  time.Time
	FinishedAt time.Time
	botDelay   time.Duration
	engine     MoveEngine
	notifier   Notifier
	mu         sync.Mutex
}

func NewGameSession(engine MoveEngine, notifier Notifier, botDelay time.Duration) *GameSession {
	return &GameSession{
		GameID:    uid.GenerateGameID(),
		Game:      domain.NewGame(),
		CreatedAt: time.Now(),
		botDelay:  botDelay,
		engine:    engine,
		notifier:  notifier,
	}
}

// Start announces the new game.
func (gs *GameSession) Start() {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.notifier.SendMessage(domain.ServerMessage{
		Type:        "game_start",
		GameID:      gs.GameID,
		CurrentTurn: gs.Game.CurrentPlayer.String(),
		Board:       gs.Game.Board.Ints(),
		Status:      gs.Game.Status,
	})
}

// HandleMove plays the human's column and, if the game goes on, answers
// with the computer's move before returning. A rejected column changes
// nothing and the human keeps the turn.
func (gs *GameSession) HandleMove(ctx context.Context, column int) error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if err := gs.playMove(domain.Human, column); err != nil {
		return err
	}

	if gs.Game.IsFinished() {
		return nil
	}

	gs.playBotTurn(ctx)
	return nil
}

// playBotTurn runs the search and applies its column. When no column comes
// back the computer passes: the board is untouched and the turn stays.
func (gs *GameSession) playBotTurn(ctx context.Context) {
	if gs.botDelay > 0 {
		// Small delay to feel natural
		time.Sleep(gs.botDelay)
	}

	decision := gs.engine.BestMove(ctx, gs.Game.Board, domain.SearchDepth)
	if decision.Column == bot.NoMove {
		log.Printf("[BOT] No move available in game %s, passing", gs.GameID)
		gs.notifier.SendMessage(domain.ServerMessage{
			Type:      "bot_pass",
			GameID:    gs.GameID,
			Board:     gs.Game.Board.Ints(),
			NextTurn:  gs.Game.CurrentPlayer.String(),
			MoveCount: gs.Game.MoveCount,
		})
		return
	}

	if err := gs.playMove(domain.Ai, decision.Column); err != nil {
		log.Printf("[BOT] Error applying column %d in game %s: %v", decision.Column, gs.GameID, err)
	}
}

// caller must hold gs.mu
func (gs *GameSession) playMove(player domain.Player, column int) error {
	row, err := gs.Game.MakeMove(player, column)
	if err != nil {
		return err
	}

	gs.notifier.SendMessage(domain.ServerMessage{
		Type:      "move_made",
		GameID:    gs.GameID,
		Column:    column,
		Row:       row,
		Player:    player.String(),
		Board:     gs.Game.Board.Ints(),
		NextTurn:  gs.Game.CurrentPlayer.String(),
		MoveCount: gs.Game.MoveCount,
	})

	if gs.Game.IsFinished() {
		gs.finish()
	}
	return nil
}

// caller must hold gs.mu
func (gs *GameSession) finish() {
	gs.FinishedAt = time.Now()
	duration := gs.FinishedAt.Sub(gs.CreatedAt).Round(time.Second)

	log.Printf("[GAME] Game %s over: %s after %d moves (%s)",
		gs.GameID, gs.Game.Status, gs.Game.MoveCount, duration)

	gs.notifier.SendMessage(domain.ServerMessage{
		Type:      "game_over",
		GameID:    gs.GameID,
		Board:     gs.Game.Board.Ints(),
		Status:    gs.Game.Status,
		Result:    gs.Game.Status.Result(),
		MoveCount: gs.Game.MoveCount,
	})
}

// Snapshot copies the current state for readers outside the session.
func (gs *GameSession) Snapshot() domain.GameSnapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	return domain.GameSnapshot{
		GameID:      gs.GameID,
		Board:       gs.Game.Board.Ints(),
		CurrentTurn: gs.Game.CurrentPlayer.String(),
		Status:      gs.Game.Status,
		Result:      gs.Game.Status.Result(),
		MoveCount:   gs.Game.MoveCount,
		LastRow:     gs.Game.LastRow,
		LastColumn:  gs.Game.LastColumn,
	}
}
