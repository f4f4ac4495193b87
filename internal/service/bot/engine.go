package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/iamasit07/connect-four-ai/backend/internal/domain"
)

// MoveCache stores search results between identical positions.
type MoveCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// Decision is the outcome of one search for the computer's turn.
type Decision struct {
	Column int
	Score  int
	Nodes  int
	Cached bool
}

// Engine wraps the searcher with an optional result cache. Cached and
// uncached searches return the same column and score.
type Engine struct {
	cache MoveCache
	ttl   time.Duration
}

func NewEngine(cache MoveCache, ttl time.Duration) *Engine {
	return &Engine{cache: cache, ttl: ttl}
}

// CacheEnabled reports whether results are being cached.
func (e *Engine) CacheEnabled() bool {
	return e.cache != nil
}

// BestMove searches the board for the computer. The search itself blocks
// until it completes; ctx only bounds cache round trips.
func (e *Engine) BestMove(ctx context.Context, board domain.Board, depth int) Decision {
	key := cacheKey(&board, depth)

	if e.cache != nil {
		if value, err := e.cache.Get(ctx, key); err == nil {
			if column, score, ok := decodeDecision(value); ok {
				return Decision{Column: column, Score: score, Cached: true}
			}
			log.Printf("[CACHE] Ignoring malformed entry %s: %q", key, value)
		}
	}

	start := time.Now()
	searcher := NewSearcher()
	score, column := searcher.Search(&board, depth)
	log.Printf("[BOT] depth=%d column=%d score=%d nodes=%d took=%s",
		depth, column, score, searcher.Nodes, time.Since(start))

	decision := Decision{Column: column, Score: score, Nodes: searcher.Nodes}

	if e.cache != nil && column != NoMove {
		if err := e.cache.Set(ctx, key, encodeDecision(column, score), e.ttl); err != nil {
			log.Printf("[CACHE] Failed to store %s: %v", key, err)
		}
	}

	return decision
}

func cacheKey(board *domain.Board, depth int) string {
	return fmt.Sprintf("c4:best:%d:%s", depth, board.Key())
}

func encodeDecision(column, score int) string {
	return strconv.Itoa(column) + ":" + strconv.Itoa(score)
}

func decodeDecision(value string) (int, int, bool) {
	colStr, scoreStr, found := strings.Cut(value, ":")
	if !found {
		return 0, 0, false
	}
	column, err := strconv.Atoi(colStr)
	if err != nil || !domain.IsValidColumn(column) {
		return 0, 0, false
	}
	score, err := strconv.Atoi(scoreStr)
	if err != nil {
		return 0, 0, false
	}
	return column, score, true
}
