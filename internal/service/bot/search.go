package bot

import (
	"math"

	"github.com/iamasit07/connect-four-ai/backend/internal/domain"
)

// NoMove is returned when the searched position has no legal move.
const NoMove = -1

const (
	negInfinity = math.MinInt
	posInfinity = math.MaxInt
)

// EvalFunc scores a position, higher being better for the computer.
type EvalFunc func(board *domain.Board) int

// Searcher runs depth-limited minimax with alpha-beta pruning. The computer
// maximizes and the human minimizes. A Searcher is not safe for concurrent
// use because of its node counter; create one per search.
type Searcher struct {
	Evaluate EvalFunc
	Nodes    int
}

func NewSearcher() *Searcher {
	return &Searcher{Evaluate: Evaluate}
}

// AlphaBeta returns the minimax value of the board and the column that
// achieves it for the player to move. Ties keep the left-most column.
func (s *Searcher) AlphaBeta(board *domain.Board, depth, alpha, beta int, player domain.Player) (int, int) {
	s.Nodes++

	if isCutoff(board, depth) {
		return s.Evaluate(board), NoMove
	}

	moves := GenerateMoves(board, player)

	if player == domain.Ai {
		bestScore := negInfinity
		bestMove := NoMove
		for i := range moves {
			score, _ := s.AlphaBeta(&moves[i].Board, depth-1, alpha, beta, domain.Human)
			if score > bestScore {
				bestScore = score
				bestMove = moves[i].Column
			}

			alpha = max(alpha, bestScore)
			if alpha >= beta {
				break
			}
		}
		return bestScore, bestMove
	}

	bestScore := posInfinity
	bestMove := NoMove
	for i := range moves {
		score, _ := s.AlphaBeta(&moves[i].Board, depth-1, alpha, beta, domain.Ai)
		if score < bestScore {
			bestScore = score
			bestMove = moves[i].Column
		}

		beta = min(beta, bestScore)
		if alpha >= beta {
			break
		}
	}
	return bestScore, bestMove
}

// Search is the top-level call for the computer's turn.
func (s *Searcher) Search(board *domain.Board, depth int) (int, int) {
	return s.AlphaBeta(board, depth, negInfinity, posInfinity, domain.Ai)
}

// BestMove picks the computer's column, or NoMove if none is playable.
func BestMove(board *domain.Board, depth int) int {
	_, column := NewSearcher().Search(board, depth)
	return column
}

// a won, drawn or depth-exhausted position is scored directly
func isCutoff(board *domain.Board, depth int) bool {
	return depth == 0 ||
		domain.IsWinner(board, domain.Human) ||
		domain.IsWinner(board, domain.Ai) ||
		board.IsFull()
}
