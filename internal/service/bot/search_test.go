package bot

import (
	"math/rand"
	"testing"

	"github.com/iamasit07/connect-four-ai/backend/internal/domain"
)

// minimax is the unpruned reference search with the same tie rule.
func minimax(board *domain.Board, depth int, player domain.Player) (int, int) {
	if isCutoff(board, depth) {
		return Evaluate(board), NoMove
	}

	bestMove := NoMove
	var bestScore int
	for _, m := range GenerateMoves(board, player) {
		score, _ := minimax(&m.Board, depth-1, player.Opponent())
		better := score > bestScore
		if player == domain.Human {
			better = score < bestScore
		}
		if bestMove == NoMove || better {
			bestScore, bestMove = score, m.Column
		}
	}
	return bestScore, bestMove
}

func TestSearchTiesKeepTheLeftmostColumn(t *testing.T) {
	b := domain.NewBoard()
	s := &Searcher{Evaluate: func(*domain.Board) int { return 0 }}

	for depth := 1; depth <= 3; depth++ {
		_, column := s.Search(&b, depth)
		if column != 0 {
			t.Fatalf("depth %d: got column %d, want 0", depth, column)
		}
	}
}

func TestSearchPicksFirstBestImmediateScore(t *testing.T) {
	b := domain.NewBoard()

	wantScore, wantColumn := 0, NoMove
	for _, m := range GenerateMoves(&b, domain.Ai) {
		if score := Evaluate(&m.Board); wantColumn == NoMove || score > wantScore {
			wantScore, wantColumn = score, m.Column
		}
	}

	score, column := NewSearcher().Search(&b, 1)
	if column != wantColumn || score != wantScore {
		t.Fatalf("got (%d, %d), want (%d, %d)", score, column, wantScore, wantColumn)
	}
	if column != 3 {
		t.Fatalf("centre drop scores highest on an empty board, got column %d", column)
	}
}

func TestSearchCompletesFourInARow(t *testing.T) {
	b := parseBoard(t,
		".......",
		".......",
		".......",
		".......",
		".......",
		"AAA....",
	)

	for depth := 1; depth <= 4; depth++ {
		if got := BestMove(&b, depth); got != 3 {
			t.Fatalf("depth %d: got column %d, want 3", depth, got)
		}
	}
}

func TestSearchBlocksHumanFourInARow(t *testing.T) {
	b := parseBoard(t,
		".......",
		".......",
		".......",
		".......",
		".......",
		"HHH....",
	)

	for depth := 2; depth <= 4; depth++ {
		if got := BestMove(&b, depth); got != 3 {
			t.Fatalf("depth %d: got column %d, want 3", depth, got)
		}
	}
}

func TestSearchOnFullBoardHasNoMove(t *testing.T) {
	b := parseBoard(t, drawRows...)
	if status := domain.Status(&b); status != domain.StatusDraw {
		t.Fatalf("got status %s, want draw", status)
	}

	for depth := 0; depth <= domain.SearchDepth; depth++ {
		score, column := NewSearcher().Search(&b, depth)
		if column != NoMove {
			t.Fatalf("depth %d: got column %d, want NoMove", depth, column)
		}
		if score != Evaluate(&b) {
			t.Fatalf("depth %d: got score %d, want the static evaluation", depth, score)
		}
	}
}

func TestSearchStopsAtWonPosition(t *testing.T) {
	b := parseBoard(t,
		".......",
		".......",
		".......",
		".......",
		"AAA....",
		"HHHH...",
	)

	score, column := NewSearcher().Search(&b, 3)
	if column != NoMove || score != Evaluate(&b) {
		t.Fatalf("got (%d, %d), want static score and NoMove", score, column)
	}
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 60; i++ {
		b := randomBoard(rng, 30)
		for depth := 1; depth <= 3; depth++ {
			for _, player := range []domain.Player{domain.Ai, domain.Human} {
				wantScore, wantColumn := minimax(&b, depth, player)
				gotScore, gotColumn := NewSearcher().AlphaBeta(&b, depth, negInfinity, posInfinity, player)
				if gotScore != wantScore || gotColumn != wantColumn {
					t.Fatalf("board %s depth %d %s: alpha-beta (%d, %d), minimax (%d, %d)",
						b.Key(), depth, player, gotScore, gotColumn, wantScore, wantColumn)
				}
			}
		}
	}
}

func TestPruningVisitsFewerNodes(t *testing.T) {
	b := domain.NewBoard()
	s := NewSearcher()
	s.Search(&b, 4)

	// 1 + 7 + 49 + 343 + 2401 nodes without pruning
	if s.Nodes >= 2801 {
		t.Fatalf("visited %d nodes, expected pruning to cut some", s.Nodes)
	}
}

func TestSearchDoesNotModifyBoard(t *testing.T) {
	b := parseBoard(t,
		".......",
		".......",
		".......",
		"...A...",
		"..HH...",
		".AHA...",
	)
	before := b
	BestMove(&b, 4)
	if b != before {
		t.Fatal("search changed the caller's board")
	}
}
