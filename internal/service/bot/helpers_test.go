package bot

import (
	"math/rand"
	"testing"

	"github.com/iamasit07/connect-four-ai/backend/internal/domain"
)

// parseBoard builds a board from six rows, top first: '.' empty, 'H' human, 'A' ai.
func parseBoard(t *testing.T, rows ...string) domain.Board {
	t.Helper()
	if len(rows) != domain.Rows {
		t.Fatalf("need %d rows, got %d", domain.Rows, len(rows))
	}
	var b domain.Board
	for r, line := range rows {
		if len(line) != domain.Columns {
			t.Fatalf("row %d: need %d cells, got %q", r, domain.Columns, line)
		}
		for c, ch := range line {
			switch ch {
			case 'H':
				b[r][c] = domain.HumanDisc
			case 'A':
				b[r][c] = domain.AiDisc
			}
		}
	}
	return b
}

// randomBoard plays up to maxMoves random legal moves from the empty board,
// human first, stopping early once the game is decided.
func randomBoard(rng *rand.Rand, maxMoves int) domain.Board {
	b := domain.NewBoard()
	player := domain.Human
	n := rng.Intn(maxMoves + 1)
	for i := 0; i < n; i++ {
		if domain.Status(&b).IsFinished() {
			break
		}
		moves := GenerateMoves(&b, player)
		b = moves[rng.Intn(len(moves))].Board
		player = player.Opponent()
	}
	return b
}

var drawRows = []string{
	"HAHAHAH",
	"HAHAHAH",
	"AHAHAHA",
	"AHAHAHA",
	"HAHAHAH",
	"HAHAHAH",
}
