package bot

import "github.com/iamasit07/connect-four-ai/backend/internal/domain"

// Move pairs a column with the board that results from dropping a disc there.
type Move struct {
	Column int
	Board  domain.Board
}

// GenerateMoves returns one move per playable column, left to right. Each
// resulting board is an independent copy of the input.
func GenerateMoves(board *domain.Board, player domain.Player) []Move {
	moves := make([]Move, 0, domain.Columns)
	for col := 0; col < domain.Columns; col++ {
		if !board.CanDrop(col) {
			continue
		}

		next := *board
		if _, err := next.ApplyMove(col, player); err != nil {
			continue
		}
		moves = append(moves, Move{Column: col, Board: next})
	}
	return moves
}
