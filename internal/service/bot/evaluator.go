package bot

import (
	"github.com/iamasit07/connect-four-ai/backend/internal/domain"
)

// windowBase is 10^(n-1) for n discs of one colour in a window.
var windowBase = [domain.ToWin + 1]int{0, 1, 10, 100, 1000}

// Evaluate scores the board from the computer's point of view: positive
// favours the computer, negative favours the human. Every window that fits
// the grid is scored once, whether or not its first cell is occupied.
// Finished games get no special value.
func Evaluate(board *domain.Board) int {
	score := 0
	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			for _, dir := range domain.Directions {
				if !domain.WindowFits(row, col, dir[0], dir[1]) {
					continue
				}
				score += evaluateWindow(board, row, col, dir[0], dir[1])
			}
		}
	}
	return score
}

func evaluateWindow(board *domain.Board, row, col, dRow, dCol int) int {
	humanCount, aiCount := 0, 0
	for i := 0; i < domain.ToWin; i++ {
		switch board[row+dRow*i][col+dCol*i] {
		case domain.HumanDisc:
			humanCount++
		case domain.AiDisc:
			aiCount++
		}
	}
	return windowScore(humanCount, aiCount)
}

// windowScore: an ai-only window is worth 10^(n-1)+10 and a human-only
// window -10^(n-1)+10, which leaves a lone human disc at +9.
// Mixed and empty windows are worth nothing.
func windowScore(humanCount, aiCount int) int {
	switch {
	case aiCount > 0 && humanCount == 0:
		return windowBase[aiCount] + 10
	case humanCount > 0 && aiCount == 0:
		return -windowBase[humanCount] + 10
	}
	return 0
}
