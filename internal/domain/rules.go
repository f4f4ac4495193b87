package domain

// Directions scanned for 4-cell windows: horizontal, vertical, diagonal \
// and diagonal /. Every window starts at its left-most cell (top-most for
// vertical lines).
var Directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

// WindowFits reports whether the ToWin cells from (row, col) along
// (dRow, dCol) all lie inside the grid.
func WindowFits(row, col, dRow, dCol int) bool {
	endRow := row + dRow*(ToWin-1)
	endCol := col + dCol*(ToWin-1)
	return endRow >= 0 && endRow < Rows && endCol >= 0 && endCol < Columns
}

// IsWinner checks every disc of the player for a run of ToWin in any
// direction. The same line may be examined from several starting cells.
func IsWinner(board *Board, player Player) bool {
	disc := player.Disc()
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if board[row][col] != disc {
				continue
			}
			for _, dir := range Directions {
				if !WindowFits(row, col, dir[0], dir[1]) {
					continue
				}
				count := 0
				for i := 0; i < ToWin; i++ {
					if board[row+dir[0]*i][col+dir[1]*i] == disc {
						count++
					}
				}
				if count == ToWin {
					return true
				}
			}
		}
	}

	return false
}

// Status derives the game state. A human win takes priority over an ai
// win, which takes priority over a draw.
func Status(board *Board) GameStatus {
	switch {
	case IsWinner(board, Human):
		return StatusHumanWin
	case IsWinner(board, Ai):
		return StatusAiWin
	case board.IsFull():
		return StatusDraw
	}
	return StatusOngoing
}
