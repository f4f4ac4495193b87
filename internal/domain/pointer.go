package domain

// Disc geometry of the board as drawn by the client, in pixels.
const (
	DiscSize = 80
	DiscGap  = 5
)

// ColumnFromPointer maps a pointer x position over the board to a column,
// clamped to the board.
func ColumnFromPointer(x int) int {
	if x < 0 {
		return 0
	}
	column := x / (DiscSize + DiscGap)
	if column >= Columns {
		return Columns - 1
	}
	return column
}
