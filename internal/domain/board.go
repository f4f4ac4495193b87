package domain

import "strings"

// Board is the 6x7 grid. Row 0 is the top row and row 5 the bottom one.
// It is a plain array value, so assigning a Board copies the whole grid.
type Board [Rows][Columns]Cell

func NewBoard() Board {
	return Board{}
}

func IsValidColumn(column int) bool {
	return column >= 0 && column < Columns
}

// CanDrop reports whether the column exists and its top cell is still empty.
func (b *Board) CanDrop(column int) bool {
	return IsValidColumn(column) && b[0][column] == Empty
}

// ApplyMove drops the player's disc into the lowest empty row of the column
// and returns that row. On error the board is left untouched.
func (b *Board) ApplyMove(column int, player Player) (int, error) {
	if !IsValidColumn(column) {
		return -1, ErrInvalidColumn
	}

	// here board[0] represents the top row (0 -> top and 5 -> bottom)
	if b[0][column] != Empty {
		return -1, ErrColumnFull
	}

	for row := Rows - 1; row >= 0; row-- {
		if b[row][column] == Empty {
			b[row][column] = player.Disc()
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

// IsFull is true once every column's top cell is occupied.
func (b *Board) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if b[0][c] == Empty {
			return false
		}
	}

	return true
}

// DiscCount returns the number of occupied cells.
func (b *Board) DiscCount() int {
	count := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if b[r][c] != Empty {
				count++
			}
		}
	}
	return count
}

// Key encodes the grid row by row as one digit per cell. It is stable and
// used as a cache key for search results.
func (b *Board) Key() string {
	var sb strings.Builder
	sb.Grow(Rows * Columns)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			sb.WriteByte('0' + byte(b[r][c]))
		}
	}
	return sb.String()
}

// Ints converts the grid for JSON payloads.
func (b *Board) Ints() [][]int {
	out := make([][]int, Rows)
	for r := range out {
		out[r] = make([]int, Columns)
		for c := range out[r] {
			out[r][c] = int(b[r][c])
		}
	}
	return out
}
