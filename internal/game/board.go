package game

import "strings"

// Cell is the mark occupying one board position.
// Empty = 0, PlayerX = 1 (the learning agent), PlayerO = 2 (the opponent).
type Cell int8

const (
	Empty   Cell = 0
	PlayerX Cell = 1
	PlayerO Cell = 2
)

// Glyph returns the single-character rendering for a cell.
func (c Cell) Glyph() string {
	switch c {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "."
	}
}

// Other returns the opposing player's mark. Empty maps to Empty.
func (c Cell) Other() Cell {
	switch c {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// Board dimensions. The contract is fixed at 3x3; NumCells is the size of
// both the observation and the discrete action space.
const (
	BoardSize = 3
	NumCells  = BoardSize * BoardSize
)

// Board is the 3x3 grid in row-major order. It is a value type: assignment
// and function returns copy the whole grid, so snapshots handed to callers
// never alias the environment's internal storage.
type Board [NumCells]Cell

// Idx converts (row, col) to a row-major array index.
func (b *Board) Idx(row, col int) int { return row*BoardSize + col }

// RC converts a row-major array index back to (row, col).
func (b *Board) RC(idx int) (int, int) { return idx / BoardSize, idx % BoardSize }

// At returns the cell at (row, col).
func (b *Board) At(row, col int) Cell { return b[b.Idx(row, col)] }

// Clone returns a copy of the board.
func (b Board) Clone() Board { return b }

// EmptyCells returns the indices of all unoccupied cells in ascending order.
func (b *Board) EmptyCells() []int {
	empty := make([]int, 0, NumCells)
	for i, c := range b {
		if c == Empty {
			empty = append(empty, i)
		}
	}
	return empty
}

// Full reports whether every cell is occupied.
func (b *Board) Full() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// MoveCount returns the number of occupied cells.
func (b *Board) MoveCount() int {
	n := 0
	for _, c := range b {
		if c != Empty {
			n++
		}
	}
	return n
}

// String renders the board one row per line with space-separated glyphs,
// followed by a blank line.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.At(row, col).Glyph())
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}
