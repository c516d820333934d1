package game

import "fmt"

// Action is a discrete move index in [0, NumCells). It maps to a board
// coordinate in row-major order: row = action / 3, col = action % 3.
type Action int

// Coordinate is a (row, col) position on the board.
type Coordinate struct {
	Row, Col int
}

// String returns a string representation of the coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// InRange reports whether the action decodes to a valid cell. Out-of-range
// actions are never decoded; the environment folds them into the
// illegal-move branch.
func (a Action) InRange() bool {
	return a >= 0 && a < NumCells
}

// Decode converts the action to a board coordinate. Only valid for
// in-range actions.
func (a Action) Decode() Coordinate {
	return Coordinate{Row: int(a) / BoardSize, Col: int(a) % BoardSize}
}

// ActionAt returns the action index addressing the given coordinate.
func ActionAt(row, col int) Action {
	return Action(row*BoardSize + col)
}
