package game

// winLines enumerates every three-in-a-row combination: 3 rows, 3 columns
// and both diagonals, as row-major cell indices.
var winLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// IsWin reports whether player holds a complete line on the board.
// Exact equality over the 8 lines; no heuristic scoring.
func IsWin(b Board, player Cell) bool {
	for _, line := range winLines {
		if b[line[0]] == player && b[line[1]] == player && b[line[2]] == player {
			return true
		}
	}
	return false
}

// IsDraw reports whether the board is full with no winner on either side.
func IsDraw(b Board) bool {
	return b.Full() && !IsWin(b, PlayerX) && !IsWin(b, PlayerO)
}
