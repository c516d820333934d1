package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boardWith(player Cell, cells ...int) Board {
	var b Board
	for _, c := range cells {
		b[c] = player
	}
	return b
}

func TestIsWin_AllLines(t *testing.T) {
	lines := []struct {
		name  string
		cells []int
	}{
		{"top row", []int{0, 1, 2}},
		{"middle row", []int{3, 4, 5}},
		{"bottom row", []int{6, 7, 8}},
		{"left column", []int{0, 3, 6}},
		{"middle column", []int{1, 4, 7}},
		{"right column", []int{2, 5, 8}},
		{"main diagonal", []int{0, 4, 8}},
		{"anti-diagonal", []int{2, 4, 6}},
	}

	for _, player := range []Cell{PlayerX, PlayerO} {
		for _, line := range lines {
			t.Run(player.Glyph()+" "+line.name, func(t *testing.T) {
				b := boardWith(player, line.cells...)
				assert.True(t, IsWin(b, player))
				assert.False(t, IsWin(b, player.Other()), "the other player must not win off this line")
			})
		}
	}
}

func TestIsWin_NoLine(t *testing.T) {
	tests := []struct {
		name  string
		board Board
	}{
		{"empty board", Board{}},
		{"two in a row", boardWith(PlayerX, 0, 1)},
		{"broken row", boardWith(PlayerX, 0, 1, 5)},
		{"mixed line", Board{PlayerX, PlayerX, PlayerO}},
		{"corners only", boardWith(PlayerX, 0, 2, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, IsWin(tt.board, PlayerX))
		})
	}
}

func TestIsDraw(t *testing.T) {
	// X X O
	// O O X
	// X X O
	draw := Board{
		PlayerX, PlayerX, PlayerO,
		PlayerO, PlayerO, PlayerX,
		PlayerX, PlayerX, PlayerO,
	}
	assert.True(t, IsDraw(draw))
	assert.False(t, IsWin(draw, PlayerX))
	assert.False(t, IsWin(draw, PlayerO))

	// Full board with a win is not a draw
	won := draw
	won[3] = PlayerX // completes the left column 0,3,6
	assert.True(t, IsWin(won, PlayerX))
	assert.False(t, IsDraw(won))

	// Unfinished board is not a draw
	assert.False(t, IsDraw(Board{}))
}
