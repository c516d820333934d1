package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAction_Decode(t *testing.T) {
	tests := []struct {
		action      Action
		expectedRow int
		expectedCol int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 0, 2},
		{3, 1, 0},
		{4, 1, 1},
		{5, 1, 2},
		{6, 2, 0},
		{7, 2, 1},
		{8, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.action.Decode().String(), func(t *testing.T) {
			coord := tt.action.Decode()
			assert.Equal(t, tt.expectedRow, coord.Row)
			assert.Equal(t, tt.expectedCol, coord.Col)
		})
	}
}

func TestAction_InRange(t *testing.T) {
	tests := []struct {
		name     string
		action   Action
		expected bool
	}{
		{"first cell", 0, true},
		{"center", 4, true},
		{"last cell", 8, true},
		{"one past the end", 9, false},
		{"negative", -1, false},
		{"far out of range", 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.action.InRange())
		})
	}
}

func TestActionAt_RoundTrip(t *testing.T) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			action := ActionAt(row, col)
			assert.True(t, action.InRange())
			coord := action.Decode()
			assert.Equal(t, row, coord.Row)
			assert.Equal(t, col, coord.Col)
		}
	}
}
