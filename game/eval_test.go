package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		expected Outcome
	}{
		{
			name: "empty board is in progress",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				".......",
			},
			expected: InProgress,
		},
		{
			name: "three in a row is in progress",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"XXX.OO.",
			},
			expected: InProgress,
		},
		{
			name: "horizontal",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				"OOO....",
				"OXXXX..",
			},
			expected: RedWin,
		},
		{
			name: "horizontal on the right edge",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				"....XXX",
				"...OOOO",
			},
			expected: YellowWin,
		},
		{
			name: "vertical",
			rows: []string{
				".......",
				".......",
				"......O",
				"......O",
				"X.....O",
				"XX....O",
			},
			expected: YellowWin,
		},
		{
			name: "down-right diagonal",
			rows: []string{
				".......",
				".......",
				"X......",
				"OX.....",
				"OOX....",
				"XOOX...",
			},
			expected: RedWin,
		},
		{
			name: "up-right diagonal",
			rows: []string{
				".......",
				".......",
				"......O",
				".....OX",
				"....OXX",
				"...OXXX",
			},
			expected: YellowWin,
		},
		{
			name: "full board without a line is a draw",
			rows: []string{
				"XXOOXXO",
				"OOXXOOX",
				"XXOOXXO",
				"OOXXOOX",
				"XXOOXXO",
				"OOXXOOX",
			},
			expected: Draw,
		},
		{
			name: "full board with a line is a win",
			rows: []string{
				"XXOOXXO",
				"OOXXOOX",
				"XXOOXXO",
				"OOXXOOX",
				"XXOOXXO",
				"OOOOXXX",
			},
			expected: YellowWin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustParse(Red, tt.rows...)

			require.Equal(t, tt.expected, s.Evaluate())
		})
	}
}

func TestEvaluateAfterPlay(t *testing.T) {
	s := NewState(Red)
	for _, column := range []int{0, 0, 1, 1, 2, 2} {
		require.True(t, s.Play(column))
		require.Equal(t, InProgress, s.Evaluate(), "No line yet after column %d", column)
	}

	require.True(t, s.Play(3))
	require.Equal(t, RedWin, s.Evaluate(), "Fourth disc on the bottom row should win")
	require.Equal(t, Red, s.Evaluate().Winner(), "Winner should be red")
}

func TestOutcome(t *testing.T) {
	require.Equal(t, RedWin, WinFor(Red))
	require.Equal(t, YellowWin, WinFor(Yellow))
	require.Panics(t, func() { WinFor(Empty) }, "Empty has no winning outcome")

	require.False(t, InProgress.IsTerminal())
	require.True(t, Draw.IsTerminal())
	require.Equal(t, Empty, Draw.Winner(), "Draw has no winner")
	require.Equal(t, Yellow, Red.Opponent())
	require.Equal(t, Red, Yellow.Opponent())
}
