package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewState(t *testing.T) {
	t.Run("empty board with chosen starter", func(t *testing.T) {
		s := NewState(Yellow)

		require.Equal(t, Yellow, s.Turn(), "Starter should move first")
		require.Equal(t, NoMove, s.LastMove(), "No move should be recorded yet")
		require.Equal(t, 0, s.Discs(), "Board should be empty")
		require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, s.LegalMoves(), "Every column should be open")
	})

	t.Run("panics without a side", func(t *testing.T) {
		require.Panics(t, func() {
			NewState(Empty)
		}, "Should panic when the starter is empty")
	})
}

func TestStatePlay(t *testing.T) {
	t.Run("disc falls to the bottom row", func(t *testing.T) {
		s := NewState(Red)

		require.True(t, s.Play(3), "Play should succeed on an empty column")
		require.Equal(t, Red, s.At(Height-1, 3), "Disc should land on the bottom row")
		require.Equal(t, Yellow, s.Turn(), "Turn should pass to the opponent")
		require.Equal(t, 3, s.LastMove(), "Last move should be recorded")
	})

	t.Run("discs stack in a column", func(t *testing.T) {
		s := NewState(Red)
		s.Play(2)
		s.Play(2)

		require.Equal(t, Red, s.At(Height-1, 2), "First disc should stay on the bottom")
		require.Equal(t, Yellow, s.At(Height-2, 2), "Second disc should land on top of the first")
		require.Equal(t, Empty, s.At(Height-3, 2), "Cells above should stay empty")
	})

	t.Run("full column is rejected without mutation", func(t *testing.T) {
		s := NewState(Red)
		for i := 0; i < Height; i++ {
			require.True(t, s.Play(0), "Column should accept %d discs", Height)
		}
		before := s

		require.False(t, s.Play(0), "Play should fail on a full column")
		require.Equal(t, before, s, "State should be unchanged after a failed play")
		require.False(t, s.CanPlay(0), "Full column should not be playable")
		require.NotContains(t, s.LegalMoves(), 0, "Full column should not be a legal move")
	})

	t.Run("out of range columns are rejected", func(t *testing.T) {
		s := NewState(Red)
		before := s

		require.False(t, s.Play(-1), "Negative column should be rejected")
		require.False(t, s.Play(Width), "Column past the edge should be rejected")
		require.Equal(t, before, s, "State should be unchanged")
	})

	t.Run("copies are independent", func(t *testing.T) {
		s := NewState(Red)
		s.Play(4)
		child := s
		child.Play(4)

		require.Equal(t, 1, s.Discs(), "Original should not see the copy's move")
		require.Equal(t, 2, child.Discs(), "Copy should hold both discs")
	})
}

func TestStatePlayRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		s := NewState(Red)
		for !s.Evaluate().IsTerminal() {
			column := rng.Intn(Width)
			before := s
			if !s.Play(column) {
				require.Equal(t, before, s, "Failed play should not mutate")
				continue
			}
			require.Equal(t, column, s.LastMove(), "Last move should match the played column")
			requireNoFloatingDiscs(t, s)
		}
	}
}

func requireNoFloatingDiscs(t *testing.T, s State) {
	t.Helper()
	for column := 0; column < Width; column++ {
		for row := 0; row < Height-1; row++ {
			if s.At(row, column) != Empty {
				require.NotEqual(t, Empty, s.At(row+1, column),
					"Disc at row %d column %d should not float", row, column)
			}
		}
	}
}

func TestStateString(t *testing.T) {
	s := NewState(Red)
	s.Play(0)
	s.Play(6)

	expected := ".......\n" +
		".......\n" +
		".......\n" +
		".......\n" +
		".......\n" +
		"X.....O\n"
	require.Equal(t, expected, s.String(), "String should draw the top row first")
}

func TestParse(t *testing.T) {
	t.Run("round trips String", func(t *testing.T) {
		s := NewState(Red)
		for _, column := range []int{3, 3, 4, 2, 2} {
			s.Play(column)
		}
		rows := splitRows(s.String())

		parsed, err := Parse(s.Turn(), rows...)

		require.NoError(t, err)
		require.Equal(t, s.Board(), parsed.Board(), "Parsed board should match")
		require.Equal(t, NoMove, parsed.LastMove(), "Parsed last move is unknown")
	})

	t.Run("rejects floating discs", func(t *testing.T) {
		_, err := Parse(Red,
			".......",
			".......",
			".......",
			".......",
			"...X...",
			".......",
		)

		require.ErrorIs(t, err, ErrFloatingTile)
	})

	t.Run("rejects wrong shape", func(t *testing.T) {
		_, err := Parse(Red, ".......")

		require.ErrorIs(t, err, ErrBadShape)
	})

	t.Run("rejects unknown symbols", func(t *testing.T) {
		_, err := Parse(Red,
			".......",
			".......",
			".......",
			".......",
			".......",
			"...Z...",
		)

		require.ErrorIs(t, err, ErrBadCell)
	})
}

func splitRows(board string) []string {
	rows := make([]string, 0, Height)
	for i := 0; i < Height; i++ {
		rows = append(rows, board[i*(Width+1):i*(Width+1)+Width])
	}
	return rows
}

func TestWinningMoves(t *testing.T) {
	s := MustParse(Yellow,
		".......",
		".......",
		".......",
		"......O",
		"X.....O",
		"XXX...O",
	)

	require.Equal(t, []int{6}, s.WinningMoves(), "Yellow completes column 6")
	require.Empty(t, NewState(Red).WinningMoves(), "Empty board has no winning move")
}
