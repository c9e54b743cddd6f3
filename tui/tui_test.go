package tui

import (
	"connect4/agent"
	"connect4/game"
	"connect4/searcher"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, m Model, key tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

type fixedAgent struct {
	column int
	err    error
}

func (a *fixedAgent) Name() string {
	return "Fixed"
}

func (a *fixedAgent) FindMove(state game.State) (agent.Move, error) {
	return agent.Move{Column: a.column, Value: 0, Searched: true}, a.err
}

func TestDrop(t *testing.T) {
	t.Run("number key drops and hands over to the agent", func(t *testing.T) {
		m := New(&fixedAgent{column: 0}, game.Red, game.Red)
		require.Nil(t, m.Init(), "Human moves first")

		m, cmd := press(t, m, runes("4"))

		require.Equal(t, game.Red, m.State().At(game.Height-1, 3))
		require.True(t, m.thinking)
		require.NotNil(t, cmd)

		next, _ := m.Update(cmd())
		m = next.(Model)
		require.False(t, m.thinking)
		require.Equal(t, game.Yellow, m.State().At(game.Height-1, 0))
		require.Contains(t, m.status, "Estimated probability of Fixed winning: 50.0%")
	})

	t.Run("cursor keys move within the board", func(t *testing.T) {
		m := New(&fixedAgent{}, game.Red, game.Red)

		for i := 0; i < game.Width; i++ {
			m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
		}
		require.Equal(t, 0, m.cursor)
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
		m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		require.NotNil(t, cmd)
		require.Equal(t, game.Red, m.State().At(game.Height-1, 1))
	})

	t.Run("keys are ignored while the agent thinks", func(t *testing.T) {
		m := New(&fixedAgent{}, game.Yellow, game.Red)
		require.NotNil(t, m.Init(), "Agent moves first")

		m, cmd := press(t, m, runes("2"))

		require.Nil(t, cmd)
		require.Equal(t, 0, m.State().Discs())
	})

	t.Run("full column is refused", func(t *testing.T) {
		m := New(&fixedAgent{column: 2}, game.Red, game.Red)
		for i := 0; i < game.Height/2; i++ {
			var cmd tea.Cmd
			m, cmd = press(t, m, runes("3"))
			next, _ := m.Update(cmd())
			m = next.(Model)
		}

		m, cmd := press(t, m, runes("3"))

		require.Nil(t, cmd)
		require.Equal(t, "Column 3 is full.", m.status)
	})
}

func TestGameOver(t *testing.T) {
	m := New(&fixedAgent{column: 6}, game.Red, game.Red)
	for i := 0; i < 3; i++ {
		var cmd tea.Cmd
		m, cmd = press(t, m, runes("1"))
		next, _ := m.Update(cmd())
		m = next.(Model)
	}

	m, cmd := press(t, m, runes("1"))

	require.Nil(t, cmd, "No search after a win")
	require.Equal(t, game.RedWin, m.outcome)
	require.Contains(t, m.View(), "You win!")

	_, cmd = press(t, m, runes("2"))
	require.Nil(t, cmd, "Board is frozen once the game is over")
}

func TestAgentError(t *testing.T) {
	m := New(&fixedAgent{err: errors.New("boom")}, game.Yellow, game.Red)

	next, cmd := m.Update(m.Init()())

	require.NotNil(t, cmd)
	require.ErrorContains(t, next.(Model).Err(), "boom")
}

func TestQuit(t *testing.T) {
	m := New(&fixedAgent{}, game.Red, game.Red)

	_, cmd := press(t, m, runes("q"))

	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSearchingAgent(t *testing.T) {
	mcts := searcher.NewMCTS(searcher.WithEpisodes(20), searcher.WithSeed(3))
	m := New(agent.NewEvaluationAgent("AI", mcts), game.Yellow, game.Red)

	next, _ := m.Update(m.Init()())
	m = next.(Model)

	require.NoError(t, m.Err())
	require.Equal(t, 1, m.State().Discs())
	require.Equal(t, game.Yellow, m.State().Turn())
	require.Contains(t, m.View(), "AI played column")
}
