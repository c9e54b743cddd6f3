package tui

import (
	"connect4/agent"
	"connect4/game"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	redDisc    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	yellowDisc = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	emptyCell  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorMark = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	frame      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	hint       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// aiMoveMsg carries the opponent's move back from the search command.
type aiMoveMsg struct {
	move agent.Move
	err  error
}

// Model is a bubbletea model for a human playing against an agent.
type Model struct {
	state    game.State
	ai       agent.Agent
	human    game.Player
	cursor   int
	thinking bool
	status   string
	outcome  game.Outcome
	err      error
}

func New(ai agent.Agent, human, first game.Player) Model {
	if human != game.Red && human != game.Yellow {
		panic(fmt.Sprintf("invalid human side %d", human))
	}
	m := Model{
		state:  game.NewState(first),
		ai:     ai,
		human:  human,
		cursor: game.Width / 2,
	}
	if first != human {
		m.wait()
	}
	return m
}

// Run blocks until the game ends or the player quits.
func Run(ai agent.Agent, human, first game.Player) error {
	final, err := tea.NewProgram(New(ai, human, first)).Run()
	if err != nil {
		return err
	}
	return final.(Model).err
}

func (m Model) State() game.State {
	return m.state
}

func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	if m.thinking {
		return search(m.ai, m.state)
	}
	return nil
}

func (m *Model) wait() {
	m.thinking = true
	m.status = fmt.Sprintf("%s is thinking...", m.ai.Name())
}

// search runs the agent off the update loop.
func search(ai agent.Agent, state game.State) tea.Cmd {
	return func() tea.Msg {
		move, err := ai.FindMove(state)
		return aiMoveMsg{move: move, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case aiMoveMsg:
		m.thinking = false
		if msg.err != nil {
			m.err = fmt.Errorf("%s failed to move: %w", m.ai.Name(), msg.err)
			return m, tea.Quit
		}
		if !m.state.Play(msg.move.Column) {
			m.err = fmt.Errorf("%s played illegal column %d", m.ai.Name(), msg.move.Column)
			return m, tea.Quit
		}
		m.status = fmt.Sprintf("%s played column %d.", m.ai.Name(), msg.move.Column+1)
		if msg.move.Searched {
			m.status += fmt.Sprintf(" Estimated probability of %s winning: %.1f%%", m.ai.Name(), msg.move.WinProbability()*100)
		}
		m.outcome = m.state.Evaluate()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "q" || key == "ctrl+c" || key == "esc" {
		return m, tea.Quit
	}
	if m.thinking || m.outcome.IsTerminal() {
		return m, nil
	}

	switch key {
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < game.Width-1 {
			m.cursor++
		}
	case "enter", " ":
		return m.drop()
	default:
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'0') <= game.Width {
			m.cursor = int(key[0] - '1')
			return m.drop()
		}
	}
	return m, nil
}

func (m Model) drop() (tea.Model, tea.Cmd) {
	if !m.state.Play(m.cursor) {
		m.status = fmt.Sprintf("Column %d is full.", m.cursor+1)
		return m, nil
	}
	m.status = ""
	m.outcome = m.state.Evaluate()
	if m.outcome.IsTerminal() {
		return m, nil
	}
	m.wait()
	return m, search(m.ai, m.state)
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(" ")
	for column := 0; column < game.Width; column++ {
		if column == m.cursor && !m.thinking && !m.outcome.IsTerminal() {
			sb.WriteString(" " + cursorMark.Render("v"))
		} else {
			sb.WriteString("  ")
		}
	}
	sb.WriteString("\n")

	var board strings.Builder
	for row := 0; row < game.Height; row++ {
		for column := 0; column < game.Width; column++ {
			if column > 0 {
				board.WriteString(" ")
			}
			board.WriteString(cell(m.state.At(row, column)))
		}
		if row < game.Height-1 {
			board.WriteString("\n")
		}
	}
	sb.WriteString(frame.Render(board.String()))
	sb.WriteString("\n  ")
	for column := 1; column <= game.Width; column++ {
		sb.WriteString(fmt.Sprintf("%d ", column))
	}
	sb.WriteString("\n\n")

	switch {
	case m.outcome == game.Draw:
		sb.WriteString("It's a draw.\n")
	case m.outcome.Winner() == m.human:
		sb.WriteString("You win!\n")
	case m.outcome.IsTerminal():
		sb.WriteString(fmt.Sprintf("%s wins.\n", m.ai.Name()))
	}
	if m.status != "" {
		sb.WriteString(m.status + "\n")
	}
	sb.WriteString(hint.Render("←/→ or 1-7 to pick a column, enter to drop, q to quit") + "\n")
	return sb.String()
}

func cell(p game.Player) string {
	switch p {
	case game.Red:
		return redDisc.Render("●")
	case game.Yellow:
		return yellowDisc.Render("●")
	default:
		return emptyCell.Render("·")
	}
}
