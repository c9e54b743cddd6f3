package console

import (
	"bufio"
	"connect4/agent"
	"connect4/engine"
	"connect4/game"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrQuit = errors.New("player quit")

// Render writes the board with 1-based column numbers under it.
func Render(w io.Writer, state game.State) {
	var sb strings.Builder
	for row := 0; row < game.Height; row++ {
		sb.WriteByte('|')
		for column := 0; column < game.Width; column++ {
			sb.WriteByte(' ')
			sb.WriteString(disc(state.At(row, column)))
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString("+")
	sb.WriteString(strings.Repeat("--", game.Width))
	sb.WriteString("-+\n ")
	for column := 1; column <= game.Width; column++ {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(column))
	}
	sb.WriteString("\n")
	fmt.Fprint(w, sb.String())
}

func disc(p game.Player) string {
	switch p {
	case game.Red:
		return "X"
	case game.Yellow:
		return "O"
	default:
		return "."
	}
}

type human struct {
	name string
	in   *bufio.Reader
	out  io.Writer
}

// NewHumanAgent returns an agent that asks for columns on in and writes
// prompts to out. It re-prompts until the column can be played.
func NewHumanAgent(name string, in io.Reader, out io.Writer) agent.Agent {
	return &human{name: name, in: bufio.NewReader(in), out: out}
}

func (h *human) Name() string {
	return h.name
}

func (h *human) FindMove(state game.State) (agent.Move, error) {
	for {
		fmt.Fprintf(h.out, "%s (%s), choose a column 1-%d (q to quit): ", h.name, disc(state.Turn()), game.Width)
		line, err := h.in.ReadString('\n')
		input := strings.TrimSpace(line)
		if err != nil && input == "" {
			if errors.Is(err, io.EOF) {
				return agent.Move{}, ErrQuit
			}
			return agent.Move{}, fmt.Errorf("read column: %w", err)
		}

		if strings.EqualFold(input, "q") {
			return agent.Move{}, ErrQuit
		}
		column, convErr := strconv.Atoi(input)
		switch {
		case convErr != nil:
			fmt.Fprintf(h.out, "%q is not a column number.\n", input)
		case column < 1 || column > game.Width:
			fmt.Fprintf(h.out, "Column %d is off the board.\n", column)
		case !state.CanPlay(column - 1):
			fmt.Fprintf(h.out, "Column %d is full.\n", column)
		default:
			return agent.Move{Column: column - 1}, nil
		}
		if err != nil {
			return agent.Move{}, ErrQuit
		}
	}
}

// Printer shows every move and the board after it.
type Printer struct {
	out io.Writer
}

var _ engine.Observer = Printer{}

func NewPrinter(out io.Writer) Printer {
	return Printer{out: out}
}

func (p Printer) Moved(state game.State, player game.Player, move agent.Move, name string) {
	fmt.Fprintf(p.out, "\n%s (%s) played column %d\n", name, disc(player), move.Column+1)
	if move.Searched {
		fmt.Fprintf(p.out, "Estimated probability of %s winning: %.1f%%\n", name, move.WinProbability()*100)
	}
	Render(p.out, state)
}

// Announce prints the final result.
func Announce(out io.Writer, outcome game.Outcome, winner string) {
	switch {
	case outcome == game.Draw:
		fmt.Fprintln(out, "It's a draw.")
	case outcome.IsTerminal():
		fmt.Fprintf(out, "%s (%s) wins!\n", winner, disc(outcome.Winner()))
	default:
		fmt.Fprintln(out, "Game stopped.")
	}
}

// Play runs a human against opponent on the console. The human plays
// humanSide and first moves first.
func Play(in io.Reader, out io.Writer, opponent agent.Agent, humanSide, first game.Player) error {
	human := NewHumanAgent("You", in, out)
	red, yellow := human, opponent
	if humanSide == game.Yellow {
		red, yellow = opponent, human
	}

	e := engine.NewLocalEngine(red, yellow, first, engine.WithObserver(NewPrinter(out)))
	Render(out, e.State)

	gameMetric, _, err := e.Run()
	if errors.Is(err, ErrQuit) {
		fmt.Fprintln(out, "\nBye.")
		return nil
	}
	if err != nil {
		return err
	}
	Announce(out, gameMetric.Outcome, gameMetric.Winner)
	return nil
}
