package main

import (
	"connect4/agent"
	"connect4/console"
	"connect4/experiments"
	"connect4/game"
	"connect4/meta"
	"connect4/searcher"
	"connect4/tui"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "play against the AI or run selfplay experiments (play|selfplay)")
	ui := flag.String("ui", "console", "Interface for play mode (console|tui)")
	budget := flag.Duration("budget", meta.BUDGET, "Search time per AI move")
	first := flag.String("first", "red", "Side that moves first (red|yellow)")
	human := flag.String("human", "red", "Side the human plays (red|yellow)")
	seed := flag.Uint64("seed", 0, "Seed for the search, 0 seeds from the clock")
	experiment := flag.String("experiment", "baseline", "Selfplay experiment to run (baseline|budget)")
	games := flag.Int("games", meta.GAMES, "Games per matchup in selfplay mode")
	workers := flag.Int("workers", meta.WORKERS, "Games played at once in selfplay mode")
	out := flag.String("out", meta.RECORDS_DIR, "Directory for selfplay CSV records, empty to skip")
	level := flag.String("log-level", "", "Log level (debug|info|warn|error|disabled), defaults to warn for console play and info otherwise")
	flag.Parse()

	if *level == "" {
		*level = defaultLogLevel(*mode, *ui)
	}

	if err := configureLogging(*level, *mode == "play" && *ui == "tui"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var err error
	switch *mode {
	case "play":
		err = play(*ui, *budget, *first, *human, *seed)
	case "selfplay":
		err = selfplay(*experiment, experiments.Settings{Games: *games, Workers: *workers, Seed: *seed, Dir: *out})
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}

// defaultLogLevel keeps per-move engine logs out of the console prompt.
func defaultLogLevel(mode, ui string) string {
	if mode == "play" && ui == "console" {
		return zerolog.WarnLevel.String()
	}
	return zerolog.InfoLevel.String()
}

// configureLogging writes human readable logs to stderr. Full screen play
// owns the terminal, so logs are dropped there.
func configureLogging(level string, fullScreen bool) error {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(parsed)

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	if fullScreen {
		output = io.Discard
	}
	log.Logger = log.Output(output)
	return nil
}

func parseSide(name string) (game.Player, error) {
	switch name {
	case "red":
		return game.Red, nil
	case "yellow":
		return game.Yellow, nil
	default:
		return game.Empty, fmt.Errorf("unknown side %q", name)
	}
}

func play(ui string, budget time.Duration, first, human string, seed uint64) error {
	firstSide, err := parseSide(first)
	if err != nil {
		return err
	}
	humanSide, err := parseSide(human)
	if err != nil {
		return err
	}

	options := []searcher.Option{searcher.WithDuration(budget)}
	if seed != 0 {
		options = append(options, searcher.WithSeed(seed))
	}
	ai := agent.NewEvaluationAgent("AI", searcher.NewMCTS(options...))

	switch ui {
	case "console":
		return console.Play(os.Stdin, os.Stdout, ai, humanSide, firstSide)
	case "tui":
		return tui.Run(ai, humanSide, firstSide)
	default:
		return fmt.Errorf("unknown ui %q", ui)
	}
}

func selfplay(name string, settings experiments.Settings) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if settings.Seed == 0 {
		settings.Seed = uint64(time.Now().UnixNano())
	}

	var scores []experiments.Score
	var err error
	switch name {
	case "baseline":
		scores, err = experiments.RunBaselineExperiment(ctx, settings)
	case "budget":
		scores, err = experiments.RunBudgetExperiment(ctx, settings)
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}
	if err != nil {
		return err
	}

	for _, score := range scores {
		fmt.Printf("agent %d (red) vs agent %d (yellow): %d-%d, %d draws\n",
			score.Red.ID, score.Yellow.ID, score.RedWins, score.YellowWins, score.Draws)
	}
	return nil
}
