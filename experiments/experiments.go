package experiments

import (
	"connect4/agent"
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"connect4/searcher"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const TimeBudget = 50 * time.Millisecond

var budgetConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: metrics.Search, Duration: TimeBudget / 5},
	{ID: 2, Kind: metrics.Search, Duration: TimeBudget},
	{ID: 3, Kind: metrics.Search, Duration: TimeBudget * 4},
}

var (
	baseline = metrics.AgentConfig{ID: 0, Kind: metrics.Random}
	sampler  = metrics.AgentConfig{ID: 4, Kind: metrics.Training, Duration: TimeBudget, Temperature: meta.TEMPERATURE}
)

type Settings struct {
	Games   int    // Per match up
	Workers int    // Games played at once
	Seed    uint64 // Base seed for every agent
	Dir     string // Records are written under Dir when set
}

type MatchUp struct {
	Red    metrics.AgentConfig
	Yellow metrics.AgentConfig
}

type Score struct {
	MatchUp
	RedWins    int
	YellowWins int
	Draws      int
}

// RunBudgetExperiment pairs each search budget against the next larger one.
func RunBudgetExperiment(ctx context.Context, settings Settings) ([]Score, error) {
	matchUps := []MatchUp{}
	for i := 0; i+1 < len(budgetConfigs); i++ {
		matchUps = append(matchUps, MatchUp{Red: budgetConfigs[i], Yellow: budgetConfigs[i+1]})
	}
	return Run(ctx, "budget", budgetConfigs, matchUps, settings)
}

// RunBaselineExperiment pairs each search budget and the sampling agent
// against a random player.
func RunBaselineExperiment(ctx context.Context, settings Settings) ([]Score, error) {
	configs := append(append([]metrics.AgentConfig{}, budgetConfigs...), sampler, baseline)
	matchUps := []MatchUp{}
	for _, config := range configs[:len(configs)-1] {
		matchUps = append(matchUps, MatchUp{Red: config, Yellow: baseline})
	}
	return Run(ctx, "baseline", configs, matchUps, settings)
}

type gameResult struct {
	record metrics.GameRecord
	moves  []metrics.MoveMetric
}

// Run plays settings.Games games per match up, alternating which side starts.
// Every game builds its own agents, so no search tree is shared.
func Run(ctx context.Context, name string, configs []metrics.AgentConfig, matchUps []MatchUp, settings Settings) ([]Score, error) {
	if settings.Games <= 0 {
		return nil, fmt.Errorf("experiment %s: games must be positive", name)
	}

	log.Info().Msgf("starting %s experiment...", name)

	results := make([]gameResult, len(matchUps)*settings.Games)
	g, ctx := errgroup.WithContext(ctx)
	if settings.Workers > 0 {
		g.SetLimit(settings.Workers)
	}
	for mi, matchUp := range matchUps {
		for i := 0; i < settings.Games; i++ {
			id := mi*settings.Games + i
			starter := game.Red
			if i%2 == 1 {
				starter = game.Yellow
			}
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := runGame(id+1, matchUp, starter, settings.Seed+uint64(id)*2)
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				results[id] = result
				log.Info().Msgf("completed matchup %d of %d game %d of %d: %s",
					mi+1, len(matchUps), i+1, settings.Games, result.record.Outcome)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msgf("completed %s experiment", name)

	scores := tally(matchUps, results, settings.Games)
	if settings.Dir != "" {
		if err := store(settings.Dir, name, configs, results); err != nil {
			return scores, err
		}
	}
	return scores, nil
}

func tally(matchUps []MatchUp, results []gameResult, games int) []Score {
	scores := make([]Score, len(matchUps))
	for mi, matchUp := range matchUps {
		scores[mi].MatchUp = matchUp
		for _, result := range results[mi*games : (mi+1)*games] {
			switch result.record.Outcome {
			case game.RedWin:
				scores[mi].RedWins++
			case game.YellowWin:
				scores[mi].YellowWins++
			default:
				scores[mi].Draws++
			}
		}
	}
	return scores
}

func store(dir, name string, configs []metrics.AgentConfig, results []gameResult) error {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for _, result := range results {
		gameRecords = append(gameRecords, result.record)
		for _, move := range result.moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: result.record.ID, MoveMetric: move})
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")
	return nil
}

// runGame executes a single game between two agents
func runGame(id int, matchUp MatchUp, starter game.Player, seed uint64) (gameResult, error) {
	red := createAgent(matchUp.Red, fmt.Sprintf("agent-%d-red", matchUp.Red.ID), seed)
	yellow := createAgent(matchUp.Yellow, fmt.Sprintf("agent-%d-yellow", matchUp.Yellow.ID), seed+1)

	gameMetric, moveMetrics, err := engine.NewLocalEngine(red, yellow, starter).Run()
	if err != nil {
		return gameResult{}, err
	}
	return gameResult{
		record: metrics.GameRecord{
			ID:         id,
			Red:        matchUp.Red.ID,
			Yellow:     matchUp.Yellow.ID,
			GameMetric: gameMetric,
		},
		moves: moveMetrics,
	}, nil
}

func createAgent(config metrics.AgentConfig, name string, seed uint64) agent.Agent {
	switch config.Kind {
	case metrics.Random:
		return agent.NewRandomAgent(name, seed)
	case metrics.Training:
		temperature := config.Temperature
		if temperature <= 0 {
			temperature = 1
		}
		return agent.NewTrainingAgent(name, createMCTS(config, seed), temperature, seed)
	default:
		return agent.NewEvaluationAgent(name, createMCTS(config, seed))
	}
}

func createMCTS(config metrics.AgentConfig, seed uint64) *searcher.MCTS {
	options := []searcher.Option{searcher.WithSeed(seed), searcher.WithMetrics()}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 || config.Episodes <= 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}

	return searcher.NewMCTS(options...)
}
