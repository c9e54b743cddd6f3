package agent

import (
	"connect4/game"
	"connect4/searcher"
	"math"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	name        string
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns an agent for self-play that samples root moves in
// proportion to visits^(1/temperature). Winning moves are always played and
// moves that let the opponent win next turn are only sampled when nothing
// else is left.
func NewTrainingAgent(name string, mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return &trainingAgent{
		name:        name,
		mcts:        mcts,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *trainingAgent) Name() string {
	return a.name
}

func (a *trainingAgent) FindMove(state game.State) (Move, error) {
	result, err := a.mcts.Search(state, state.Turn())
	if err != nil {
		return Move{}, err
	}

	move := Move{
		Column:   result.Column,
		Value:    result.Value,
		Searched: true,
		Metrics:  result.Metrics,
	}
	if len(state.WinningMoves()) > 0 {
		return move, nil
	}

	candidates := safeMoves(state, result.Moves)
	if len(candidates) == 0 {
		return move, nil
	}
	policy := adjustTemperature(candidates, a.temperature)
	chosen := candidates[sample(policy, a.rng.Float64())]
	move.Column = chosen.Column
	move.Value = chosen.Mean
	return move, nil
}

// safeMoves drops the moves after which the opponent can win at once.
func safeMoves(state game.State, moves []searcher.MoveStat) []searcher.MoveStat {
	safe := make([]searcher.MoveStat, 0, len(moves))
	for _, stat := range moves {
		next := state
		if next.Play(stat.Column) && len(next.WinningMoves()) == 0 {
			safe = append(safe, stat)
		}
	}
	return safe
}

func adjustTemperature(moves []searcher.MoveStat, temperature float64) []float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	policy := make([]float64, len(moves))
	for i, stat := range moves {
		prob := math.Pow(float64(stat.Visits), exponent)
		sum += prob
		policy[i] = prob
	}
	// Normalize
	for i := range policy {
		if sum > 0 {
			policy[i] /= sum
		} else {
			policy[i] = 1 / float64(len(policy))
		}
	}
	return policy
}

// sample returns the index whose cumulative probability first exceeds u.
func sample(policy []float64, u float64) int {
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if u < cumulative {
			return i
		}
	}
	return len(policy) - 1 // Fallback in case of rounding errors
}
