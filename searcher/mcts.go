package searcher

import (
	"connect4/game"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// MCTS runs a fresh tree search per call. It keeps a private random source,
// so a single MCTS must not be shared between goroutines.
type MCTS struct {
	duration    time.Duration
	timed       bool
	episodes    int
	exploration float64
	rng         *rand.Rand
	metrics     Collector
}

// Result is the move chosen by a search.
type Result struct {
	Column  int
	Value   float64 // Mean reward of Column in [Loss, Win]
	Moves   []MoveStat
	Metrics SearchMetric
}

// WinProbability rescales Value to [0, 1].
func (r Result) WinProbability() float64 {
	return (r.Value - Loss) / (Win - Loss)
}

// WithDuration bounds the search by wall-clock time. A zero duration still
// samples every legal move once.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration >= 0 {
			m.duration = duration
			m.timed = true
		}
	}
}

// WithEpisodes bounds the number of selection and expansion rounds.
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		exploration: Exploration,
		metrics:     NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if !m.timed && m.episodes <= 0 {
		panic("Must specify search episodes or duration")
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// Search returns the best column for ai from state within a time budget.
func Search(state game.State, ai game.Player, budget time.Duration) (Result, error) {
	budget = max(budget, 0)
	return NewMCTS(WithDuration(budget)).Search(state, ai)
}

// Search builds a tree rooted at state and returns the column ai should play.
// The tree is dropped before returning.
func (m *MCTS) Search(state game.State, ai game.Player) (Result, error) {
	if ai != game.Red && ai != game.Yellow {
		return Result{}, fmt.Errorf("search for %s: %w", ai, ErrInvalidSide)
	}
	if winner := state.Evaluate().Winner(); winner != game.Empty {
		return Result{}, fmt.Errorf("search after %s won: %w", winner, ErrGameOver)
	}

	start := time.Now()
	m.metrics.Start()

	root := newNode(nil, state, state.LastMove())
	root.expand()
	if len(root.children) == 0 {
		return Result{}, fmt.Errorf("search: %w", ErrBoardFull)
	}

	// Every root move gets one sample before selection starts
	for _, child := range root.children {
		m.playout(child, ai)
	}

	for episode := 0; ; episode++ {
		if m.timed && time.Since(start) >= m.duration {
			break
		}
		if m.episodes > 0 && episode >= m.episodes {
			break
		}
		m.simulate(root, ai)
		m.metrics.AddEpisode()
	}

	best := choose(root, ai)
	result := Result{
		Column:  best.move,
		Value:   best.mean(),
		Moves:   stats(root),
		Metrics: m.metrics.Complete(),
	}

	log.Debug().
		Stringer("player", ai).
		Int("column", result.Column).
		Float64("value", result.Value).
		Int("visits", root.visits).
		Dur("elapsed", time.Since(start)).
		Msg("search complete")

	return result, nil
}

func (m *MCTS) simulate(root *node, ai game.Player) {
	leaf := descend(root, m.exploration)

	if outcome := leaf.state.Evaluate(); outcome.IsTerminal() {
		backup(leaf, reward(outcome, ai))
		return
	}

	leaf.expand()
	for _, child := range leaf.children {
		m.playout(child, ai)
	}
}

// descend follows UCT from root until it reaches an unexpanded node or an
// expanded node without children.
func descend(root *node, c float64) *node {
	n := root
	for n.expanded && len(n.children) > 0 {
		n = selectChild(n, c)
	}
	return n
}

func (m *MCTS) playout(n *node, ai game.Player) {
	backup(n, rollout(n.state, ai, m.rng))
	m.metrics.AddFullPlayout()
}

// rollout plays uniformly random legal moves on its own copy of state until
// the game ends and scores the result for ai.
func rollout(state game.State, ai game.Player, rng *rand.Rand) float64 {
	var moves [game.Width]int
	for {
		outcome := state.Evaluate()
		if outcome.IsTerminal() {
			return reward(outcome, ai)
		}

		count := 0
		for column := 0; column < game.Width; column++ {
			if state.CanPlay(column) {
				moves[count] = column
				count++
			}
		}
		state.Play(moves[rng.Intn(count)])
	}
}

func reward(outcome game.Outcome, ai game.Player) float64 {
	switch outcome.Winner() {
	case ai:
		return Win
	case game.Empty:
		return Draw
	default:
		return Loss
	}
}
