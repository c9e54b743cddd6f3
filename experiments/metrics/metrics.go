package metrics

import (
	"connect4/game"
	"connect4/searcher"
	"time"
)

type AgentKind string

const (
	Search   AgentKind = "search"   // Best move by mean reward
	Training AgentKind = "training" // Visit-count sampling
	Random   AgentKind = "random"
)

type AgentConfig struct {
	ID          int
	Kind        AgentKind
	Duration    time.Duration
	Episodes    int
	Exploration float64
	Temperature float64
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Column int
	Value  float64
	searcher.SearchMetric
}

type GameMetric struct {
	Starter    game.Player
	Outcome    game.Outcome
	Winner     string // Agent name, "" for a draw
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}
