package agent

import (
	"connect4/game"
	"connect4/searcher"
)

// Move is a column chosen by an agent. Searching agents also report their
// value estimate and search metrics.
type Move struct {
	Column   int
	Value    float64
	Searched bool
	Metrics  searcher.SearchMetric
}

// WinProbability rescales Value to [0, 1].
func (m Move) WinProbability() float64 {
	return searcher.Result{Value: m.Value}.WinProbability()
}

type Agent interface {
	Name() string
	// FindMove returns the column to play in state for the side to move.
	FindMove(state game.State) (Move, error)
}
