package agent

import (
	"connect4/game"
	"connect4/searcher"
)

type evaluationAgent struct {
	name string
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns an agent that plays the searcher's best move.
func NewEvaluationAgent(name string, mcts *searcher.MCTS) Agent {
	return evaluationAgent{name: name, mcts: mcts}
}

func (a evaluationAgent) Name() string {
	return a.name
}

func (a evaluationAgent) FindMove(state game.State) (Move, error) {
	result, err := a.mcts.Search(state, state.Turn())
	if err != nil {
		return Move{}, err
	}
	return Move{
		Column:   result.Column,
		Value:    result.Value,
		Searched: true,
		Metrics:  result.Metrics,
	}, nil
}
