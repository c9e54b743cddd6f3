package agent

import (
	"connect4/game"
	"connect4/searcher"
	"fmt"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	name string
	rng  *rand.Rand
}

// NewRandomAgent returns a baseline agent playing uniformly random columns.
func NewRandomAgent(name string, seed uint64) Agent {
	return &randomAgent{name: name, rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Name() string {
	return a.name
}

func (a *randomAgent) FindMove(state game.State) (Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return Move{}, fmt.Errorf("%s: %w", a.name, searcher.ErrBoardFull)
	}
	return Move{Column: moves[a.rng.Intn(len(moves))]}, nil
}
