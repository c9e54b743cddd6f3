package searcher

import (
	"errors"
	"math"
)

// Hyperparameters for MCTS

const Exploration = math.Sqrt2 // UCT exploration constant c

// Rollout rewards from the searching side's perspective
const (
	Win  = 1.0
	Draw = 0.0
	Loss = -Win
)

var (
	ErrBoardFull   = errors.New("board is full, no move possible")
	ErrGameOver    = errors.New("game already has a winner")
	ErrInvalidSide = errors.New("search side must be red or yellow")
)
