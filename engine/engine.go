package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"errors"
)

// MaxMoves is the number of cells; no game can last longer
const MaxMoves = game.Width * game.Height

var ErrIllegalMove = errors.New("illegal move")

type Engine interface {
	// Run plays a game till there's a winner or the board is full
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
