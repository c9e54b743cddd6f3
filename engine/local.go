package engine

import (
	"connect4/agent"
	"connect4/experiments/metrics"
	"connect4/game"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Observer is told about every accepted move, after it is applied.
type Observer interface {
	Moved(state game.State, player game.Player, move agent.Move, name string)
}

type Option func(e *LocalEngine)

func WithObserver(observer Observer) Option {
	return func(e *LocalEngine) {
		if observer != nil {
			e.observers = append(e.observers, observer)
		}
	}
}

// WithState starts from a given position instead of the empty board.
func WithState(state game.State) Option {
	return func(e *LocalEngine) {
		e.State = state
	}
}

// LocalEngine alternates two agents on the authoritative game state.
type LocalEngine struct {
	State     game.State
	Agents    map[game.Player]agent.Agent
	observers []Observer
}

var _ Engine = (*LocalEngine)(nil)

func NewLocalEngine(red, yellow agent.Agent, first game.Player, options ...Option) *LocalEngine {
	if red == nil || yellow == nil {
		panic("need an agent for each player")
	}

	e := &LocalEngine{
		State: game.NewState(first),
		Agents: map[game.Player]agent.Agent{
			game.Red:    red,
			game.Yellow: yellow,
		},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the game is over.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		Starter:   e.State.Turn(),
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s (%s) is starting", e.Agents[e.State.Turn()].Name(), e.State.Turn())

	outcome := e.State.Evaluate()
	for step := 1; !outcome.IsTerminal() && step <= MaxMoves; step++ {
		player := e.State.Turn()
		current := e.Agents[player]

		move, err := current.FindMove(e.State)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("%s failed to move: %w", current.Name(), err)
		}
		if !e.State.Play(move.Column) {
			return gameMetric, moveMetrics, fmt.Errorf("%s played column %d: %w", current.Name(), move.Column, ErrIllegalMove)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Column:       move.Column,
			Value:        move.Value,
			SearchMetric: move.Metrics,
		})
		event := log.Info().Int("step", step).Stringer("player", player).Int("column", move.Column)
		if move.Searched {
			event = event.Float64("value", move.Value)
		}
		event.Msgf("%s moved", current.Name())

		for _, observer := range e.observers {
			observer.Moved(e.State, player, move, current.Name())
		}
		outcome = e.State.Evaluate()
	}

	gameMetric.Outcome = outcome
	if winner := outcome.Winner(); winner != game.Empty {
		gameMetric.Winner = e.Agents[winner].Name()
	}
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Stringer("outcome", outcome).Int("moves", gameMetric.TotalMoves).Msg("game over")
	return gameMetric, moveMetrics, nil
}
