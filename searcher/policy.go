package searcher

import "connect4/game"

// choose picks the root child to play.
//
// An immediate win for ai is taken at once. A move that hands the opponent
// an immediate win is never played, and a move after which the opponent can
// win in one is only played when every other move is as bad. Otherwise the
// highest mean reward wins, earlier children first on ties.
func choose(root *node, ai game.Player) *node {
	opponent := ai.Opponent()

	var safe, unsafe *node
	for _, child := range root.children {
		winner := child.state.Evaluate().Winner()
		if winner == ai {
			return child
		}
		if winner == opponent {
			continue
		}

		if unsafe == nil || child.mean() > unsafe.mean() {
			unsafe = child
		}
		if hasWinningReply(child.state, opponent) {
			continue
		}
		if safe == nil || child.mean() > safe.mean() {
			safe = child
		}
	}

	switch {
	case safe != nil:
		return safe
	case unsafe != nil:
		return unsafe
	default:
		return root.children[0]
	}
}

// hasWinningReply reports whether player is to move in state and can win
// with the next disc.
func hasWinningReply(state game.State, player game.Player) bool {
	return state.Turn() == player && len(state.WinningMoves()) > 0
}

// MoveStat summarises one root child after a search.
type MoveStat struct {
	Column int
	Visits int
	Mean   float64
}

// stats lists the root children in column order.
func stats(root *node) []MoveStat {
	moves := make([]MoveStat, 0, len(root.children))
	for _, child := range root.children {
		moves = append(moves, MoveStat{
			Column: child.move,
			Visits: child.visits,
			Mean:   child.mean(),
		})
	}
	return moves
}
