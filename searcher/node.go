package searcher

import "connect4/game"

// node is one position in the search tree. Children are owned by their
// parent; parent is only followed upwards for backup and UCT.
type node struct {
	state    game.State
	parent   *node
	move     int // Column played from parent, game.NoMove for the root
	children []*node
	expanded bool
	rewards  float64
	visits   int
}

func newNode(parent *node, state game.State, move int) *node {
	return &node{
		parent: parent,
		state:  state,
		move:   move,
	}
}

// expand adds one child per playable column. Expanding twice is a no-op.
func (n *node) expand() {
	if n.expanded {
		return
	}

	n.children = make([]*node, 0, game.Width)
	for column := 0; column < game.Width; column++ {
		next := n.state
		if !next.Play(column) {
			continue
		}
		n.children = append(n.children, newNode(n, next, column))
	}
	n.expanded = true
}

// mean is the average reward, zero before the first visit.
func (n *node) mean() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.rewards / float64(n.visits)
}

// backup adds one visit and reward to n and every ancestor up to the root.
func backup(n *node, reward float64) {
	for node := n; node != nil; node = node.parent {
		node.visits++
		node.rewards += reward
	}
}
