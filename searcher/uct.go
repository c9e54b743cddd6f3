package searcher

import "math"

// uctScore = w/n + c*sqrt(ln(N)/n) where N is the parent's visits.
//
// A child or parent without visits scores ln(N) instead, which is -Inf when
// N is 0. selectChild resolves that case to the first child.
func uctScore(child *node, c float64) float64 {
	w := child.rewards
	n := float64(child.visits)
	N := float64(child.parent.visits)

	if n == 0 || N == 0 {
		return math.Log(N)
	}
	return w/n + c*math.Sqrt(math.Log(N)/n)
}

// selectChild returns the child with the highest UCT score. Ties keep the
// earlier child.
func selectChild(parent *node, c float64) *node {
	if len(parent.children) == 0 {
		panic("cannot select from a node without children")
	}

	best := parent.children[0]
	bestScore := uctScore(best, c)
	for _, child := range parent.children[1:] {
		if score := uctScore(child, c); score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}
