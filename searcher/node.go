package searcher

import (
	"math"

	"checkers/game"

	"golang.org/x/exp/rand"
)

// node is one entry of the per-decision search tree. The parent link is
// non-owning and only walked during backpropagation; the whole tree is
// dropped once a decision is made.
type node struct {
	parent   *node
	state    *game.GameState
	turn     game.Turn // turn that produced state from parent's state
	children []*node
	wins     float64
	visits   int
}

func newRoot(state *game.GameState) *node {
	return &node{state: state}
}

// expand creates one child per legal turn. A terminal state yields no
// children.
func (n *node) expand() {
	for _, turn := range n.state.LegalMoves() {
		successor, err := n.state.GenerateSuccessor(turn)
		if err != nil {
			continue
		}
		n.children = append(n.children, &node{
			parent: n,
			state:  successor,
			turn:   turn,
		})
	}
}

// ucb1 weights a child for selection: exploitation by win rate plus
// exploration scaled by c. An unvisited child gets unconditionally
// highest priority.
func ucb1(wins float64, visits, parentVisits int, c float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return wins/float64(visits) +
		c*math.Sqrt(2*math.Log(float64(parentVisits))/float64(visits))
}

// selectChild picks the child maximizing UCB1, breaking ties uniformly
// at random.
func (n *node) selectChild(c float64, rng *rand.Rand) *node {
	var best []*node
	bestWeight := math.Inf(-1)
	for _, child := range n.children {
		weight := ucb1(child.wins, child.visits, n.visits, c)
		if weight > bestWeight {
			best = best[:0]
			bestWeight = weight
		}
		if weight == bestWeight {
			best = append(best, child)
		}
	}
	return best[rng.Intn(len(best))]
}

// winRate is the decision statistic: wins over visits, -Inf when the
// node was never visited so it can never beat a visited sibling.
func (n *node) winRate() float64 {
	if n.visits == 0 {
		return math.Inf(-1)
	}
	return n.wins / float64(n.visits)
}

// bestChild returns the child with the highest win rate, first maximal
// on ties.
func (n *node) bestChild() *node {
	var best *node
	bestRate := math.Inf(-1)
	for _, child := range n.children {
		if rate := child.winRate(); rate > bestRate {
			bestRate = rate
			best = child
		}
	}
	if best == nil && len(n.children) > 0 {
		// All children unvisited; any is as good as another.
		best = n.children[0]
	}
	return best
}

// backpropagate walks to the root adding a visit everywhere and a win
// wherever the playout winner matches the given perspective, the player
// choosing at the root. Every win rate in the tree therefore estimates
// the root player's chance of winning, so the root's best-rate child is
// the root player's best turn.
func (n *node) backpropagate(winner, perspective int) {
	credit := 0.0
	if winner == perspective {
		credit = 1.0
	}
	for cur := n; cur != nil; cur = cur.parent {
		cur.visits++
		cur.wins += credit
	}
}
