package searcher

import (
	"fmt"
	"time"

	"checkers/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Hyperparameter defaults for Monte Carlo tree search.
const (
	DefaultTrials      = 200
	DefaultExploration = 1.4
)

// MonteCarloSearchAgent grows a fresh UCB1-guided tree for every
// decision: selection descends to a leaf, the leaf is expanded one child
// per legal turn, a uniformly chosen new child is rolled out to a
// terminal state, and the result is backpropagated to the root. The turn
// leading to the root child with the best win rate is returned.
type MonteCarloSearchAgent struct {
	trials      int
	exploration float64
	rng         *rand.Rand
	debug       bool
	metrics     MetricsCollector
	lastMetrics DecisionMetrics
}

type Option func(*MonteCarloSearchAgent)

// WithTrials sets the simulation budget per decision.
func WithTrials(trials int) Option {
	return func(a *MonteCarloSearchAgent) {
		if trials > 0 {
			a.trials = trials
		}
	}
}

// WithExploration sets the UCB1 exploration constant c.
func WithExploration(c float64) Option {
	return func(a *MonteCarloSearchAgent) {
		if c > 0 {
			a.exploration = c
		}
	}
}

// WithRand injects the randomness source used for rollouts and UCB1
// tie-breaks. Seed it for reproducible searches.
func WithRand(rng *rand.Rand) Option {
	return func(a *MonteCarloSearchAgent) {
		if rng != nil {
			a.rng = rng
		}
	}
}

// WithDebug enables per-trial progress logging.
func WithDebug() Option {
	return func(a *MonteCarloSearchAgent) {
		a.debug = true
	}
}

// WithMetrics enables per-decision counters, readable via Metrics after
// each ChooseAction.
func WithMetrics() Option {
	return func(a *MonteCarloSearchAgent) {
		a.metrics = NewMetricsCollector()
	}
}

func NewMonteCarloSearchAgent(options ...Option) *MonteCarloSearchAgent {
	a := &MonteCarloSearchAgent{
		trials:      DefaultTrials,
		exploration: DefaultExploration,
		metrics:     NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	if a.rng == nil {
		a.rng = newTimeSeededRand()
	}
	return a
}

func (a *MonteCarloSearchAgent) ChooseAction(state *game.GameState) (game.Turn, error) {
	a.metrics.Start()
	root := a.search(state)
	a.lastMetrics = a.metrics.Complete()

	best := root.bestChild()
	if best == nil {
		return nil, game.ErrNoLegalMoves
	}
	return best.turn, nil
}

// search builds the tree and returns its root.
func (a *MonteCarloSearchAgent) search(state *game.GameState) *node {
	root := newRoot(state)
	for i := 0; i < a.trials; i++ {
		leaf := root
		for len(leaf.children) > 0 {
			leaf = leaf.selectChild(a.exploration, a.rng)
		}

		leaf.expand()
		target := leaf
		if len(leaf.children) > 0 {
			// Roll out from a fresh child so its statistics get
			// updated during backpropagation.
			target = leaf.children[a.rng.Intn(len(leaf.children))]
		}

		winner := target.state.Clone().RandomPlayout(a.rng)
		a.metrics.AddPlayout()
		target.backpropagate(winner, state.Player())
		a.metrics.AddTrial()

		if a.debug {
			log.Debug().Msgf("trial %d of %d complete", i+1, a.trials)
		}
	}
	return root
}

// Metrics returns the counters of the most recent decision. Zero unless
// the agent was built with WithMetrics.
func (a *MonteCarloSearchAgent) Metrics() DecisionMetrics {
	return a.lastMetrics
}

func (a *MonteCarloSearchAgent) String() string {
	return fmt.Sprintf("monte carlo search agent (%d trials)", a.trials)
}

func newTimeSeededRand() *rand.Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}
