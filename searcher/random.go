package searcher

import (
	"checkers/game"

	"golang.org/x/exp/rand"
)

// RandomAgent samples uniformly among the legal turns. It keeps no state
// between calls.
type RandomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent builds a random agent around the given source. A nil
// rng falls back to a time-seeded one; pass a seeded source for
// reproducible play.
func NewRandomAgent(rng *rand.Rand) *RandomAgent {
	if rng == nil {
		rng = newTimeSeededRand()
	}
	return &RandomAgent{rng: rng}
}

func (a *RandomAgent) ChooseAction(state *game.GameState) (game.Turn, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, game.ErrNoLegalMoves
	}
	return moves[a.rng.Intn(len(moves))], nil
}

func (a *RandomAgent) String() string {
	return "random agent"
}
