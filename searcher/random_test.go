package searcher

import (
	"testing"

	"checkers/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRandomAgent(t *testing.T) {
	t.Run("choosing among the legal turns", func(t *testing.T) {
		agent := NewRandomAgent(rand.New(rand.NewSource(42)))
		state := game.NewGameState()
		legal := state.LegalMoves()

		for i := 0; i < 20; i++ {
			turn, err := agent.ChooseAction(state)

			require.NoError(t, err)
			found := false
			for _, candidate := range legal {
				if candidate.Equal(turn) {
					found = true
				}
			}
			require.True(t, found)
		}
	})

	t.Run("failing on a state with no legal moves", func(t *testing.T) {
		state := testState(t, [][]game.Piece{
			{0, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}, 2)
		agent := NewRandomAgent(rand.New(rand.NewSource(42)))

		_, err := agent.ChooseAction(state)

		require.ErrorIs(t, err, game.ErrNoLegalMoves)
	})

	t.Run("nil source falls back to a seeded one", func(t *testing.T) {
		agent := NewRandomAgent(nil)

		turn, err := agent.ChooseAction(game.NewTestGameState())

		require.NoError(t, err)
		require.NotEmpty(t, turn)
	})
}
