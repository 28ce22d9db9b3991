package engine

import (
	"fmt"

	"checkers/game"
	"checkers/searcher"

	"github.com/rs/zerolog/log"
)

// DefaultMaxTurns caps runaway games; two shuffling kings can otherwise
// cycle forever.
const DefaultMaxTurns = 500

// Engine drives a local game: it holds the authoritative state and
// alternates asking each player's agent for a turn until the game ends.
type Engine struct {
	State    *game.GameState
	Agents   map[int]searcher.Agent
	MaxTurns int
}

// LocalEngine pairs two agents over the standard opening position.
// Player 1 moves first.
func LocalEngine(agent1, agent2 searcher.Agent) *Engine {
	return NewEngine(game.NewGameState(), agent1, agent2)
}

// NewEngine pairs two agents over an explicit starting state.
func NewEngine(state *game.GameState, agent1, agent2 searcher.Agent) *Engine {
	return &Engine{
		State:    state,
		Agents:   map[int]searcher.Agent{1: agent1, 2: agent2},
		MaxTurns: DefaultMaxTurns,
	}
}

// Run executes the turn loop to completion and returns the winner and
// the number of turns played. A winner of 0 means the game hit the turn
// cap undecided. Agent failures and illegal turns abort the game with an
// error; the state is left at the last valid position.
func (e *Engine) Run() (winner int, turns int, err error) {
	log.Debug().Int("player", e.State.Player()).Msg("game started")

	for turns = 0; ; turns++ {
		if w := e.State.Winner(); w != 0 {
			log.Debug().Int("winner", w).Int("turns", turns).Msg("game over")
			return w, turns, nil
		}
		if turns >= e.MaxTurns {
			log.Debug().Int("turns", turns).Msg("turn cap reached, game undecided")
			return 0, turns, nil
		}

		player := e.State.Player()
		agent := e.Agents[player]
		chosen, err := agent.ChooseAction(e.State)
		if err != nil {
			return 0, turns, fmt.Errorf("player %d failed to choose a turn: %w", player, err)
		}
		if !isLegal(e.State, chosen) {
			return 0, turns, fmt.Errorf("player %d chose illegal turn %s", player, chosen)
		}
		if err := e.State.MakeMove(chosen); err != nil {
			return 0, turns, fmt.Errorf("player %d move rejected: %w", player, err)
		}

		log.Debug().Msgf("turn %d: player %d (%v) plays %s", turns+1, player, agent, chosen)
	}
}

// isLegal checks the chosen turn against the generator, so a buggy agent
// cannot corrupt the authoritative state.
func isLegal(state *game.GameState, turn game.Turn) bool {
	for _, legal := range state.LegalMoves() {
		if legal.Equal(turn) {
			return true
		}
	}
	return false
}
