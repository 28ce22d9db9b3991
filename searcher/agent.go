package searcher

import "checkers/game"

// Agent chooses one turn for the player to move in a given state. All
// implementations return game.ErrNoLegalMoves when the state offers no
// turns; callers that check IsTerminal first never hit that path.
type Agent interface {
	ChooseAction(state *game.GameState) (game.Turn, error)
}
