package game

import (
	"errors"
	"fmt"
)

// ErrInvalidPlayer is returned for any player id outside {1, 2}.
var ErrInvalidPlayer = errors.New("player is not 1 or 2")

// ErrNoLegalMoves is returned when an agent is asked to choose a turn in
// a state with no legal turns. Callers that check IsTerminal first never
// see it.
var ErrNoLegalMoves = errors.New("no legal moves to choose from")

// InvalidMoveError reports a malformed or illegal move leg. The board is
// never partially mutated when one is returned.
type InvalidMoveError struct {
	Move   Move
	Reason string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %s: %s", e.Move, e.Reason)
}
