package game

import (
	"golang.org/x/exp/rand"
)

// GameState wraps a board plus the player to move. The board is owned
// exclusively: search code forks states with Clone or GenerateSuccessor
// and never shares grid storage between branches.
type GameState struct {
	board   *Board
	current int
}

// NewGameState returns the standard 8x8 opening position with player 1
// to move.
func NewGameState() *GameState {
	return &GameState{board: NewBoard(), current: 1}
}

// NewTestGameState returns the reduced 4x4 position with player 1 to
// move.
func NewTestGameState() *GameState {
	return &GameState{board: NewTestBoard(), current: 1}
}

// NewGameStateFromBoard wraps an explicit board. The board is copied, so
// the caller keeps ownership of its own grid.
func NewGameStateFromBoard(b *Board, player int) (*GameState, error) {
	if player != 1 && player != 2 {
		return nil, ErrInvalidPlayer
	}
	return &GameState{board: b.Copy(), current: player}, nil
}

// Board exposes the owned board for reading. Callers must not mutate it;
// use MakeMove or GenerateSuccessor to advance the game.
func (gs *GameState) Board() *Board {
	return gs.board
}

// Player returns the id of the player to move.
func (gs *GameState) Player() int {
	return gs.current
}

// Opponent returns the player not to move.
func (gs *GameState) Opponent() int {
	other, _ := Opponent(gs.current)
	return other
}

// Opponent maps a player id to its opponent.
func Opponent(player int) (int, error) {
	switch player {
	case 1:
		return 2, nil
	case 2:
		return 1, nil
	default:
		return 0, ErrInvalidPlayer
	}
}

// Clone returns an independent copy of the state.
func (gs *GameState) Clone() *GameState {
	return &GameState{board: gs.board.Copy(), current: gs.current}
}

// LegalMoves returns every turn available to the player to move.
func (gs *GameState) LegalMoves() []Turn {
	return gs.LegalMovesFor(gs.current)
}

// LegalMovesFor returns every turn available to the given player. When
// any capture exists the result contains only capture chains: a player
// may not decline an available jump, so simple steps are excluded that
// turn.
func (gs *GameState) LegalMovesFor(player int) []Turn {
	var jumps, singles []Turn
	for y := 0; y < gs.board.dim; y++ {
		for x := 0; x < gs.board.dim; x++ {
			from := Coord{X: x, Y: y}
			if gs.board.At(from).Owner() != player {
				continue
			}
			jumps = append(jumps, jumpTurns(gs.board, from)...)
			if len(jumps) == 0 {
				// Simple steps only matter while no jump has
				// turned up anywhere on the board.
				singles = append(singles, singleTurns(gs.board, from)...)
			}
		}
	}
	if len(jumps) > 0 {
		return jumps
	}
	return singles
}

var diagonals = []Coord{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}

// movingBackward reports whether the vertical direction is closed to the
// piece. Men may not move toward their own back rank; kings are free.
func movingBackward(piece Piece, dy int) bool {
	return (piece == Man1 && dy < 0) || (piece == Man2 && dy > 0)
}

func singleTurns(b *Board, from Coord) []Turn {
	piece := b.At(from)
	var turns []Turn
	for _, d := range diagonals {
		if movingBackward(piece, d.Y) {
			continue
		}
		to := Coord{X: from.X + d.X, Y: from.Y + d.Y}
		if !b.InBounds(to) || b.At(to) != Empty {
			continue
		}
		turns = append(turns, Turn{{From: from, To: to}})
	}
	return turns
}

// jumpTurns discovers every maximal capture chain starting from the
// piece at from. Each candidate jump is applied to a board copy and the
// search recurses from the landing square, so branches stay independent.
// A chain ends only when no further jump continues from its last square.
// Promotion happens at landing even mid-chain, and continuation legality
// is re-derived from the post-move board, so a fresh king may keep
// jumping in any direction.
func jumpTurns(b *Board, from Coord) []Turn {
	piece := b.At(from)
	if piece == Empty {
		return nil
	}
	enemy := 0
	if other, err := Opponent(piece.Owner()); err == nil {
		enemy = other
	}

	var turns []Turn
	for _, d := range diagonals {
		if movingBackward(piece, d.Y) {
			continue
		}
		to := Coord{X: from.X + 2*d.X, Y: from.Y + 2*d.Y}
		if !b.InBounds(to) || b.At(to) != Empty {
			continue
		}
		over := Coord{X: from.X + d.X, Y: from.Y + d.Y}
		if b.At(over).Owner() != enemy {
			continue
		}

		leg := Move{From: from, To: to}
		next := b.Copy()
		if err := next.Apply(leg); err != nil {
			continue
		}

		continuations := jumpTurns(next, to)
		for _, c := range continuations {
			turns = append(turns, append(Turn{leg}, c...))
		}
		if len(continuations) == 0 {
			turns = append(turns, Turn{leg})
		}
	}
	return turns
}

// MakeMove applies every leg of the turn to the owned board, then flips
// the player to move. The turn is validated on a scratch copy first: a
// malformed turn returns an error and leaves the state untouched.
func (gs *GameState) MakeMove(turn Turn) error {
	if len(turn) == 0 {
		return &InvalidMoveError{Reason: "turn has no legs"}
	}
	scratch := gs.board.Copy()
	for i, leg := range turn {
		if i > 0 && leg.From != turn[i-1].To {
			return &InvalidMoveError{Move: leg, Reason: "leg does not start where the previous leg ended"}
		}
		if err := scratch.Apply(leg); err != nil {
			return err
		}
	}
	gs.board = scratch
	gs.current = gs.Opponent()
	return nil
}

// GenerateSuccessor returns a deep copy of the state with the turn
// applied, or a plain copy when turn is nil. The receiver is never
// mutated.
func (gs *GameState) GenerateSuccessor(turn Turn) (*GameState, error) {
	next := gs.Clone()
	if len(turn) > 0 {
		if err := next.MakeMove(turn); err != nil {
			return nil, err
		}
	}
	return next, nil
}

// Winner returns the id of the winning player, or 0 while the game is
// still running. A side loses when it has no pieces left or no legal
// moves on its turn.
func (gs *GameState) Winner() int {
	if gs.eliminated(1) {
		return 2
	}
	if gs.eliminated(2) {
		return 1
	}
	return 0
}

func (gs *GameState) eliminated(player int) bool {
	if !gs.board.Contains(manFor(player)) && !gs.board.Contains(kingFor(player)) {
		return true
	}
	return len(gs.LegalMovesFor(player)) == 0
}

// IsTerminal reports whether the game is over.
func (gs *GameState) IsTerminal() bool {
	return gs.Winner() != 0
}

// RandomPlayout plays uniformly random turns until the game ends and
// returns the winner. The receiver is advanced in place; fork with Clone
// to keep the original.
func (gs *GameState) RandomPlayout(rng *rand.Rand) int {
	for {
		winner := gs.Winner()
		if winner != 0 {
			return winner
		}
		moves := gs.LegalMoves()
		// A legal turn always exists here, or Winner would be set.
		_ = gs.MakeMove(moves[rng.Intn(len(moves))])
	}
}
