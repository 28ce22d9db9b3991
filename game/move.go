package game

import (
	"fmt"
	"strings"
)

// Coord addresses a board square by column (X) and row (Y).
type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Move is one leg of a turn: a simple diagonal step or a single jump.
type Move struct {
	From Coord
	To   Coord
}

// IsJump reports whether the leg covers two squares, capturing the piece
// in between.
func (m Move) IsJump() bool {
	return abs(m.To.X-m.From.X) == 2
}

// Jumped returns the square of the captured piece. Only meaningful when
// IsJump is true.
func (m Move) Jumped() Coord {
	return Coord{X: (m.From.X + m.To.X) / 2, Y: (m.From.Y + m.To.Y) / 2}
}

func (m Move) String() string {
	return fmt.Sprintf("%s->%s", m.From, m.To)
}

// Turn is one player's complete move for a ply: a single step, a single
// jump, or a chain of jump legs. Each leg starts on the square where the
// previous leg ended.
type Turn []Move

func (t Turn) Equal(other Turn) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}

// IsJump reports whether the turn is a capture chain.
func (t Turn) IsJump() bool {
	return len(t) > 0 && t[0].IsJump()
}

func (t Turn) String() string {
	legs := make([]string, len(t))
	for i, m := range t {
		legs[i] = m.String()
	}
	return strings.Join(legs, " ")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
