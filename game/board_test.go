package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardFromGrid(t *testing.T) {
	t.Run("building a valid square grid", func(t *testing.T) {
		b, err := BoardFromGrid([][]Piece{
			{0, 1},
			{2, 0},
		})

		require.NoError(t, err)
		require.Equal(t, 2, b.Dim())
		require.Equal(t, Man1, b.At(Coord{X: 1, Y: 0}))
		require.Equal(t, Man2, b.At(Coord{X: 0, Y: 1}))
	})

	t.Run("rejecting a non-square grid", func(t *testing.T) {
		_, err := BoardFromGrid([][]Piece{
			{0, 1},
			{2},
		})

		require.Error(t, err)
	})

	t.Run("rejecting an empty grid", func(t *testing.T) {
		_, err := BoardFromGrid(nil)

		require.Error(t, err)
	})

	t.Run("rejecting an unknown piece code", func(t *testing.T) {
		_, err := BoardFromGrid([][]Piece{
			{0, 9},
			{0, 0},
		})

		require.Error(t, err)
	})
}

func TestBoardApply(t *testing.T) {
	t.Run("relocating a piece on a simple step", func(t *testing.T) {
		b, err := BoardFromGrid([][]Piece{
			{0, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		})
		require.NoError(t, err)

		err = b.Apply(Move{From: Coord{X: 1, Y: 1}, To: Coord{X: 2, Y: 2}})

		require.NoError(t, err)
		require.Equal(t, Empty, b.At(Coord{X: 1, Y: 1}))
		require.Equal(t, Man1, b.At(Coord{X: 2, Y: 2}))
	})

	t.Run("clearing the jumped square on a jump", func(t *testing.T) {
		b, err := BoardFromGrid([][]Piece{
			{1, 0, 0, 0},
			{0, 2, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		})
		require.NoError(t, err)

		err = b.Apply(Move{From: Coord{X: 0, Y: 0}, To: Coord{X: 2, Y: 2}})

		require.NoError(t, err)
		require.Equal(t, Empty, b.At(Coord{X: 0, Y: 0}))
		require.Equal(t, Empty, b.At(Coord{X: 1, Y: 1}), "jumped piece should be removed")
		require.Equal(t, Man1, b.At(Coord{X: 2, Y: 2}))
	})

	t.Run("promoting a player 1 man on the far rank", func(t *testing.T) {
		b, err := BoardFromGrid([][]Piece{
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{1, 0, 0, 0},
			{0, 0, 0, 0},
		})
		require.NoError(t, err)

		err = b.Apply(Move{From: Coord{X: 0, Y: 2}, To: Coord{X: 1, Y: 3}})

		require.NoError(t, err)
		require.Equal(t, King1, b.At(Coord{X: 1, Y: 3}))
	})

	t.Run("promoting a player 2 man on row zero", func(t *testing.T) {
		b, err := BoardFromGrid([][]Piece{
			{0, 0, 0, 0},
			{0, 2, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		})
		require.NoError(t, err)

		err = b.Apply(Move{From: Coord{X: 1, Y: 1}, To: Coord{X: 0, Y: 0}})

		require.NoError(t, err)
		require.Equal(t, King2, b.At(Coord{X: 0, Y: 0}))
	})

	t.Run("leaving a king unchanged on the far rank", func(t *testing.T) {
		b, err := BoardFromGrid([][]Piece{
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 3, 0},
			{0, 0, 0, 0},
		})
		require.NoError(t, err)

		err = b.Apply(Move{From: Coord{X: 2, Y: 2}, To: Coord{X: 3, Y: 3}})

		require.NoError(t, err)
		require.Equal(t, King1, b.At(Coord{X: 3, Y: 3}))
	})

	t.Run("rejecting an occupied destination without mutating", func(t *testing.T) {
		b, err := BoardFromGrid([][]Piece{
			{0, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 2, 0},
			{0, 0, 0, 0},
		})
		require.NoError(t, err)
		before := b.String()

		err = b.Apply(Move{From: Coord{X: 1, Y: 1}, To: Coord{X: 2, Y: 2}})

		var invalid *InvalidMoveError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, before, b.String(), "board should be untouched after a rejected move")
	})

	t.Run("rejecting a jump with no piece in between", func(t *testing.T) {
		b, err := BoardFromGrid([][]Piece{
			{1, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		})
		require.NoError(t, err)

		err = b.Apply(Move{From: Coord{X: 0, Y: 0}, To: Coord{X: 2, Y: 2}})

		var invalid *InvalidMoveError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("rejecting a jump over an own piece", func(t *testing.T) {
		b, err := BoardFromGrid([][]Piece{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		})
		require.NoError(t, err)

		err = b.Apply(Move{From: Coord{X: 0, Y: 0}, To: Coord{X: 2, Y: 2}})

		var invalid *InvalidMoveError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("rejecting an empty start square", func(t *testing.T) {
		b := NewTestBoard()

		err := b.Apply(Move{From: Coord{X: 0, Y: 0}, To: Coord{X: 1, Y: 1}})

		var invalid *InvalidMoveError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("rejecting an out of bounds move", func(t *testing.T) {
		b := NewTestBoard()

		err := b.Apply(Move{From: Coord{X: 3, Y: 0}, To: Coord{X: 4, Y: 1}})

		var invalid *InvalidMoveError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("rejecting a non-diagonal move", func(t *testing.T) {
		b := NewTestBoard()

		err := b.Apply(Move{From: Coord{X: 3, Y: 0}, To: Coord{X: 3, Y: 1}})

		var invalid *InvalidMoveError
		require.ErrorAs(t, err, &invalid)
	})
}

func TestBoardCopy(t *testing.T) {
	t.Run("copies do not share storage", func(t *testing.T) {
		b := NewTestBoard()
		c := b.Copy()

		err := c.Apply(Move{From: Coord{X: 3, Y: 0}, To: Coord{X: 2, Y: 1}})

		require.NoError(t, err)
		require.Equal(t, Man1, b.At(Coord{X: 3, Y: 0}), "original should keep its piece")
		require.Equal(t, Empty, b.At(Coord{X: 2, Y: 1}))
	})
}

func TestBoardCountAndContains(t *testing.T) {
	t.Run("counting the standard opening", func(t *testing.T) {
		b := NewBoard()

		require.Equal(t, 8, b.Dim())
		require.Equal(t, 12, b.Count(Man1))
		require.Equal(t, 12, b.Count(Man2))
		require.Equal(t, 0, b.Count(King1))
		require.False(t, b.Contains(King1))
		require.False(t, b.Contains(King2))
		require.True(t, b.Contains(Man1))
	})
}

func TestPiece(t *testing.T) {
	t.Run("ownership and rank", func(t *testing.T) {
		require.Equal(t, 1, Man1.Owner())
		require.Equal(t, 1, King1.Owner())
		require.Equal(t, 2, Man2.Owner())
		require.Equal(t, 2, King2.Owner())
		require.Equal(t, 0, Empty.Owner())
		require.True(t, King1.IsKing())
		require.False(t, Man1.IsKing())
	})
}
