package game

import (
	"fmt"
	"strings"
)

// Piece is the content of one board square.
//
// Men move diagonally away from their own back rank only; kings move
// diagonally in all four directions. Player 1 starts on rows 0..2 and
// advances toward row Dim-1, player 2 starts opposite and advances
// toward row 0.
type Piece int8

const (
	Empty Piece = iota
	Man1        // player 1 man
	Man2        // player 2 man
	King1       // player 1 king
	King2       // player 2 king
)

// Owner returns the id of the player controlling the piece, or 0 for an
// empty square.
func (p Piece) Owner() int {
	switch p {
	case Man1, King1:
		return 1
	case Man2, King2:
		return 2
	default:
		return 0
	}
}

func (p Piece) IsKing() bool {
	return p == King1 || p == King2
}

func (p Piece) String() string {
	switch p {
	case Empty:
		return "."
	case Man1:
		return "1"
	case Man2:
		return "2"
	case King1:
		return "3"
	case King2:
		return "4"
	default:
		return "?"
	}
}

// manFor and kingFor map a player id to its piece codes.
func manFor(player int) Piece {
	if player == 1 {
		return Man1
	}
	return Man2
}

func kingFor(player int) Piece {
	if player == 1 {
		return King1
	}
	return King2
}

// Board is a square grid of pieces, indexed row-major: cells[y][x]. The
// dimension is fixed at construction.
type Board struct {
	cells [][]Piece
	dim   int
}

// NewBoard returns the standard 8x8 opening layout with player 1 on the
// top three rows.
func NewBoard() *Board {
	b, _ := BoardFromGrid([][]Piece{
		{0, 1, 0, 1, 0, 1, 0, 1},
		{1, 0, 1, 0, 1, 0, 1, 0},
		{0, 1, 0, 1, 0, 1, 0, 1},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{2, 0, 2, 0, 2, 0, 2, 0},
		{0, 2, 0, 2, 0, 2, 0, 2},
		{2, 0, 2, 0, 2, 0, 2, 0},
	})
	return b
}

// NewTestBoard returns a reduced 4x4 layout with one man per player,
// handy for deterministic tests.
func NewTestBoard() *Board {
	b, _ := BoardFromGrid([][]Piece{
		{0, 0, 0, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 2, 0},
	})
	return b
}

// BoardFromGrid builds a board from an explicit grid of piece codes. The
// grid must be square and contain only valid piece codes.
func BoardFromGrid(grid [][]Piece) (*Board, error) {
	dim := len(grid)
	if dim == 0 {
		return nil, fmt.Errorf("board grid is empty")
	}
	cells := make([][]Piece, dim)
	for y, row := range grid {
		if len(row) != dim {
			return nil, fmt.Errorf("board grid is not square: row %d has %d cells, want %d", y, len(row), dim)
		}
		for x, p := range row {
			if p < Empty || p > King2 {
				return nil, fmt.Errorf("invalid piece code %d at (%d,%d)", p, x, y)
			}
		}
		cells[y] = append([]Piece(nil), row...)
	}
	return &Board{cells: cells, dim: dim}, nil
}

func (b *Board) Dim() int {
	return b.dim
}

func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.dim && c.Y >= 0 && c.Y < b.dim
}

// At returns the piece on the given square. The square must be in bounds.
func (b *Board) At(c Coord) Piece {
	return b.cells[c.Y][c.X]
}

// Copy returns a fully independent board with identical contents.
func (b *Board) Copy() *Board {
	cells := make([][]Piece, b.dim)
	for y, row := range b.cells {
		cells[y] = append([]Piece(nil), row...)
	}
	return &Board{cells: cells, dim: b.dim}
}

// Count returns the number of squares holding the given piece.
func (b *Board) Count(p Piece) int {
	count := 0
	for _, row := range b.cells {
		for _, cell := range row {
			if cell == p {
				count++
			}
		}
	}
	return count
}

// Contains reports whether any square holds the given piece.
func (b *Board) Contains(p Piece) bool {
	for _, row := range b.cells {
		for _, cell := range row {
			if cell == p {
				return true
			}
		}
	}
	return false
}

// Apply mutates the board by one leg: the piece relocates, a jumped
// piece is removed, and a man reaching the opposite back rank is
// promoted to king in the same step. All validation happens before any
// write, so a failed Apply leaves the board untouched.
func (b *Board) Apply(m Move) error {
	if !b.InBounds(m.From) || !b.InBounds(m.To) {
		return &InvalidMoveError{Move: m, Reason: "square out of bounds"}
	}
	dx, dy := abs(m.To.X-m.From.X), abs(m.To.Y-m.From.Y)
	if dx != dy || dx < 1 || dx > 2 {
		return &InvalidMoveError{Move: m, Reason: "not a diagonal step or jump"}
	}
	piece := b.At(m.From)
	if piece == Empty {
		return &InvalidMoveError{Move: m, Reason: "no piece on the start square"}
	}
	if b.At(m.To) != Empty {
		return &InvalidMoveError{Move: m, Reason: "destination square is occupied"}
	}
	if m.IsJump() {
		jumped := b.At(m.Jumped())
		if jumped == Empty {
			return &InvalidMoveError{Move: m, Reason: "no piece to jump over"}
		}
		if jumped.Owner() == piece.Owner() {
			return &InvalidMoveError{Move: m, Reason: "cannot jump over own piece"}
		}
	}

	b.cells[m.From.Y][m.From.X] = Empty
	b.cells[m.To.Y][m.To.X] = piece
	if m.IsJump() {
		j := m.Jumped()
		b.cells[j.Y][j.X] = Empty
	}
	if piece == Man1 && m.To.Y == b.dim-1 {
		b.cells[m.To.Y][m.To.X] = King1
	}
	if piece == Man2 && m.To.Y == 0 {
		b.cells[m.To.Y][m.To.X] = King2
	}
	return nil
}

func (b *Board) String() string {
	var sb strings.Builder
	for _, row := range b.cells {
		for x, cell := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
