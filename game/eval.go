package game

import "math"

// Evaluate scores a state from the given player's perspective. Higher is
// better for that player.
type Evaluate func(gs *GameState, player int) float64

// PieceRatio is the material evaluation: the player's piece count (men
// plus kings) divided by the opponent's. Returns +Inf when the opponent
// has no pieces left.
func PieceRatio(gs *GameState, player int) float64 {
	opponent, err := Opponent(player)
	if err != nil {
		return 0
	}
	mine := gs.board.Count(manFor(player)) + gs.board.Count(kingFor(player))
	theirs := gs.board.Count(manFor(opponent)) + gs.board.Count(kingFor(opponent))
	if theirs == 0 {
		return math.Inf(1)
	}
	return float64(mine) / float64(theirs)
}
