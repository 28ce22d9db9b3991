package searcher

import (
	"fmt"
	"math"

	"checkers/game"
)

// DefaultDepth is the minimax ply budget when none is configured.
const DefaultDepth = 3

type minimaxConfig struct {
	depth    int
	evaluate game.Evaluate
}

type MinimaxOption func(*minimaxConfig)

// WithDepth sets the search depth in plies.
func WithDepth(depth int) MinimaxOption {
	return func(c *minimaxConfig) {
		if depth > 0 {
			c.depth = depth
		}
	}
}

// WithEvaluation replaces the default material-ratio evaluation.
func WithEvaluation(evaluate game.Evaluate) MinimaxOption {
	return func(c *minimaxConfig) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

func newMinimaxConfig(options []MinimaxOption) minimaxConfig {
	c := minimaxConfig{depth: DefaultDepth, evaluate: game.PieceRatio}
	for _, option := range options {
		option(&c)
	}
	return c
}

// MinimaxSearchAgent runs depth-limited adversarial search: max and min
// layers alternate over all legal successors, and leaves are scored with
// the evaluation function. Ties break toward the first maximal turn in
// generation order.
type MinimaxSearchAgent struct {
	minimaxConfig
}

func NewMinimaxSearchAgent(options ...MinimaxOption) *MinimaxSearchAgent {
	return &MinimaxSearchAgent{minimaxConfig: newMinimaxConfig(options)}
}

func (a *MinimaxSearchAgent) ChooseAction(state *game.GameState) (game.Turn, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, game.ErrNoLegalMoves
	}

	var best game.Turn
	bestValue := math.Inf(-1)
	for _, turn := range moves {
		successor, err := state.GenerateSuccessor(turn)
		if err != nil {
			return nil, err
		}
		if value := a.minValue(successor, 0); value > bestValue {
			bestValue = value
			best = turn
		}
	}
	return best, nil
}

// minValue is the opponent's layer: the minimum over all successors. The
// depth budget is spent on the way back up to a max layer, so one unit
// of depth covers a full max+min round.
func (a *MinimaxSearchAgent) minValue(state *game.GameState, depth int) float64 {
	if state.IsTerminal() || depth == a.depth {
		return a.evaluate(state, state.Opponent())
	}
	value := math.Inf(1)
	for _, turn := range state.LegalMoves() {
		successor, err := state.GenerateSuccessor(turn)
		if err != nil {
			continue
		}
		value = math.Min(value, a.maxValue(successor, depth+1))
	}
	return value
}

func (a *MinimaxSearchAgent) maxValue(state *game.GameState, depth int) float64 {
	if state.IsTerminal() || depth == a.depth {
		return a.evaluate(state, state.Player())
	}
	value := math.Inf(-1)
	for _, turn := range state.LegalMoves() {
		successor, err := state.GenerateSuccessor(turn)
		if err != nil {
			continue
		}
		value = math.Max(value, a.minValue(successor, depth))
	}
	return value
}

func (a *MinimaxSearchAgent) String() string {
	return fmt.Sprintf("minimax agent (depth %d)", a.depth)
}

// AlphaBetaSearchAgent is minimax with alpha-beta pruning: a max layer
// stops as soon as its value reaches beta, a min layer as soon as it
// drops to alpha. Pruning never changes the chosen turn, only the work
// done to find it.
type AlphaBetaSearchAgent struct {
	minimaxConfig
}

func NewAlphaBetaSearchAgent(options ...MinimaxOption) *AlphaBetaSearchAgent {
	return &AlphaBetaSearchAgent{minimaxConfig: newMinimaxConfig(options)}
}

func (a *AlphaBetaSearchAgent) ChooseAction(state *game.GameState) (game.Turn, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, game.ErrNoLegalMoves
	}

	// Root max layer, keeping the running value per turn so the first
	// turn reaching the final maximum can be returned.
	alpha, beta := math.Inf(-1), math.Inf(1)
	value := math.Inf(-1)
	values := make([]float64, 0, len(moves))
	for _, turn := range moves {
		successor, err := state.GenerateSuccessor(turn)
		if err != nil {
			return nil, err
		}
		value = math.Max(value, a.minValue(successor, alpha, beta, 0))
		values = append(values, value)
		if value >= beta {
			break
		}
		alpha = math.Max(alpha, value)
	}
	for i, v := range values {
		if v == value {
			return moves[i], nil
		}
	}
	return moves[len(values)-1], nil
}

func (a *AlphaBetaSearchAgent) minValue(state *game.GameState, alpha, beta float64, depth int) float64 {
	if state.IsTerminal() || depth == a.depth {
		return a.evaluate(state, state.Opponent())
	}
	value := math.Inf(1)
	for _, turn := range state.LegalMoves() {
		successor, err := state.GenerateSuccessor(turn)
		if err != nil {
			continue
		}
		value = math.Min(value, a.maxValue(successor, alpha, beta, depth+1))
		if value <= alpha {
			return value
		}
		beta = math.Min(beta, value)
	}
	return value
}

func (a *AlphaBetaSearchAgent) maxValue(state *game.GameState, alpha, beta float64, depth int) float64 {
	if state.IsTerminal() || depth == a.depth {
		return a.evaluate(state, state.Player())
	}
	value := math.Inf(-1)
	for _, turn := range state.LegalMoves() {
		successor, err := state.GenerateSuccessor(turn)
		if err != nil {
			continue
		}
		value = math.Max(value, a.minValue(successor, alpha, beta, depth))
		if value >= beta {
			return value
		}
		alpha = math.Max(alpha, value)
	}
	return value
}

func (a *AlphaBetaSearchAgent) String() string {
	return fmt.Sprintf("alpha-beta minimax agent (depth %d)", a.depth)
}
