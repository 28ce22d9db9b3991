package metrics

import "time"

// AgentConfig describes one competing agent in an experiment.
type AgentConfig struct {
	ID     int
	Kind   string // "random", "mcts", "minimax" or "alphabeta"
	Trials int    // mcts only
	Depth  int    // minimax/alphabeta only
	Seed   uint64 // randomness seed; 0 means time-seeded
}

// GameRecord captures the outcome of one completed game.
type GameRecord struct {
	ID       int
	Agent1   int // AgentConfig.ID playing as player 1
	Agent2   int // AgentConfig.ID playing as player 2
	Winner   int // 0 when the game hit the turn cap undecided
	Turns    int
	Duration time.Duration
}

// Summary aggregates a set of game records.
type Summary struct {
	Games     int
	Wins1     int
	Wins2     int
	Undecided int
	AvgTurns  float64
}

// Summarize folds game records into per-matchup totals.
func Summarize(records []GameRecord) Summary {
	s := Summary{Games: len(records)}
	if len(records) == 0 {
		return s
	}
	totalTurns := 0
	for _, r := range records {
		switch r.Winner {
		case 1:
			s.Wins1++
		case 2:
			s.Wins2++
		default:
			s.Undecided++
		}
		totalTurns += r.Turns
	}
	s.AvgTurns = float64(totalTurns) / float64(len(records))
	return s
}
