package main

import (
	"os"

	"checkers/experiments"
	"checkers/experiments/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	random := metrics.AgentConfig{ID: 1, Kind: "random"}
	mcts := metrics.AgentConfig{ID: 2, Kind: "mcts", Trials: 200}
	alphabeta := metrics.AgentConfig{ID: 3, Kind: "alphabeta", Depth: 3}

	matchups := []experiments.Matchup{
		{Agent1: random, Agent2: mcts},
		{Agent1: random, Agent2: alphabeta},
		{Agent1: mcts, Agent2: alphabeta},
	}

	records, err := experiments.RunAndWrite("experiments-out", "baseline", matchups, 10, 4)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	summary := metrics.Summarize(records)
	log.Info().
		Int("games", summary.Games).
		Int("wins_player1", summary.Wins1).
		Int("wins_player2", summary.Wins2).
		Int("undecided", summary.Undecided).
		Float64("avg_turns", summary.AvgTurns).
		Msg("experiment summary")
}
