// Package experiments batches whole games between configured agents and
// aggregates the outcomes. Parallelism lives entirely here: each worker
// goroutine runs independent games over its own state lineage, the core
// search stays single-threaded.
package experiments

import (
	"fmt"
	"sync"
	"time"

	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Matchup pits two agent configurations against each other; Agent1
// plays as player 1.
type Matchup struct {
	Agent1 metrics.AgentConfig
	Agent2 metrics.AgentConfig
}

// Run plays games of every matchup across workers goroutines and
// returns one record per game, in completion order.
func Run(matchups []Matchup, games, workers int) ([]metrics.GameRecord, error) {
	if games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", games)
	}
	if workers <= 0 {
		workers = 1
	}

	type job struct {
		id      int
		matchup Matchup
	}
	jobs := make(chan job, len(matchups)*games)
	results := make(chan metrics.GameRecord, len(matchups)*games)

	count := 0
	for _, matchup := range matchups {
		for i := 0; i < games; i++ {
			count++
			jobs <- job{id: count, matchup: matchup}
		}
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				record, err := runGame(j.id, j.matchup)
				if err != nil {
					log.Error().Err(err).Int("game", j.id).Msg("game aborted")
					continue
				}
				log.Info().Int("game", j.id).Int("winner", record.Winner).
					Int("turns", record.Turns).Msg("game complete")
				results <- record
			}
		}()
	}
	wg.Wait()
	close(results)

	records := make([]metrics.GameRecord, 0, count)
	for record := range results {
		records = append(records, record)
	}
	return records, nil
}

// RunAndWrite runs the matchups and stores configs plus records as CSV
// under <root>/<name>/<timestamp>/.
func RunAndWrite(root, name string, matchups []Matchup, games, workers int) ([]metrics.GameRecord, error) {
	records, err := Run(matchups, games, workers)
	if err != nil {
		return nil, err
	}

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	configs := configSet(matchups)
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return nil, err
	}
	if err := writer.WriteGameRecords(records); err != nil {
		return nil, err
	}
	log.Info().Str("dir", writer.Dir()).Int("games", len(records)).Msg("experiment written")
	return records, nil
}

func runGame(id int, matchup Matchup) (metrics.GameRecord, error) {
	seed1, seed2 := fallbackSeeds(id)
	agent1, err := BuildAgent(matchup.Agent1, seed1)
	if err != nil {
		return metrics.GameRecord{}, err
	}
	agent2, err := BuildAgent(matchup.Agent2, seed2)
	if err != nil {
		return metrics.GameRecord{}, err
	}

	start := time.Now()
	winner, turns, err := engine.LocalEngine(agent1, agent2).Run()
	if err != nil {
		return metrics.GameRecord{}, err
	}
	return metrics.GameRecord{
		ID:       id,
		Agent1:   matchup.Agent1.ID,
		Agent2:   matchup.Agent2.ID,
		Winner:   winner,
		Turns:    turns,
		Duration: time.Since(start),
	}, nil
}

// fallbackSeeds derives the per-game default seeds for the two agents.
// The even/odd split keeps the streams disjoint across agents and
// across games.
func fallbackSeeds(id int) (uint64, uint64) {
	return 2 * uint64(id), 2*uint64(id) + 1
}

// BuildAgent constructs a searcher agent from its configuration. The
// fallback seed keeps concurrent games from sharing a randomness stream
// when the config leaves Seed unset.
func BuildAgent(config metrics.AgentConfig, fallbackSeed uint64) (searcher.Agent, error) {
	seed := config.Seed
	if seed == 0 {
		seed = fallbackSeed
	}
	rng := rand.New(rand.NewSource(seed))

	switch config.Kind {
	case "random":
		return searcher.NewRandomAgent(rng), nil
	case "mcts":
		return searcher.NewMonteCarloSearchAgent(
			searcher.WithTrials(config.Trials),
			searcher.WithRand(rng),
		), nil
	case "minimax":
		return searcher.NewMinimaxSearchAgent(searcher.WithDepth(config.Depth)), nil
	case "alphabeta":
		return searcher.NewAlphaBetaSearchAgent(searcher.WithDepth(config.Depth)), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

func configSet(matchups []Matchup) []metrics.AgentConfig {
	seen := map[int]bool{}
	var configs []metrics.AgentConfig
	for _, m := range matchups {
		for _, c := range []metrics.AgentConfig{m.Agent1, m.Agent2} {
			if !seen[c.ID] {
				seen[c.ID] = true
				configs = append(configs, c)
			}
		}
	}
	return configs
}
