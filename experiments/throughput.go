package experiments

import (
	"checkers/game"
	"checkers/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

// ThroughputGoroutines are the root-parallel settings measured by RunThroughputExperiment.
var ThroughputGoroutines = []int{1, 2, 4, 8}

// ThroughputResult is the search effort for one goroutine setting.
type ThroughputResult struct {
	Goroutines int
	Move       game.Move
	Nodes      int
	Duration   time.Duration
}

// RunThroughputExperiment searches the starting position at depth once per goroutine
// setting. Every setting must pick the same move; only the speed differs.
func RunThroughputExperiment(depth int, goroutines []int) []ThroughputResult {
	state := game.NewGameState()
	results := make([]ThroughputResult, 0, len(goroutines))

	log.Info().Msg("starting throughput experiment...")

	for _, n := range goroutines {
		// Pruning off: root-parallel search scores every root move with a full window
		minimax := searcher.NewMinimax(depth, searcher.WithGoroutines(n), searcher.WithPruning(false), searcher.WithMetrics())
		choice, metric := minimax.Search(state, state.Turn)
		if choice == nil {
			log.Warn().Msgf("no move found with %d goroutines", n)
			continue
		}

		results = append(results, ThroughputResult{
			Goroutines: n,
			Move:       choice.Move,
			Nodes:      metric.Nodes,
			Duration:   metric.Duration,
		})
		log.Info().Msgf("goroutines=%d move=%s nodes=%d duration=%s", n, choice.Move, metric.Nodes, metric.Duration)
	}

	log.Info().Msg("completed throughput experiment")
	return results
}
