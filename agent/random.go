package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"sync"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move. Agents
// with the same seed play the same moves from the same positions.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, false
	}

	a.mu.Lock()
	i := a.rng.Intn(len(moves))
	a.mu.Unlock()

	return moves[i], metrics.SearchMetric{Goroutines: 1}, true
}
