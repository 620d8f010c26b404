package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
)

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns an agent that plays the move chosen by minimax search.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

func (a minimaxAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, bool) {
	choice, metric := a.minimax.Search(state, state.Turn)
	if choice == nil {
		return game.Move{}, metric, false
	}
	return choice.Move, metric, true
}
