package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
)

type Agent interface {
	// FindMove returns a move for the player to move in state and performance metrics
	// (if collected). It returns false when that player has no legal move.
	FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, bool)
}
