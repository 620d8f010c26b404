package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
)

const MaxTurns = 500

// Reasons a game ends.
const (
	ReasonNoPieces    = "no pieces left"
	ReasonNoMoves     = "no legal moves"
	ReasonThreshold   = "capture threshold reached"
	ReasonIllegalMove = "illegal move"
	ReasonMaxTurns    = "max turns reached"
)

type Runner interface {
	// Run plays a game till there's a winner or a max number of turns is reached
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
