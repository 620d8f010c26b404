package searcher

import "checkers/game"

// Score is a position value from the perspective of the searching player.
type Score int

// Terminal scores. A win found closer to the root scores higher than a distant one.
const (
	Win  Score = 1 << 30
	Loss Score = -Win

	infinity Score = Win + 1<<20
)

// Choice is the move picked by a search and its minimax value.
type Choice struct {
	Move  game.Move
	Score Score
}

// Searcher picks a move for player in state.
type Searcher interface {
	SelectMove(state *game.GameState, player game.Player) (game.Move, Score, bool)
}

func winScore(ply int) Score {
	return Win - Score(ply)
}

func lossScore(ply int) Score {
	return Loss + Score(ply)
}
