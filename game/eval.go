package game

const (
	ManWeight  = 100
	KingWeight = 300

	// Bonus per row a man has advanced toward promotion.
	AdvanceWeight = 2
)

// EvaluateMaterial scores the weighted piece difference from player's perspective.
func EvaluateMaterial(gs *GameState, player Player) int {
	return material(gs, player) - material(gs, player.Opponent())
}

// EvaluateAdvancement adds a small bonus for men close to the back rank on top of
// the material difference.
func EvaluateAdvancement(gs *GameState, player Player) int {
	score := EvaluateMaterial(gs, player)
	score += advancement(gs, player) - advancement(gs, player.Opponent())
	return score
}

func material(gs *GameState, player Player) int {
	if !player.Valid() {
		return 0
	}
	men, kings := gs.Pieces[player].Count()
	return men*ManWeight + kings*KingWeight
}

func advancement(gs *GameState, player Player) int {
	if !player.Valid() {
		return 0
	}
	total := 0
	for cell, rank := range gs.Pieces[player].ranks {
		if rank != Man {
			continue
		}
		rows := cell.Row
		if player == Player2 {
			rows = Size - 1 - cell.Row
		}
		total += rows * AdvanceWeight
	}
	return total
}
