package game

// direction is a diagonal step.
type direction struct {
	dc, dr int
}

// Diagonals per side, forward ones first. The first row is player 1, the second
// player 2.
var sideDirections = [2][4]direction{
	{{-1, 1}, {1, 1}, {-1, -1}, {1, -1}},
	{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}},
}

// directions returns the diagonals a piece may step and capture along.
// Men move and capture forward only; kings move and capture in all four directions.
func directions(player Player, rank Rank) []direction {
	idx := 0
	if player == Player2 {
		idx = 1
	}
	dirs := sideDirections[idx][:]
	if rank == Man {
		return dirs[:2]
	}
	return dirs
}

// SimpleMoves returns the empty cells the piece on c can step to, ignoring the
// mandatory capture rule. It returns nil for an empty cell.
func (gs *GameState) SimpleMoves(c Cell) []Cell {
	sq := gs.Board.Occupant(c)
	if sq.Empty() {
		return nil
	}
	var cells []Cell
	for _, d := range directions(sq.Owner, sq.Rank) {
		to := c.add(d.dc, d.dr)
		if to.Valid() && gs.Board.Occupant(to).Empty() {
			cells = append(cells, to)
		}
	}
	return cells
}

// CaptureMoves returns the jumps available to the piece on c: over an adjacent
// diagonal opponent piece onto the empty cell right behind it.
func (gs *GameState) CaptureMoves(c Cell) []Move {
	sq := gs.Board.Occupant(c)
	if sq.Empty() {
		return nil
	}
	var moves []Move
	for _, d := range directions(sq.Owner, sq.Rank) {
		over := c.add(d.dc, d.dr)
		to := c.add(2*d.dc, 2*d.dr)
		if !to.Valid() {
			continue
		}
		if gs.Board.Occupant(over).Owner != sq.Owner.Opponent() || !gs.Board.Occupant(to).Empty() {
			continue
		}
		moves = append(moves, Move{
			From:      c,
			To:        to,
			IsCapture: true,
			Captured:  over,
			Promotes:  promotes(sq, to),
		})
	}
	return moves
}

func (gs *GameState) stepMoves(c Cell) []Move {
	sq := gs.Board.Occupant(c)
	cells := gs.SimpleMoves(c)
	moves := make([]Move, 0, len(cells))
	for _, to := range cells {
		moves = append(moves, Move{From: c, To: to, Promotes: promotes(sq, to)})
	}
	return moves
}

func promotes(sq Square, to Cell) bool {
	return sq.Rank == Man && to.Row == sq.Owner.backRank()
}

// HasForcedMoves reports whether any piece of player can capture.
func (gs *GameState) HasForcedMoves(player Player) bool {
	for _, c := range gs.Board.cells(player) {
		if len(gs.CaptureMoves(c)) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves returns the moves of the active player. During a capture chain only the
// chain piece's captures are legal. Otherwise, when any capture exists, only captures
// are legal for the whole side. Moves are ordered by piece (row-major) and direction.
func (gs *GameState) LegalMoves() []Move {
	if !gs.Turn.Valid() {
		return nil
	}
	if gs.InChain {
		return gs.CaptureMoves(gs.Chain)
	}
	return gs.MovesFor(gs.Turn)
}

// MovesFor returns the moves player would have if it were their turn and no chain were
// in progress, applying the mandatory capture rule.
func (gs *GameState) MovesFor(player Player) []Move {
	cells := gs.Board.cells(player)

	var captures []Move
	for _, c := range cells {
		captures = append(captures, gs.CaptureMoves(c)...)
	}
	if len(captures) > 0 {
		return captures
	}

	var moves []Move
	for _, c := range cells {
		moves = append(moves, gs.stepMoves(c)...)
	}
	return moves
}

// LegalDestinations returns the cells the piece on c may legally move to this turn.
func (gs *GameState) LegalDestinations(c Cell) []Cell {
	var cells []Cell
	for _, m := range gs.LegalMoves() {
		if m.From == c {
			cells = append(cells, m.To)
		}
	}
	return cells
}

func (gs *GameState) isLegal(m Move) bool {
	for _, legal := range gs.LegalMoves() {
		if legal == m {
			return true
		}
	}
	return false
}
