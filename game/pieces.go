package game

// PieceSet holds the live pieces of one player, keyed by cell, and the number of
// opponent pieces that player has captured.
type PieceSet struct {
	ranks    map[Cell]Rank
	captured int
}

func newPieceSet() PieceSet {
	return PieceSet{ranks: make(map[Cell]Rank)}
}

// Has reports whether the set owns a piece on cell.
func (ps PieceSet) Has(c Cell) bool {
	_, ok := ps.ranks[c]
	return ok
}

// Rank returns the rank of the piece on cell.
func (ps PieceSet) Rank(c Cell) (Rank, bool) {
	r, ok := ps.ranks[c]
	return r, ok
}

// Len returns the number of live pieces.
func (ps PieceSet) Len() int {
	return len(ps.ranks)
}

// Count returns the number of men and kings.
func (ps PieceSet) Count() (men, kings int) {
	for _, r := range ps.ranks {
		if r == King {
			kings++
		} else {
			men++
		}
	}
	return men, kings
}

// Captured returns the number of opponent pieces removed by this player.
func (ps PieceSet) Captured() int {
	return ps.captured
}

func (ps PieceSet) copy() PieceSet {
	ranks := make(map[Cell]Rank, len(ps.ranks))
	for c, r := range ps.ranks {
		ranks[c] = r
	}
	return PieceSet{ranks: ranks, captured: ps.captured}
}

func (ps *PieceSet) put(c Cell, r Rank) {
	ps.ranks[c] = r
}

func (ps *PieceSet) remove(c Cell) {
	delete(ps.ranks, c)
}
