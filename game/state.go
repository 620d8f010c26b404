package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

type StateHash uint64

// GameState is the dynamic state of a game: both piece sets, the board projected from
// them, whose turn it is and the in-progress capture chain, if any.
//
// A GameState is mutated only through ApplyMove and ApplyPlayerMove. Search works on
// copies obtained from Copy.
type GameState struct {
	Board    Board       // Projection of Pieces, kept in sync on every move
	Pieces   [3]PieceSet // Indexed by Player, index 0 unused
	Turn     Player      // The player to move
	Chain    Cell        // Piece that must keep capturing, valid only when InChain
	InChain  bool        // Whether a capture chain is in progress
	LastMove Move        // The last move applied
	Plies    int         // Number of completed turns
}

// StandardRows is the number of rows each side fills at the start of a game.
const StandardRows = 4

// NewGameState returns the standard starting position: 20 men per side on the dark
// squares of rows 0-3 (player 1) and rows 6-9 (player 2), player 1 to move.
func NewGameState() *GameState {
	return NewGameStateWithRows(StandardRows)
}

// NewGameStateWithRows fills rows of dark squares per side, e.g. rows 0-2 and 7-9 for
// 15 men each. It panics unless 1 <= rows <= StandardRows.
func NewGameStateWithRows(rows int) *GameState {
	if rows < 1 || rows > StandardRows {
		panic(fmt.Sprintf("starting rows must be between 1 and %d, got %d", StandardRows, rows))
	}
	gs := NewEmptyState(Player1)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			cell := Cell{Col: col, Row: row}
			if !cell.Dark() {
				continue
			}
			switch {
			case row < rows:
				gs.mustPlace(cell, Player1, Man)
			case row >= Size-rows:
				gs.mustPlace(cell, Player2, Man)
			}
		}
	}
	return gs
}

// NewEmptyState returns a state with no pieces and turn to move.
func NewEmptyState(turn Player) *GameState {
	return &GameState{
		Pieces: [3]PieceSet{{}, newPieceSet(), newPieceSet()},
		Turn:   turn,
	}
}

// Place puts a piece on the board. It is meant for setting up positions and fails on
// cells that are off the board, light, or already occupied.
func (gs *GameState) Place(c Cell, player Player, rank Rank) error {
	if !player.Valid() {
		return fmt.Errorf("cannot place piece for player %d: %w", player, ErrIllegalMove)
	}
	if !c.Valid() || !c.Dark() {
		return fmt.Errorf("cannot place piece on %s: %w", c, ErrInvalidCell)
	}
	if !gs.Board.Occupant(c).Empty() {
		return fmt.Errorf("cannot place piece on %s: %w", c, ErrOccupied)
	}
	gs.Pieces[player].put(c, rank)
	gs.Board.set(c, Square{Owner: player, Rank: rank})
	return nil
}

func (gs *GameState) mustPlace(c Cell, player Player, rank Rank) {
	if err := gs.Place(c, player, rank); err != nil {
		panic(err)
	}
}

// Copy returns a deep copy that shares nothing with gs.
func (gs *GameState) Copy() *GameState {
	return &GameState{
		Board:    gs.Board,
		Pieces:   [3]PieceSet{{}, gs.Pieces[Player1].copy(), gs.Pieces[Player2].copy()},
		Turn:     gs.Turn,
		Chain:    gs.Chain,
		InChain:  gs.InChain,
		LastMove: gs.LastMove,
		Plies:    gs.Plies,
	}
}

// Occupant returns the square at cell.
func (gs *GameState) Occupant(c Cell) Square {
	return gs.Board.Occupant(c)
}

// CapturedCount returns the number of opponent pieces player has removed.
func (gs *GameState) CapturedCount(player Player) int {
	if !player.Valid() {
		return 0
	}
	return gs.Pieces[player].Captured()
}

// Remaining returns the number of live pieces of player.
func (gs *GameState) Remaining(player Player) int {
	if !player.Valid() {
		return 0
	}
	return gs.Pieces[player].Len()
}

// ChainCell returns the cell of the piece that must continue capturing.
func (gs *GameState) ChainCell() (Cell, bool) {
	return gs.Chain, gs.InChain
}

// Winner returns the winning player, if the game is over. A player loses when they
// have no pieces left or no legal move on their turn. A state without a player to
// move is never over.
func (gs *GameState) Winner() (Player, bool) {
	if !gs.Turn.Valid() {
		return NoPlayer, false
	}
	for _, p := range []Player{Player1, Player2} {
		if gs.Pieces[p].Len() == 0 {
			return p.Opponent(), true
		}
	}
	if len(gs.LegalMoves()) == 0 {
		return gs.Turn.Opponent(), true
	}
	return NoPlayer, false
}

// WinnerAt is Winner with a capture target: a player who has captured threshold
// pieces wins as well. A threshold of 0 disables the target.
func (gs *GameState) WinnerAt(threshold int) (Player, bool) {
	if threshold > 0 {
		for _, p := range []Player{Player1, Player2} {
			if gs.Pieces[p].Captured() >= threshold {
				return p, true
			}
		}
	}
	return gs.Winner()
}

func (gs *GameState) Phase() Phase {
	if _, over := gs.Winner(); over {
		return GameOver
	}
	if gs.InChain {
		return CaptureChainInProgress
	}
	return AwaitingSelection
}

// ApplyMove plays m for the active player. Moves not in LegalMoves are rejected with
// ErrIllegalMove and leave the state unchanged.
//
// After a capture that can be followed by another capture from the landing cell the
// result is ChainContinues and the same player moves again with that piece. A move
// that crowns a man always ends the turn.
func (gs *GameState) ApplyMove(m Move) (Result, error) {
	if !gs.isLegal(m) {
		return TurnEnds, fmt.Errorf("player %d cannot play %s: %w", gs.Turn, m, ErrIllegalMove)
	}
	if err := gs.apply(m, gs.Turn); err != nil {
		return TurnEnds, err
	}

	gs.LastMove = m
	if m.IsCapture && !m.Promotes && len(gs.CaptureMoves(m.To)) > 0 {
		gs.Chain = m.To
		gs.InChain = true
		return ChainContinues, nil
	}

	gs.Chain = Cell{}
	gs.InChain = false
	gs.Turn = gs.Turn.Opponent()
	gs.Plies++
	return TurnEnds, nil
}

// ApplyPlayerMove plays the legal move of the active player going from one cell to
// another.
func (gs *GameState) ApplyPlayerMove(from, to Cell) (Result, error) {
	for _, m := range gs.LegalMoves() {
		if m.From == from && m.To == to {
			return gs.ApplyMove(m)
		}
	}
	return TurnEnds, fmt.Errorf("player %d cannot move %s to %s: %w", gs.Turn, from, to, ErrIllegalMove)
}

// apply moves the piece without legality checks beyond ownership and occupancy.
func (gs *GameState) apply(m Move, mover Player) error {
	own := &gs.Pieces[mover]
	rank, ok := own.Rank(m.From)
	if !ok {
		return fmt.Errorf("player %d has no piece on %s: %w", mover, m.From, ErrIllegalMove)
	}
	if !gs.Board.Occupant(m.To).Empty() {
		return fmt.Errorf("destination %s is occupied: %w", m.To, ErrIllegalMove)
	}
	opp := &gs.Pieces[mover.Opponent()]
	if m.IsCapture && !opp.Has(m.Captured) {
		return fmt.Errorf("no opponent piece to capture on %s: %w", m.Captured, ErrIllegalMove)
	}

	if m.Promotes || m.To.Row == mover.backRank() {
		rank = King
	}
	own.remove(m.From)
	own.put(m.To, rank)
	gs.Board.clear(m.From)
	gs.Board.set(m.To, Square{Owner: mover, Rank: rank})

	if m.IsCapture {
		opp.remove(m.Captured)
		gs.Board.clear(m.Captured)
		own.captured++
	}
	return nil
}

// Validate checks that the board matches the piece sets and that every piece stands
// on a dark square. A failure means a programming error.
func (gs *GameState) Validate() error {
	for cell := range gs.Pieces[Player1].ranks {
		if gs.Pieces[Player2].Has(cell) {
			return fmt.Errorf("cell %s claimed by both players: %w", cell, ErrBoardDesync)
		}
	}
	for _, p := range []Player{Player1, Player2} {
		for cell := range gs.Pieces[p].ranks {
			if !cell.Valid() || !cell.Dark() {
				return fmt.Errorf("player %d piece on %s: %w", p, cell, ErrBoardDesync)
			}
		}
	}
	if project(gs.Pieces) != gs.Board {
		return fmt.Errorf("board differs from projection: %w", ErrBoardDesync)
	}
	if gs.InChain && gs.Board.Occupant(gs.Chain).Owner != gs.Turn {
		return fmt.Errorf("chain piece %s not owned by player %d: %w", gs.Chain, gs.Turn, ErrBoardDesync)
	}
	return nil
}

// Hash returns an FNV-1a hash of the occupancy, turn and chain marker.
func (gs *GameState) Hash() StateHash {
	h := fnv.New64a()
	var buf [Size * Size]byte
	for col := 0; col < Size; col++ {
		for row := 0; row < Size; row++ {
			s := gs.Board[col][row]
			buf[col*Size+row] = byte(s.Owner)<<1 | byte(s.Rank)
		}
	}
	h.Write(buf[:])

	var meta [4]byte
	meta[0] = byte(gs.Turn)
	if gs.InChain {
		meta[1] = 1
		meta[2] = byte(gs.Chain.Col)
		meta[3] = byte(gs.Chain.Row)
	}
	h.Write(meta[:])

	var plies [8]byte
	binary.BigEndian.PutUint64(plies[:], uint64(gs.Plies))
	h.Write(plies[:])
	return StateHash(h.Sum64())
}

func (gs *GameState) String() string {
	return gs.Board.String()
}
