package game

import (
	"fmt"
	"strings"
)

// Cell is a board coordinate, column first.
type Cell struct {
	Col int
	Row int
}

// Valid reports whether the cell lies on the board.
func (c Cell) Valid() bool {
	return c.Col >= 0 && c.Col < Size && c.Row >= 0 && c.Row < Size
}

// Dark reports whether the cell is a playable (dark) square.
func (c Cell) Dark() bool {
	return (c.Col+c.Row)%2 == 1
}

func (c Cell) add(dc, dr int) Cell {
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// String renders the cell as a column letter followed by a 1-based row, e.g. (1,2) is "b3".
func (c Cell) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
	}
	return fmt.Sprintf("%c%d", 'a'+c.Col, c.Row+1)
}

// Square is the content of a single cell. A square with no owner is empty.
type Square struct {
	Owner Player
	Rank  Rank
}

func (s Square) Empty() bool {
	return s.Owner == NoPlayer
}

// Board is the 10x10 occupancy grid, indexed [col][row].
// It is a projection of both players' piece sets and is never mutated on its own.
type Board [Size][Size]Square

// Occupant returns the square at cell. Cells off the board read as empty.
func (b *Board) Occupant(c Cell) Square {
	if !c.Valid() {
		return Square{}
	}
	return b[c.Col][c.Row]
}

func (b *Board) set(c Cell, s Square) {
	b[c.Col][c.Row] = s
}

func (b *Board) clear(c Cell) {
	b[c.Col][c.Row] = Square{}
}

// cells returns the cells occupied by player in row-major order.
// Move generation iterates in this order so results are deterministic.
func (b *Board) cells(player Player) []Cell {
	var cells []Cell
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[col][row].Owner == player {
				cells = append(cells, Cell{Col: col, Row: row})
			}
		}
	}
	return cells
}

// project rebuilds a board from both piece sets.
func project(pieces [3]PieceSet) Board {
	var b Board
	for _, player := range []Player{Player1, Player2} {
		for cell, rank := range pieces[player].ranks {
			b.set(cell, Square{Owner: player, Rank: rank})
		}
	}
	return b
}

// String draws the board with row 0 on top. Player 1 men are "x" and kings "X",
// player 2 men are "o" and kings "O".
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   a b c d e f g h i j\n")
	for row := 0; row < Size; row++ {
		fmt.Fprintf(&sb, "%2d", row+1)
		for col := 0; col < Size; col++ {
			sb.WriteByte(' ')
			cell := Cell{Col: col, Row: row}
			sb.WriteByte(squareGlyph(cell, b.Occupant(cell)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func squareGlyph(c Cell, s Square) byte {
	switch {
	case s.Owner == Player1 && s.Rank == King:
		return 'X'
	case s.Owner == Player1:
		return 'x'
	case s.Owner == Player2 && s.Rank == King:
		return 'O'
	case s.Owner == Player2:
		return 'o'
	case c.Dark():
		return '.'
	default:
		return ' '
	}
}
