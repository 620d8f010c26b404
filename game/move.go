package game

import "fmt"

// Move is a single step or a single capture jump. A chained capture is played as
// several moves by the same piece, one jump each.
type Move struct {
	From      Cell
	To        Cell
	IsCapture bool
	Captured  Cell // Only meaningful when IsCapture is set
	Promotes  bool
}

func (m Move) String() string {
	s := fmt.Sprintf("%s-%s", m.From, m.To)
	if m.IsCapture {
		s = fmt.Sprintf("%sx%s", m.From, m.To)
	}
	if m.Promotes {
		s += "=K"
	}
	return s
}
