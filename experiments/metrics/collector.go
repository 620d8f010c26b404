package metrics

import (
	"checkers/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines      int
	Depth           int
	Pruning         bool
	Duration        time.Duration
	Nodes           int
	Leaves          int
	ChainExtensions int
	Cutoffs         int
	Score           int
}

type MoveMetric struct {
	Step      int
	Player    game.Player
	Move      game.Move
	StateHash game.StateHash
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player // NoPlayer for a draw
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Captured       [3]int // Indexed by player
}

type Collector interface {
	Start(goroutines, depth int, pruning bool)
	AddNode()
	AddLeaf()
	AddChainExtension()
	AddCutoff()
	Complete(score int) SearchMetric
}

type collector struct {
	goroutines      int
	depth           int
	pruning         bool
	startTime       time.Time
	nodes           atomic.Int64
	leaves          atomic.Int64
	chainExtensions atomic.Int64
	cutoffs         atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth int, pruning bool) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.pruning = pruning
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.chainExtensions.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddChainExtension() {
	m.chainExtensions.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete(score int) SearchMetric {
	return SearchMetric{
		Goroutines:      m.goroutines,
		Depth:           m.depth,
		Pruning:         m.pruning,
		Duration:        time.Since(m.startTime),
		Nodes:           int(m.nodes.Load()),
		Leaves:          int(m.leaves.Load()),
		ChainExtensions: int(m.chainExtensions.Load()),
		Cutoffs:         int(m.cutoffs.Load()),
		Score:           score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int, pruning bool) {}
func (m *dummyCollector) AddNode()                                  {}
func (m *dummyCollector) AddLeaf()                                  {}
func (m *dummyCollector) AddChainExtension()                        {}
func (m *dummyCollector) AddCutoff()                                {}
func (m *dummyCollector) Complete(score int) SearchMetric           { return SearchMetric{Score: score} }
