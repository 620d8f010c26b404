package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"fmt"
	"sync"
)

type Option func(m *Minimax)

var _ Searcher = (*Minimax)(nil)

// Minimax is a depth-bounded adversarial search over the rules engine. Depth counts
// plies: continuing a capture chain does not consume depth.
//
// Every search works on its own copy of the state, so a Minimax may be used from
// several goroutines at once.
type Minimax struct {
	depth      int
	goroutines int
	pruning    bool
	evaluate   game.Evaluate
	collect    bool
}

func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

// WithPruning toggles alpha-beta pruning. Pruning never changes the chosen move.
func WithPruning(pruning bool) Option {
	return func(m *Minimax) {
		m.pruning = pruning
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.collect = true
	}
}

// NewMinimax returns a search limited to depth plies. Depths of 0 and 1 both look at
// the positions after the current turn only.
func NewMinimax(depth int, options ...Option) *Minimax {
	if depth < 0 {
		panic(fmt.Sprintf("search depth must not be negative, got %d", depth))
	}
	m := &Minimax{ // Default values
		depth:      depth,
		goroutines: DefaultGoroutines,
		pruning:    true,
		evaluate:   game.EvaluateMaterial,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// SelectMove returns the best move for player, or false when player is not the one to
// move or has no legal move.
func (m *Minimax) SelectMove(state *game.GameState, player game.Player) (game.Move, Score, bool) {
	choice, _ := m.Search(state, player)
	if choice == nil {
		return game.Move{}, 0, false
	}
	return choice.Move, choice.Score, true
}

// SelectMove runs a sequential search of the given depth with default settings.
func SelectMove(state *game.GameState, player game.Player, depth int) (game.Move, Score, bool) {
	return NewMinimax(depth).SelectMove(state, player)
}

// Search returns the chosen move and search statistics. The choice is nil when player
// is not to move or has no legal move. Ties go to the move generated first.
func (m *Minimax) Search(state *game.GameState, player game.Player) (*Choice, metrics.SearchMetric) {
	collector := metrics.NewDummyCollector()
	if m.collect {
		collector = metrics.NewCollector()
	}
	collector.Start(m.goroutines, m.depth, m.pruning)

	if state == nil || state.Turn != player {
		return nil, collector.Complete(0)
	}
	root := state.Copy()
	moves := root.LegalMoves()
	if len(moves) == 0 {
		return nil, collector.Complete(0)
	}
	collector.AddNode()

	var scores []Score
	if m.goroutines > 1 && len(moves) > 1 {
		scores = m.scoreParallel(root, player, moves, collector)
	} else {
		scores = m.scoreSequential(root, player, moves, collector)
	}

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	choice := &Choice{Move: moves[best], Score: scores[best]}
	return choice, collector.Complete(int(choice.Score))
}

// scoreSequential scores root moves in order, raising alpha as it goes. A move that is
// not better than the best so far may get an upper bound instead of its exact value,
// which cannot change which move is picked.
func (m *Minimax) scoreSequential(root *game.GameState, player game.Player, moves []game.Move, collector metrics.Collector) []Score {
	scores := make([]Score, len(moves))
	alpha := -infinity
	for i, move := range moves {
		scores[i] = m.scoreMove(root, player, move, alpha, infinity, collector)
		if m.pruning && scores[i] > alpha {
			alpha = scores[i]
		}
	}
	return scores
}

// scoreParallel scores each root move with a full window. Every subtree is searched
// on its own copy of the state; root itself is only read.
func (m *Minimax) scoreParallel(root *game.GameState, player game.Player, moves []game.Move, collector metrics.Collector) []Score {
	scores := make([]Score, len(moves))
	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(m.goroutines, len(moves)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				scores[i] = m.scoreMove(root, player, moves[i], -infinity, infinity, collector)
			}
		}()
	}

	wg.Wait()
	return scores
}

func (m *Minimax) scoreMove(root *game.GameState, player game.Player, move game.Move, alpha, beta Score, collector metrics.Collector) Score {
	child := root.Copy()
	result, err := child.ApplyMove(move)
	if err != nil {
		panic(fmt.Sprintf("generated move %s rejected: %v", move, err))
	}
	remaining, ply := m.depth, 0
	if result == game.TurnEnds {
		remaining--
		ply++
	} else {
		collector.AddChainExtension()
	}
	return m.value(child, player, max(remaining, 0), ply, alpha, beta, collector)
}

// value is the minimax value of state for player with remaining plies to search. ply
// counts the turns completed since the root.
func (m *Minimax) value(state *game.GameState, player game.Player, remaining, ply int, alpha, beta Score, collector metrics.Collector) Score {
	collector.AddNode()

	moves := state.LegalMoves()
	if len(moves) == 0 { // The side to move has lost
		collector.AddLeaf()
		if state.Turn == player {
			return lossScore(ply)
		}
		return winScore(ply)
	}
	// Chains are always searched to the end of the turn
	if remaining == 0 && !state.InChain {
		collector.AddLeaf()
		return Score(m.evaluate(state, player))
	}

	maximizing := state.Turn == player
	best := infinity
	if maximizing {
		best = -infinity
	}
	for _, move := range moves {
		child := state.Copy()
		result, err := child.ApplyMove(move)
		if err != nil {
			panic(fmt.Sprintf("generated move %s rejected: %v", move, err))
		}
		next, nextPly := remaining, ply
		if result == game.TurnEnds {
			next--
			nextPly++
		} else {
			collector.AddChainExtension()
		}

		v := m.value(child, player, max(next, 0), nextPly, alpha, beta, collector)
		if maximizing {
			best = max(best, v)
			alpha = max(alpha, best)
		} else {
			best = min(best, v)
			beta = min(beta, best)
		}
		if m.pruning && alpha >= beta {
			collector.AddCutoff()
			break
		}
	}
	return best
}
