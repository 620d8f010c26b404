package gamemaster

import (
	"checkers/game"
	"checkers/searcher"
	"fmt"
	"sync"
)

// UpdateGetter returns the oldest move not yet consumed together with a copy of the
// state right after it. It returns false when there is nothing new.
type UpdateGetter func() (game.Move, *game.GameState, bool)

// Engine is the in-process surface a user interface drives: it highlights targets with
// LegalDestinations, commits selections with PlayFrom and lets the AI side move with
// PlayAI.
type Engine interface {
	Init() (*game.GameState, UpdateGetter)
	Play(game.Move) (game.Result, error)
	PlayFrom(from, to game.Cell) (game.Result, error)
	PlayAI(depth int) (game.Result, error)
	LegalDestinations(c game.Cell) []game.Cell
	SelectAIMove(depth int) (game.Move, bool)
	IsGameOver() (game.Player, bool)
	CapturedCount(player game.Player) int
}

type update struct {
	move  game.Move
	state *game.GameState
}

type localEngine struct {
	mu           sync.Mutex
	state        *game.GameState
	updates      []update
	winThreshold int
}

// NewLocalEngine returns an engine where a player also wins by capturing winThreshold
// pieces. Zero disables the threshold.
func NewLocalEngine(winThreshold int) *localEngine {
	return &localEngine{winThreshold: winThreshold, state: game.NewGameState()}
}

// Init resets the game to the starting position and drops pending updates.
func (e *localEngine) Init() (*game.GameState, UpdateGetter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = game.NewGameState()
	e.updates = nil

	// return a copy of the state
	return e.state.Copy(), func() (game.Move, *game.GameState, bool) {
		e.mu.Lock()
		defer e.mu.Unlock()

		if len(e.updates) == 0 {
			return game.Move{}, nil, false
		}
		u := e.updates[0]
		e.updates = e.updates[1:]
		return u.move, u.state, true
	}
}

func (e *localEngine) Play(move game.Move) (game.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.play(move)
}

func (e *localEngine) PlayFrom(from, to game.Cell) (game.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, m := range e.state.LegalMoves() {
		if m.From == from && m.To == to {
			return e.play(m)
		}
	}
	return game.TurnEnds, fmt.Errorf("player %d cannot move %s to %s: %w", e.state.Turn, from, to, game.ErrIllegalMove)
}

// PlayAI searches depth plies for the player to move and plays the chosen move.
func (e *localEngine) PlayAI(depth int) (game.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	move, _, ok := searcher.SelectMove(e.state, e.state.Turn, depth)
	if !ok {
		return game.TurnEnds, fmt.Errorf("player %d has no move: %w", e.state.Turn, game.ErrIllegalMove)
	}
	// The search result goes through the same legality check as any other move
	return e.play(move)
}

func (e *localEngine) LegalDestinations(c game.Cell) []game.Cell {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, over := e.state.WinnerAt(e.winThreshold); over {
		return nil
	}
	return e.state.LegalDestinations(c)
}

// SelectAIMove returns the move the search picks for the player to move without playing
// it, or false when that player has no legal move.
func (e *localEngine) SelectAIMove(depth int) (game.Move, bool) {
	e.mu.Lock()
	state := e.state.Copy()
	e.mu.Unlock()

	move, _, ok := searcher.SelectMove(state, state.Turn, depth)
	return move, ok
}

func (e *localEngine) IsGameOver() (game.Player, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.WinnerAt(e.winThreshold)
}

func (e *localEngine) CapturedCount(player game.Player) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.CapturedCount(player)
}

func (e *localEngine) play(move game.Move) (game.Result, error) {
	if _, over := e.state.WinnerAt(e.winThreshold); over {
		return game.TurnEnds, fmt.Errorf("game is over - no moves allowed: %w", game.ErrIllegalMove)
	}

	result, err := e.state.ApplyMove(move)
	if err != nil {
		return result, err
	}
	e.updates = append(e.updates, update{move: move, state: e.state.Copy()})
	return result, nil
}
