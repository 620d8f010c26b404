package engine

import (
	"checkers/agent"
	"checkers/experiments/metrics"
	"checkers/game"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(e *Engine)

var _ Runner = (*Engine)(nil)

// Engine runs a game between two agents on a single in-process state.
type Engine struct {
	State  *game.GameState
	Agents [2]agent.Agent // Agents[0] plays player 1

	maxTurns     int
	winThreshold int
	starting     game.Player
	startRows    int
	validate     bool
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithWinThreshold ends the game as soon as a player has captured count pieces.
// Zero disables the threshold.
func WithWinThreshold(count int) Option {
	return func(e *Engine) {
		if count >= 0 {
			e.winThreshold = count
		}
	}
}

func WithStartingPlayer(player game.Player) Option {
	return func(e *Engine) {
		if player.Valid() {
			e.starting = player
		}
	}
}

// WithRandomStart picks the starting player at random from seed.
func WithRandomStart(seed uint64) Option {
	return func(e *Engine) {
		rng := rand.New(rand.NewSource(seed))
		e.starting = game.Player(rng.Intn(2) + 1)
	}
}

// WithStartRows sets how many rows each side fills at the start.
func WithStartRows(rows int) Option {
	return func(e *Engine) {
		if rows >= 1 && rows <= game.StandardRows {
			e.startRows = rows
		}
	}
}

// WithValidation checks board consistency after every move and panics on a desync.
func WithValidation() Option {
	return func(e *Engine) {
		e.validate = true
	}
}

func LocalEngine(agents []agent.Agent, options ...Option) *Engine {
	if len(agents) != 2 {
		panic(fmt.Sprintf("need exactly two agents, got %d", len(agents)))
	}

	e := &Engine{
		Agents:    [2]agent.Agent{agents[0], agents[1]},
		maxTurns:  MaxTurns,
		starting:  game.Player1,
		startRows: game.StandardRows,
	}
	for _, option := range options {
		option(e)
	}

	e.State = game.NewGameStateWithRows(e.startRows)
	e.State.Turn = e.starting
	return e
}

// Run executes the entire game loop until the game is over.
func (e *Engine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.starting,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %d is starting", e.State.Turn)

	winner, reason := e.outcome()
	step := 0
	for reason == "" {
		if e.State.Plies >= e.maxTurns {
			reason = ReasonMaxTurns
			break
		}

		player := e.State.Turn
		hash := e.State.Hash()
		move, metric, ok := e.Agents[player-1].FindMove(e.State.Copy())
		if !ok {
			winner, reason = player.Opponent(), ReasonNoMoves
			break
		}

		result, err := e.play(move)
		if err != nil {
			log.Error().Err(err).Msgf("player %d forfeits", player)
			winner, reason = player.Opponent(), ReasonIllegalMove
			break
		}

		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			StateHash:    hash,
			SearchMetric: metric,
		})
		log.Debug().Msgf("player %d played %s (%s)", player, move, result)

		if result == game.TurnEnds {
			log.Info().Msgf("score player1=%d player2=%d, player %d's turn",
				e.State.CapturedCount(game.Player1), e.State.CapturedCount(game.Player2), e.State.Turn)
		}
		winner, reason = e.outcome()
	}

	if winner != game.NoPlayer {
		log.Info().Msgf("player %d won after %d turns: %s", winner, e.State.Plies, reason)
	} else {
		log.Info().Msgf("stopped after %d turns without a winner", e.State.Plies)
	}

	gameMetric.Winner = winner
	gameMetric.Reason = reason
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step
	gameMetric.Captured = [3]int{0, e.State.CapturedCount(game.Player1), e.State.CapturedCount(game.Player2)}
	return winner, gameMetric, moveMetrics
}

// IsGameOver returns the winner once the game is over, including a win by reaching the
// capture threshold.
func (e *Engine) IsGameOver() (game.Player, bool) {
	winner, reason := e.outcome()
	return winner, reason != ""
}

func (e *Engine) outcome() (game.Player, string) {
	winner, over := e.State.WinnerAt(e.winThreshold)
	if !over {
		return game.NoPlayer, ""
	}
	if e.winThreshold > 0 && e.State.CapturedCount(winner) >= e.winThreshold {
		return winner, ReasonThreshold
	}
	if e.State.Remaining(winner.Opponent()) == 0 {
		return winner, ReasonNoPieces
	}
	return winner, ReasonNoMoves
}

func (e *Engine) play(move game.Move) (game.Result, error) {
	if _, over := e.IsGameOver(); over {
		return game.TurnEnds, fmt.Errorf("game is over: %w", game.ErrIllegalMove)
	}
	result, err := e.State.ApplyMove(move)
	if err != nil {
		return result, err
	}
	if e.validate {
		if err := e.State.Validate(); err != nil {
			panic(fmt.Sprintf("after %s: %v", move, err))
		}
	}
	return result, nil
}
