package engine

import (
	"checkers/agent"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedAgent always answers with the same move.
type fixedAgent struct {
	move game.Move
	ok   bool
}

func (a fixedAgent) FindMove(*game.GameState) (game.Move, metrics.SearchMetric, bool) {
	return a.move, metrics.SearchMetric{}, a.ok
}

func minimaxAgent(depth int) agent.Agent {
	return agent.NewMinimaxAgent(searcher.NewMinimax(depth))
}

func place(t *testing.T, gs *game.GameState, col, row int, player game.Player) {
	t.Helper()
	require.NoError(t, gs.Place(game.Cell{Col: col, Row: row}, player, game.Man))
}

func TestLocalEngine(t *testing.T) {
	t.Run("requires two agents", func(t *testing.T) {
		require.Panics(t, func() { LocalEngine([]agent.Agent{agent.NewRandomAgent(1)}) })
	})

	t.Run("options shape the starting position", func(t *testing.T) {
		e := LocalEngine([]agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)},
			WithStartRows(3), WithStartingPlayer(game.Player2))

		require.Equal(t, 15, e.State.Remaining(game.Player1))
		require.Equal(t, game.Player2, e.State.Turn)
	})

	t.Run("random start is reproducible", func(t *testing.T) {
		agents := []agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)}
		seen := map[game.Player]bool{}
		for seed := uint64(0); seed < 32; seed++ {
			a := LocalEngine(agents, WithRandomStart(seed))
			b := LocalEngine(agents, WithRandomStart(seed))
			require.Equal(t, a.State.Turn, b.State.Turn, "seed %d", seed)
			seen[a.State.Turn] = true
		}
		require.Len(t, seen, 2, "Both players should get to start")
	})
}

func TestRun(t *testing.T) {
	t.Run("stops at the turn limit without a winner", func(t *testing.T) {
		e := LocalEngine([]agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)}, WithMaxTurns(6))

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.NoPlayer, winner)
		require.Equal(t, ReasonMaxTurns, gameMetric.Reason)
		require.Equal(t, 6, e.State.Plies)
		require.Equal(t, gameMetric.TotalMoves, len(moveMetrics))
		require.GreaterOrEqual(t, len(moveMetrics), 6)
		require.Equal(t, game.Player1, moveMetrics[0].Player)
		require.Equal(t, 1, moveMetrics[0].Step)
	})

	t.Run("capturing the last piece wins", func(t *testing.T) {
		e := LocalEngine([]agent.Agent{minimaxAgent(2), minimaxAgent(2)})
		e.State = game.NewEmptyState(game.Player1)
		place(t, e.State, 2, 3, game.Player1)
		place(t, e.State, 3, 4, game.Player2)

		winner, gameMetric, _ := e.Run()

		require.Equal(t, game.Player1, winner)
		require.Equal(t, ReasonNoPieces, gameMetric.Reason)
		require.Equal(t, [3]int{0, 1, 0}, gameMetric.Captured)
	})

	t.Run("capture threshold ends the game", func(t *testing.T) {
		e := LocalEngine([]agent.Agent{minimaxAgent(1), minimaxAgent(1)}, WithWinThreshold(1))
		e.State = game.NewEmptyState(game.Player1)
		place(t, e.State, 2, 3, game.Player1)
		place(t, e.State, 3, 4, game.Player2)
		place(t, e.State, 9, 8, game.Player2)

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.Player1, winner)
		require.Equal(t, ReasonThreshold, gameMetric.Reason)
		require.Len(t, moveMetrics, 1)
		finished, over := e.IsGameOver()
		require.True(t, over)
		require.Equal(t, game.Player1, finished)
	})

	t.Run("agent without a move loses", func(t *testing.T) {
		e := LocalEngine([]agent.Agent{fixedAgent{ok: false}, agent.NewRandomAgent(1)})

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.Player2, winner)
		require.Equal(t, ReasonNoMoves, gameMetric.Reason)
		require.Empty(t, moveMetrics)
	})

	t.Run("illegal move forfeits", func(t *testing.T) {
		illegal := game.Move{From: game.Cell{Col: 1, Row: 2}, To: game.Cell{Col: 2, Row: 3}}
		e := LocalEngine([]agent.Agent{fixedAgent{move: illegal, ok: true}, agent.NewRandomAgent(1)})
		before := e.State.Hash()

		winner, gameMetric, _ := e.Run()

		require.Equal(t, game.Player2, winner)
		require.Equal(t, ReasonIllegalMove, gameMetric.Reason)
		require.Equal(t, before, e.State.Hash(), "Rejected move should not touch the state")
	})

	t.Run("full game with board checks", func(t *testing.T) {
		e := LocalEngine([]agent.Agent{minimaxAgent(2), agent.NewRandomAgent(3)}, WithValidation(), WithWinThreshold(0))

		winner, gameMetric, moveMetrics := e.Run()

		require.NotEmpty(t, gameMetric.Reason)
		require.Equal(t, winner, gameMetric.Winner)
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.Equal(t, e.State.CapturedCount(game.Player1), gameMetric.Captured[game.Player1])
		require.Equal(t, 20, e.State.Remaining(game.Player2)+gameMetric.Captured[game.Player1])
		require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))
		require.NoError(t, e.State.Validate())
	})
}
