package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns the defaults", func(t *testing.T) {
		cfg, err := Load("")

		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
		require.NoError(t, cfg.Validate(), "Defaults should be valid")
	})

	t.Run("file values override the defaults", func(t *testing.T) {
		path := writeConfig(t, `
mode: experiment
log_level: debug
games: 3
start_rows: 3
win_threshold: 0
players:
  - kind: minimax
    depth: 2
    goroutines: 4
    pruning: true
    evaluation: advancement
  - kind: random
    seed: 9
experiment:
  - kind: minimax
    depth: 1
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "experiment", cfg.Mode)
		require.Equal(t, 3, cfg.Games)
		require.Equal(t, 3, cfg.StartRows)
		require.Equal(t, 0, cfg.WinThreshold)
		require.Equal(t, 500, cfg.MaxTurns, "Unset keys keep their default")
		require.Equal(t, AgentConfig{Kind: "minimax", Depth: 2, Goroutines: 4, Pruning: true, Evaluation: "advancement"}, cfg.Players[0])
		require.Equal(t, uint64(9), cfg.Players[1].Seed)
		require.Len(t, cfg.Experiment, 1)
		require.Equal(t, zerolog.DebugLevel, cfg.Level())
	})

	t.Run("partial player entries keep the search defaults", func(t *testing.T) {
		path := writeConfig(t, `
players:
  - kind: minimax
    depth: 6
  - kind: minimax
    pruning: false
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		require.True(t, cfg.Players[0].Pruning, "Pruning should stay on unless disabled")
		require.Equal(t, 6, cfg.Players[0].Depth)
		require.Equal(t, 1, cfg.Players[0].Goroutines)
		require.Equal(t, "material", cfg.Players[0].Evaluation)
		require.False(t, cfg.Players[1].Pruning, "Explicit false should be kept")
		require.Equal(t, 4, cfg.Players[1].Depth)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "games: [1, 2"))
		require.Error(t, err)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		_, err := Load(writeConfig(t, "mode: tournament\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	tests := map[string]func(c *Config){
		"zero games":             func(c *Config) { c.Games = 0 },
		"zero max turns":         func(c *Config) { c.MaxTurns = 0 },
		"too many start rows":    func(c *Config) { c.StartRows = 5 },
		"negative threshold":     func(c *Config) { c.WinThreshold = -1 },
		"unknown log level":      func(c *Config) { c.LogLevel = "loud" },
		"single player":          func(c *Config) { c.Players = c.Players[:1] },
		"unknown agent kind":     func(c *Config) { c.Players[1].Kind = "greedy" },
		"negative depth":         func(c *Config) { c.Players[0].Depth = -1 },
		"negative goroutines":    func(c *Config) { c.Players[0].Goroutines = -2 },
		"unknown evaluation":     func(c *Config) { c.Players[0].Evaluation = "mobility" },
		"experiment without any": func(c *Config) { c.Mode = "experiment" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)

			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLevel(t *testing.T) {
	cfg := Default()
	require.Equal(t, zerolog.InfoLevel, cfg.Level())

	cfg.LogLevel = "WARN"
	require.Equal(t, zerolog.WarnLevel, cfg.Level())

	cfg.LogLevel = "nonsense"
	require.Equal(t, zerolog.InfoLevel, cfg.Level())
}
