package config

import (
	"checkers/game"
	"checkers/searcher"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// AgentConfig configures one side of a game.
type AgentConfig struct {
	Kind       string `yaml:"kind"` // "minimax" or "random"
	Depth      int    `yaml:"depth"`
	Goroutines int    `yaml:"goroutines"`
	Pruning    bool   `yaml:"pruning"`
	Evaluation string `yaml:"evaluation"` // "material" or "advancement"
	Seed       uint64 `yaml:"seed"`
}

// UnmarshalYAML fills keys missing from a player entry with the minimax defaults, so
// that an entry naming only a depth keeps pruning on.
func (a *AgentConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain AgentConfig
	p := plain(defaultMinimax())
	if err := node.Decode(&p); err != nil {
		return err
	}
	*a = AgentConfig(p)
	return nil
}

func defaultMinimax() AgentConfig {
	return AgentConfig{
		Kind:       "minimax",
		Depth:      searcher.DefaultDepth,
		Goroutines: searcher.DefaultGoroutines,
		Pruning:    true,
		Evaluation: "material",
	}
}

type Config struct {
	Mode         string        `yaml:"mode"` // "play", "experiment" or "throughput"
	LogLevel     string        `yaml:"log_level"`
	Games        int           `yaml:"games"`
	MaxTurns     int           `yaml:"max_turns"`
	StartRows    int           `yaml:"start_rows"`
	WinThreshold int           `yaml:"win_threshold"`
	RandomStart  bool          `yaml:"random_start"`
	Seed         uint64        `yaml:"seed"`
	CheckBoard   bool          `yaml:"check_board"`
	OutputDir    string        `yaml:"output_dir"`
	Players      []AgentConfig `yaml:"players"`
	Experiment   []AgentConfig `yaml:"experiment"` // Challengers matched against players[0]
}

// Default returns the classic setup: a depth-limited AI against a
// random mover, first to 15 captures wins.
func Default() *Config {
	return &Config{
		Mode:         "play",
		LogLevel:     "info",
		Games:        1,
		MaxTurns:     500,
		StartRows:    game.StandardRows,
		WinThreshold: 15,
		RandomStart:  true,
		Seed:         1,
		OutputDir:    "experiments",
		Players: []AgentConfig{
			defaultMinimax(),
			{Kind: "random", Seed: 1},
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Mode {
	case "play", "experiment", "throughput":
	default:
		return fmt.Errorf("unknown mode %q: %w", c.Mode, ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, ErrInvalidConfig)
	}
	if c.Games < 1 {
		return fmt.Errorf("games must be positive, got %d: %w", c.Games, ErrInvalidConfig)
	}
	if c.MaxTurns < 1 {
		return fmt.Errorf("max_turns must be positive, got %d: %w", c.MaxTurns, ErrInvalidConfig)
	}
	if c.StartRows < 1 || c.StartRows > game.StandardRows {
		return fmt.Errorf("start_rows must be between 1 and %d, got %d: %w", game.StandardRows, c.StartRows, ErrInvalidConfig)
	}
	if c.WinThreshold < 0 {
		return fmt.Errorf("win_threshold must not be negative, got %d: %w", c.WinThreshold, ErrInvalidConfig)
	}
	if len(c.Players) != 2 {
		return fmt.Errorf("need exactly two players, got %d: %w", len(c.Players), ErrInvalidConfig)
	}
	for i, a := range append(append([]AgentConfig{}, c.Players...), c.Experiment...) {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("agent %d: %w", i+1, err)
		}
	}
	if c.Mode == "experiment" && len(c.Experiment) == 0 {
		return fmt.Errorf("experiment mode needs at least one challenger: %w", ErrInvalidConfig)
	}
	return nil
}

func (a AgentConfig) Validate() error {
	switch a.Kind {
	case "random":
		return nil
	case "minimax":
	default:
		return fmt.Errorf("unknown agent kind %q: %w", a.Kind, ErrInvalidConfig)
	}
	if a.Depth < 0 {
		return fmt.Errorf("depth must not be negative, got %d: %w", a.Depth, ErrInvalidConfig)
	}
	if a.Goroutines < 0 {
		return fmt.Errorf("goroutines must not be negative, got %d: %w", a.Goroutines, ErrInvalidConfig)
	}
	switch a.Evaluation {
	case "", "material", "advancement":
	default:
		return fmt.Errorf("unknown evaluation %q: %w", a.Evaluation, ErrInvalidConfig)
	}
	return nil
}

// Level returns the zerolog level named by LogLevel, info if unparsable.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
