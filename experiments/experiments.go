package experiments

import (
	"checkers/agent"
	"checkers/config"
	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Summary counts the outcomes of a set of games from agent1's point of view.
type Summary struct {
	Games  int
	Wins   int
	Losses int
	Draws  int
}

// RunMatch plays cfg.Games games between the two configured players and stores the
// records under cfg.OutputDir.
func RunMatch(cfg *config.Config) (Summary, error) {
	configs := []metrics.AgentConfig{
		toRecord(1, cfg.Players[0]),
		toRecord(2, cfg.Players[1]),
	}
	matchUps := [][]metrics.AgentConfig{{configs[0], configs[1]}}
	return runExperiment("match", cfg, configs, matchUps)
}

// RunDepthExperiment pairs the first configured player, as the baseline, against every
// challenger of cfg.Experiment.
func RunDepthExperiment(cfg *config.Config) (Summary, error) {
	baseline := toRecord(0, cfg.Players[0])
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for i, challenger := range cfg.Experiment {
		record := toRecord(i+1, challenger)
		configs = append(configs, record)
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, record})
	}
	return runExperiment("depth", cfg, configs, matchUps)
}

func runExperiment(name string, cfg *config.Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (Summary, error) {
	// Run a number of games for each matchup
	count := 0
	summary := Summary{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < cfg.Games; i++ {
			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, cfg.Games)

			// Vary the seed per game so random agents and random starts differ
			seed := cfg.Seed + uint64(count)
			winner, gameMetric, moveMetrics := runGame(cfg, config1, config2, seed)
			count++
			summary.add(winner)
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %d (%s)", mi+1, len(matchUps), i+1, winner, gameMetric.Reason)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment: %+v", name, summary)

	if cfg.OutputDir == "" {
		return summary, nil
	}
	if err := store(name, cfg.OutputDir, configs, gameRecords, moveRecords); err != nil {
		return summary, err
	}
	return summary, nil
}

func store(name, root string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(cfg *config.Config, config1, config2 metrics.AgentConfig, seed uint64) (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	agents := []agent.Agent{
		NewAgent(config1, seed),
		NewAgent(config2, seed+1),
	}

	options := []engine.Option{
		engine.WithMaxTurns(cfg.MaxTurns),
		engine.WithWinThreshold(cfg.WinThreshold),
		engine.WithStartRows(cfg.StartRows),
	}
	if cfg.RandomStart {
		options = append(options, engine.WithRandomStart(seed))
	}
	if cfg.CheckBoard {
		options = append(options, engine.WithValidation())
	}
	e := engine.LocalEngine(agents, options...)

	return e.Run()
}

// NewAgent builds the agent described by config. Random agents without a seed of
// their own use seed.
func NewAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	if config.Kind == "random" {
		if config.Seed != 0 {
			seed = config.Seed
		}
		return agent.NewRandomAgent(seed)
	}
	return agent.NewMinimaxAgent(createMinimax(config))
}

func createMinimax(config metrics.AgentConfig) *searcher.Minimax {
	options := []searcher.Option{
		searcher.WithPruning(config.Pruning),
		searcher.WithMetrics(),
	}

	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if evaluate := evaluation(config.Evaluation); evaluate != nil {
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}

	return searcher.NewMinimax(config.Depth, options...)
}

func evaluation(name string) game.Evaluate {
	switch name {
	case "material":
		return game.EvaluateMaterial
	case "advancement":
		return game.EvaluateAdvancement
	default:
		return nil
	}
}

func toRecord(id int, a config.AgentConfig) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:         id,
		Kind:       a.Kind,
		Depth:      a.Depth,
		Goroutines: a.Goroutines,
		Pruning:    a.Pruning,
		Evaluation: a.Evaluation,
		Seed:       a.Seed,
	}
}

func (s *Summary) add(winner game.Player) {
	s.Games++
	switch winner {
	case game.Player1:
		s.Wins++
	case game.Player2:
		s.Losses++
	default:
		s.Draws++
	}
}
