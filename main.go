package main

import (
	"checkers/config"
	"checkers/experiments"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	path := flag.String("config", "", "Path to a YAML config file")
	mode := flag.String("mode", "", "Run mode: play, experiment or throughput")
	games := flag.Int("games", 0, "Number of games per matchup")
	depth := flag.Int("depth", -1, "Search depth of the first player, in plies")
	checkBoard := flag.Bool("check-board", false, "Check board consistency after every move")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *depth >= 0 {
		cfg.Players[0].Depth = *depth
	}
	if *checkBoard {
		cfg.CheckBoard = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	switch cfg.Mode {
	case "experiment":
		summary, err := experiments.RunDepthExperiment(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		log.Info().Msgf("baseline results: %+v", summary)
	case "throughput":
		experiments.RunThroughputExperiment(cfg.Players[0].Depth, experiments.ThroughputGoroutines)
	default:
		summary, err := experiments.RunMatch(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("match failed")
		}
		log.Info().Msgf("player1 won %d, player2 won %d, drawn %d of %d games",
			summary.Wins, summary.Losses, summary.Draws, summary.Games)
	}
}
