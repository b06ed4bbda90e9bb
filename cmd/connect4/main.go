package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/connect4-ai/internal/config"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/iamasit07/connect4-ai/internal/service/game"
	"github.com/iamasit07/connect4-ai/internal/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	envErr := godotenv.Load()
	cfg := config.LoadConfig()

	fs := flag.NewFlagSet("connect4", flag.ContinueOnError)
	mode := fs.String("mode", cfg.GameMode, "game mode: pvai or pvp")
	first := fs.String("first", cfg.FirstTurn, "who moves first: player, ai or random")
	seed := fs.Int64("seed", cfg.AISeed, "seed for the AI fallback and random first turn (0 = clock)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *mode != string(game.ModePvAI) && *mode != string(game.ModePvP) {
		return errors.Errorf("unknown mode %q", *mode)
	}
	switch game.FirstTurn(*first) {
	case game.FirstPlayer, game.FirstAI, game.FirstRandom:
	default:
		return errors.Errorf("unknown first turn %q", *first)
	}

	logCloser, err := config.InitLogger(cfg, false)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	if envErr != nil {
		log.Debug().Msg("No .env file found")
	}

	opts := game.Options{
		Mode:      game.Mode(*mode),
		FirstTurn: game.FirstTurn(*first),
	}
	if *seed != 0 {
		opts.Selector = bot.NewSeededSelector(*seed)
		opts.Rand = rand.New(rand.NewSource(*seed))
	}

	controller := game.NewController(opts)
	log.Info().Str("mode", *mode).Str("first", *first).Msg("Starting terminal game")

	if err := ui.Run(controller); err != nil {
		return errors.Wrap(err, "terminal ui failed")
	}
	return nil
}
