// Package farkle implements the farkle command: it runs the simulation and
// prints the average score per scored roll.
package farkle

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jswartzendruber/farkle-stats/internal/core/score"
	platformcmd "github.com/jswartzendruber/farkle-stats/internal/platform/cmd"
	"github.com/jswartzendruber/farkle-stats/internal/sim"
)

// Config holds farkle command configuration. Every field can be set from a
// FARKLE_-prefixed environment variable and overridden by its flag.
type Config struct {
	Games       int    `env:"GAMES" envDefault:"1000000"`
	Target      int    `env:"TARGET" envDefault:"10000"`
	Workers     int    `env:"WORKERS" envDefault:"1"`
	Seed        int64  `env:"SEED"`
	Strategy    string `env:"STRATEGY" envDefault:"reroll"`
	Survey      bool   `env:"SURVEY"`
	SurveyDice  int    `env:"SURVEY_DICE" envDefault:"6"`
	SurveyRolls int    `env:"SURVEY_ROLLS" envDefault:"10000000"`
	Verbose     bool   `env:"VERBOSE"`
}

// ParseConfig registers the command flags on fs and fills a Config from
// the environment and then args.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.IntVar(&cfg.Games, "games", sim.DefaultGames, "number of games to simulate")
	fs.IntVar(&cfg.Target, "target", sim.DefaultTarget, "score that ends a game")
	fs.IntVar(&cfg.Workers, "workers", 1, "goroutines sharing the games")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed for reproducibility (0 = random)")
	fs.StringVar(&cfg.Strategy, "strategy", string(sim.StrategyReroll), "turn strategy (reroll, single)")
	fs.BoolVar(&cfg.Survey, "survey", false, "report how often each scoring pattern is rolled")
	fs.IntVar(&cfg.SurveyDice, "survey-dice", 6, "dice per surveyed roll (1-6)")
	fs.IntVar(&cfg.SurveyRolls, "survey-rolls", sim.DefaultSurveyRolls, "number of surveyed rolls")
	fs.BoolVar(&cfg.Verbose, "v", false, "log worker progress to stderr")
	if err := platformcmd.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the farkle command, writing results to out and progress to errOut.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	if errOut == nil {
		errOut = io.Discard
	}

	if cfg.Survey {
		return runSurvey(ctx, cfg, out)
	}

	strategy, err := sim.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}
	simCfg := sim.Config{
		Games:    cfg.Games,
		Target:   cfg.Target,
		Workers:  cfg.Workers,
		Seed:     cfg.Seed,
		Strategy: strategy,
	}
	if cfg.Verbose {
		simCfg.Logger = log.New(errOut, platformcmd.ServiceFarkle+": ", log.LstdFlags)
	}

	totals, err := sim.Run(ctx, simCfg)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	if cfg.Verbose {
		simCfg.Logger.Printf("%d games, %d turns, %d rolls, %d points (%d past the target)",
			totals.Games, totals.Turns, totals.Rolls, totals.Score, totals.Overshoot)
	}

	_, err = fmt.Fprintf(out, "Average score: %.3f\n", totals.Average())
	return err
}

func runSurvey(ctx context.Context, cfg Config, out io.Writer) error {
	dist, err := sim.Survey(ctx, sim.SurveyConfig{
		Rolls: cfg.SurveyRolls,
		Dice:  cfg.SurveyDice,
		Seed:  cfg.Seed,
	})
	if err != nil {
		return fmt.Errorf("survey: %w", err)
	}
	exact, err := sim.Exact(cfg.SurveyDice)
	if err != nil {
		return fmt.Errorf("exact odds: %w", err)
	}
	return writeSurvey(out, dist, exact)
}

func writeSurvey(out io.Writer, dist sim.Distribution, exact sim.Expectation) error {
	p := message.NewPrinter(language.English)
	if _, err := p.Fprintf(out, "%d rolls of %d dice\n", dist.Rolls, dist.Dice); err != nil {
		return err
	}

	line := func(name string, got, want float64) error {
		_, err := fmt.Fprintf(out, "%-16s: %7.3f%% (exact %7.3f%%)\n", name, got, want*100)
		return err
	}
	if err := line("Farkle", dist.FarklePercent(), exact.Farkle); err != nil {
		return err
	}
	for _, special := range score.Specials {
		if special == score.SpecialNone {
			continue
		}
		if err := line(special.String(), dist.Percent(special), exact.Specials[special]); err != nil {
			return err
		}
	}
	return nil
}
