package sim

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/jswartzendruber/farkle-stats/internal/core/dice"
	"github.com/jswartzendruber/farkle-stats/internal/random"
)

const instrumentationName = "github.com/jswartzendruber/farkle-stats/internal/sim"

// cancelCheckInterval is how many games a worker plays between context checks.
const cancelCheckInterval = 1024

// Run plays cfg.Games games and returns the summed totals.
//
// Games are split as evenly as possible across cfg.Workers goroutines. Each
// worker owns its generator and its Totals; the results are summed once all
// workers finish, so the outcome does not depend on scheduling. With a
// non-zero cfg.Seed and the same worker count, two runs return identical
// totals.
//
// Run stops early and returns ctx.Err() when ctx is cancelled.
func Run(ctx context.Context, cfg Config) (Totals, error) {
	if err := cfg.validate(); err != nil {
		return Totals{}, err
	}
	strategy, _ := ParseStrategy(string(cfg.Strategy))

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > cfg.Games {
		workers = cfg.Games
	}

	seeds, err := random.StreamSeeds(cfg.Seed, workers)
	if err != nil {
		return Totals{}, fmt.Errorf("seed workers: %w", err)
	}

	tracer := otel.Tracer(instrumentationName)
	ctx, span := tracer.Start(ctx, "sim.Run", trace.WithAttributes(
		attribute.Int("farkle.games", cfg.Games),
		attribute.Int("farkle.target", cfg.Target),
		attribute.Int("farkle.workers", workers),
		attribute.String("farkle.strategy", string(strategy)),
	))
	defer span.End()

	results := make([]Totals, workers)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		games := cfg.Games / workers
		if i < cfg.Games%workers {
			games++
		}
		i := i
		g.Go(func() error {
			totals, err := playGames(gctx, dice.NewSource(seeds[i]), games, cfg.Target, strategy)
			if err != nil {
				return err
			}
			results[i] = totals
			if cfg.Logger != nil {
				cfg.Logger.Printf("worker %d: %d games, %d rolls, average %.3f", i, totals.Games, totals.Rolls, totals.Average())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Totals{}, err
	}

	var totals Totals
	for _, r := range results {
		totals = totals.Add(r)
	}

	span.SetAttributes(
		attribute.Int64("farkle.rolls", totals.Rolls),
		attribute.Int64("farkle.turns", totals.Turns),
		attribute.Float64("farkle.average", totals.Average()),
	)
	recordTotals(ctx, totals)
	return totals, nil
}

func playGames(ctx context.Context, rng dice.Source, games, target int, strategy Strategy) (Totals, error) {
	var totals Totals
	for n := 0; n < games; n++ {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Totals{}, err
			}
		}
		totals = totals.Add(PlayGame(rng, target, strategy))
	}
	return totals, nil
}

func recordTotals(ctx context.Context, totals Totals) {
	meter := otel.Meter(instrumentationName)
	counters := []struct {
		name  string
		desc  string
		value int64
	}{
		{"farkle.sim.games", "Games played to the target score.", totals.Games},
		{"farkle.sim.turns", "Turns played across all games.", totals.Turns},
		{"farkle.sim.rolls", "Hands passed to the scoring engine.", totals.Rolls},
		{"farkle.sim.score", "Points scored across all games.", totals.Score},
	}
	for _, c := range counters {
		counter, err := meter.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			otel.Handle(err)
			continue
		}
		counter.Add(ctx, c.value)
	}
}
