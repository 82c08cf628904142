package sim

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jswartzendruber/farkle-stats/internal/core/dice"
	"github.com/jswartzendruber/farkle-stats/internal/core/score"
	"github.com/jswartzendruber/farkle-stats/internal/random"
)

// Default survey size.
const DefaultSurveyRolls = 10_000_000

// SurveyConfig controls a survey of single rolls.
type SurveyConfig struct {
	Rolls int
	Dice  int
	Seed  int64
}

// Distribution counts how often each special pattern and each farkle came up.
type Distribution struct {
	Dice    int
	Rolls   int64
	Farkles int64
	Counts  map[score.Special]int64
}

// Percent returns the share of rolls tagged with special, as a percentage.
func (d Distribution) Percent(special score.Special) float64 {
	return percent(d.Counts[special], d.Rolls)
}

// FarklePercent returns the share of rolls that scored nothing, as a percentage.
func (d Distribution) FarklePercent() float64 {
	return percent(d.Farkles, d.Rolls)
}

func percent(n, of int64) float64 {
	if of == 0 {
		return 0
	}
	return float64(n) / float64(of) * 100
}

// Survey rolls cfg.Dice dice cfg.Rolls times and tallies the results.
func Survey(ctx context.Context, cfg SurveyConfig) (Distribution, error) {
	if cfg.Rolls <= 0 || cfg.Dice < 1 || cfg.Dice > dice.MaxHand {
		return Distribution{}, ErrInvalidSurvey
	}

	seed := cfg.Seed
	if seed == 0 {
		var err error
		seed, err = random.NewSeed()
		if err != nil {
			return Distribution{}, fmt.Errorf("seed survey: %w", err)
		}
	}

	_, span := otel.Tracer(instrumentationName).Start(ctx, "sim.Survey", trace.WithAttributes(
		attribute.Int("farkle.rolls", cfg.Rolls),
		attribute.Int("farkle.dice", cfg.Dice),
	))
	defer span.End()

	rng := dice.NewSource(seed)
	dist := Distribution{
		Dice:   cfg.Dice,
		Counts: make(map[score.Special]int64, len(score.Specials)),
	}
	for n := 0; n < cfg.Rolls; n++ {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Distribution{}, err
			}
		}
		result := rollAndScore(rng, cfg.Dice)
		dist.Rolls++
		dist.Counts[result.Special]++
		if result.IsFarkle() {
			dist.Farkles++
		}
	}
	return dist, nil
}
