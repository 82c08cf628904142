package sim

import (
	"errors"
	"fmt"
	"log"
)

// Defaults used when a Config leaves a field unset.
const (
	DefaultGames  = 1_000_000
	DefaultTarget = 10_000
)

// ErrInvalidGames indicates a run with no games to play.
var ErrInvalidGames = errors.New("games must be positive")

// ErrInvalidTarget indicates a non-positive game score threshold.
var ErrInvalidTarget = errors.New("target must be positive")

// ErrUnknownStrategy indicates a strategy name the driver does not implement.
var ErrUnknownStrategy = errors.New("unknown strategy")

// ErrInvalidSurvey indicates a survey with no rolls or a bad dice count.
var ErrInvalidSurvey = errors.New("survey needs positive rolls and 1-6 dice")

// Strategy selects how a turn is played.
type Strategy string

const (
	// StrategyReroll rolls six dice and keeps rolling while every die
	// scored, summing the points of each scoring roll.
	StrategyReroll Strategy = "reroll"
	// StrategySingleRoll plays each turn as one roll of six dice.
	StrategySingleRoll Strategy = "single"
)

// ParseStrategy maps a strategy name to a Strategy. Empty selects StrategyReroll.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case "", StrategyReroll:
		return StrategyReroll, nil
	case StrategySingleRoll:
		return StrategySingleRoll, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: reroll, single)", ErrUnknownStrategy, name)
	}
}

// Config controls a simulation run.
type Config struct {
	// Games is the number of games to play.
	Games int
	// Target is the cumulative score that ends a game.
	Target int
	// Workers splits the games across goroutines. Values below 2 run
	// every game on the calling goroutine.
	Workers int
	// Seed makes a run repeatable for a fixed worker count. Zero seeds
	// every worker from crypto/rand.
	Seed     int64
	Strategy Strategy
	// Logger receives per-worker progress. Nil disables logging.
	Logger *log.Logger
}

// DefaultConfig returns the reference run: a million games to 10,000 points.
func DefaultConfig() Config {
	return Config{
		Games:    DefaultGames,
		Target:   DefaultTarget,
		Workers:  1,
		Strategy: StrategyReroll,
	}
}

func (c Config) validate() error {
	if c.Games <= 0 {
		return ErrInvalidGames
	}
	if c.Target <= 0 {
		return ErrInvalidTarget
	}
	if _, err := ParseStrategy(string(c.Strategy)); err != nil {
		return err
	}
	return nil
}

// Totals accumulates the outcome of one or more games.
//
// Rolls counts every hand passed to the scoring engine, including rolls
// that scored nothing. Turns counts passes through the turn loop.
// Overshoot sums the points each game finished past its target.
type Totals struct {
	Games     int64
	Turns     int64
	Rolls     int64
	Score     int64
	Overshoot int64
}

// Add returns the sum of t and o.
func (t Totals) Add(o Totals) Totals {
	return Totals{
		Games:     t.Games + o.Games,
		Turns:     t.Turns + o.Turns,
		Rolls:     t.Rolls + o.Rolls,
		Score:     t.Score + o.Score,
		Overshoot: t.Overshoot + o.Overshoot,
	}
}

// Average returns the mean score per roll, or zero when nothing was rolled.
func (t Totals) Average() float64 {
	if t.Rolls == 0 {
		return 0
	}
	return float64(t.Score) / float64(t.Rolls)
}
