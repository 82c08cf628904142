package sim

import (
	"github.com/jswartzendruber/farkle-stats/internal/core/dice"
	"github.com/jswartzendruber/farkle-stats/internal/core/score"
)

// Expectation holds exact per-roll figures for a fixed number of dice,
// computed by scoring every ordered hand once.
type Expectation struct {
	Dice   int
	Hands  int
	Score  float64
	Farkle float64
	// Specials maps each pattern to its probability in [0, 1].
	Specials map[score.Special]float64
}

// Exact enumerates all 6^n ordered hands of n dice.
func Exact(n int) (Expectation, error) {
	if n < 1 || n > dice.MaxHand {
		return Expectation{}, ErrInvalidSurvey
	}

	hand := make(dice.Hand, n)
	for i := range hand {
		hand[i] = 1
	}

	var (
		hands   int
		points  int64
		farkles int
		counts  = make(map[score.Special]int, len(score.Specials))
	)
	for {
		result := score.Evaluate(hand)
		hands++
		points += int64(result.Score)
		counts[result.Special]++
		if result.IsFarkle() {
			farkles++
		}
		if !next(hand) {
			break
		}
	}

	exp := Expectation{
		Dice:     n,
		Hands:    hands,
		Score:    float64(points) / float64(hands),
		Farkle:   float64(farkles) / float64(hands),
		Specials: make(map[score.Special]float64, len(counts)),
	}
	for special, c := range counts {
		exp.Specials[special] = float64(c) / float64(hands)
	}
	return exp, nil
}

// next advances hand like an odometer and reports false after the last hand.
func next(hand dice.Hand) bool {
	for i := range hand {
		if hand[i] < dice.Sides {
			hand[i]++
			return true
		}
		hand[i] = 1
	}
	return false
}
