package sim

import (
	"fmt"

	"github.com/jswartzendruber/farkle-stats/internal/core/check"
	"github.com/jswartzendruber/farkle-stats/internal/core/dice"
	"github.com/jswartzendruber/farkle-stats/internal/core/score"
)

// PlayTurn plays one turn with the reroll strategy and returns the points
// earned and the number of hands scored.
//
// The turn opens with six dice and keeps rolling while the last hand left
// all six face slots empty. A roll that scores nothing adds no points but
// does not end the turn or forfeit what was already earned; the turn ends
// as soon as a hand leaves a face slot filled.
func PlayTurn(rng dice.Source) (points int, rolls int) {
	reroll := dice.MaxHand
	for reroll >= dice.MaxHand {
		result := rollAndScore(rng, reroll)
		rolls++
		reroll = result.Reroll
		if result.IsFarkle() {
			continue
		}
		points += result.Score
	}
	return points, rolls
}

// PlaySingleRoll plays one turn as a single roll of six dice.
func PlaySingleRoll(rng dice.Source) (points int, rolls int) {
	return rollAndScore(rng, dice.MaxHand).Score, 1
}

// PlayGame plays turns until the game score reaches target.
func PlayGame(rng dice.Source, target int, strategy Strategy) Totals {
	turn := PlayTurn
	if strategy == StrategySingleRoll {
		turn = PlaySingleRoll
	}

	var totals Totals
	current := 0
	for !check.Reached(current, target) {
		points, rolls := turn(rng)
		current += points
		totals.Turns++
		totals.Rolls += int64(rolls)
	}
	result := check.Check(current, target)
	totals.Games = 1
	totals.Score = int64(current)
	totals.Overshoot = int64(result.Overshoot)
	return totals
}

func rollAndScore(rng dice.Source, n int) score.Result {
	hand, err := dice.RollHand(rng, n)
	if err != nil {
		// Callers validate n before rolling.
		panic(fmt.Sprintf("sim: %v", err))
	}
	return score.Evaluate(hand)
}
