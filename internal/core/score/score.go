// Package score evaluates a Farkle hand.
//
// Evaluate applies the whole-hand patterns first, in this order:
//   - two triplets (2500)
//   - three pairs (1500)
//   - a 1-6 straight (1500)
//
// The first match takes the whole hand and leaves nothing to reroll. Without
// a match the hand is scored additively: every face showing three or more
// dice scores as X-of-a-kind and is used up, then each remaining 1 scores
// 100 and each remaining 5 scores 50.
package score

import (
	"fmt"

	"github.com/jswartzendruber/farkle-stats/internal/core/dice"
)

// Count builds the frequency table for a hand.
func Count(hand dice.Hand) Frequencies {
	var freq Frequencies
	for _, face := range hand {
		freq[face-1]++
	}
	return freq
}

// Evaluate scores a hand of one to six dice.
//
// Evaluate panics when the hand is empty, holds more than six dice or
// contains a face outside 1-6.
func Evaluate(hand dice.Hand) Result {
	if err := hand.Validate(); err != nil {
		panic(fmt.Sprintf("score: %v", err))
	}
	return evaluate(Count(hand))
}

func evaluate(freq Frequencies) Result {
	if freq.countEqual(3) == 2 {
		return Result{Score: PointsTwoTriplet, Special: SpecialTwoTriplet}
	}
	if freq.countEqual(2) == 3 {
		return Result{Score: PointsThreePair, Special: SpecialThreePair}
	}
	if freq.countEqual(1) == dice.Sides {
		return Result{Score: PointsStraight, Special: SpecialStraight}
	}

	size := freq.Len()
	special := SpecialNone
	points := 0

	for i, n := range freq {
		if n < 3 {
			continue
		}
		points += XOfAKind(n, dice.Face(i+1))
		if n == size {
			special = kindSpecial(n)
		}
		// These dice are used up.
		freq[i] = 0
	}

	points += PointsSingleOne * freq.Of(1)
	freq[0] = 0
	points += PointsSingleFive * freq.Of(5)
	freq[4] = 0

	return Result{
		Score:   points,
		Special: special,
		Reroll:  freq.Zeroes(),
	}
}

// XOfAKind returns the points for count dice showing face, count in 3-6.
func XOfAKind(count int, face dice.Face) int {
	switch count {
	case 3:
		return threeKind(face)
	case 4:
		return 1000
	case 5:
		return 2000
	case 6:
		return 3000
	default:
		panic(fmt.Sprintf("score: %d of a kind is not a scoring set", count))
	}
}

func threeKind(face dice.Face) int {
	switch face {
	case 1:
		return 300
	case 2, 3, 4, 5, 6:
		return int(face) * 100
	default:
		panic(fmt.Sprintf("score: invalid face %d", face))
	}
}

func kindSpecial(count int) Special {
	switch count {
	case 3:
		return SpecialThreeKind
	case 4:
		return SpecialFourKind
	case 5:
		return SpecialFiveKind
	case 6:
		return SpecialSixKind
	default:
		panic(fmt.Sprintf("score: %d of a kind is not a scoring set", count))
	}
}
