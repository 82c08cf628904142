package score

import "github.com/jswartzendruber/farkle-stats/internal/core/dice"

// Special identifies a whole-hand scoring pattern.
type Special int

// The kind patterns are tagged only when a single face fills every die in
// the hand, so {2,2,2} is SpecialThreeKind but {2,2,2,1,5,5} scores its
// triple through the additive rules and is tagged SpecialNone.
const (
	// SpecialNone marks a hand scored by the additive rules, or not at all.
	SpecialNone Special = iota
	// SpecialTwoTriplet is two different faces three times each.
	SpecialTwoTriplet
	// SpecialThreePair is three different faces twice each.
	SpecialThreePair
	// SpecialStraight is one of every face, 1 through 6.
	SpecialStraight
	// SpecialThreeKind is a three-die hand showing one face.
	SpecialThreeKind
	// SpecialFourKind is a four-die hand showing one face.
	SpecialFourKind
	// SpecialFiveKind is a five-die hand showing one face.
	SpecialFiveKind
	// SpecialSixKind is a six-die hand showing one face.
	SpecialSixKind
)

// Specials lists every pattern in evaluation priority order, None last.
var Specials = []Special{
	SpecialTwoTriplet,
	SpecialThreePair,
	SpecialStraight,
	SpecialThreeKind,
	SpecialFourKind,
	SpecialFiveKind,
	SpecialSixKind,
	SpecialNone,
}

func (s Special) String() string {
	switch s {
	case SpecialNone:
		return "None"
	case SpecialTwoTriplet:
		return "Two triplets"
	case SpecialThreePair:
		return "Three pairs"
	case SpecialStraight:
		return "Straight"
	case SpecialThreeKind:
		return "Three of a kind"
	case SpecialFourKind:
		return "Four of a kind"
	case SpecialFiveKind:
		return "Five of a kind"
	case SpecialSixKind:
		return "Six of a kind"
	default:
		return "Unknown"
	}
}

// Point values for whole-hand patterns and single scoring dice.
const (
	PointsTwoTriplet = 2500
	PointsThreePair  = 1500
	PointsStraight   = 1500
	PointsSingleOne  = 100
	PointsSingleFive = 50
)

// Frequencies counts dice per face; index 0 holds face 1.
type Frequencies [dice.Sides]int

// Of returns the number of dice showing face.
func (f Frequencies) Of(face dice.Face) int {
	return f[face-1]
}

// Len returns the number of dice counted.
func (f Frequencies) Len() int {
	n := 0
	for _, c := range f {
		n += c
	}
	return n
}

// Zeroes returns how many face slots have a count of zero.
func (f Frequencies) Zeroes() int {
	return f.countEqual(0)
}

func (f Frequencies) countEqual(n int) int {
	matches := 0
	for _, c := range f {
		if c == n {
			matches++
		}
	}
	return matches
}

// Result is the outcome of scoring one hand.
//
// Reroll is the number of face slots left empty after scoring. It counts
// faces, not dice: a face that never appeared in the hand counts as empty
// too. The simulation driver sizes the next roll from it.
type Result struct {
	Score   int
	Special Special
	Reroll  int
}

// IsFarkle reports whether the hand scored nothing.
func (r Result) IsFarkle() bool {
	return r.Score == 0
}
