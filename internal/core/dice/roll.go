package dice

import (
	"fmt"
	"math/rand"
)

// Source is the randomness a roll draws from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a generator seeded with seed.
//
// Seeds are expected to come from random.NewSeed so that every generator
// starts from 64 bits of crypto/rand entropy. Given the same seed the
// generator yields the same sequence of faces.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Roll rolls a single die.
func Roll(rng Source) Face {
	return Face(rng.Intn(Sides) + 1)
}

// RollHand rolls n dice.
//
// n must be between 1 and MaxHand, otherwise ErrInvalidHandSize is returned.
//
// Example:
//
//	rng := NewSource(seed)
//	hand, err := RollHand(rng, 6)
func RollHand(rng Source, n int) (Hand, error) {
	if n < 1 || n > MaxHand {
		return nil, fmt.Errorf("roll %d dice: %w", n, ErrInvalidHandSize)
	}

	hand := make(Hand, n)
	for i := range hand {
		hand[i] = Roll(rng)
	}
	return hand, nil
}
