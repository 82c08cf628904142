package dice

import (
	"errors"
	"fmt"
)

// Sides is the number of faces on a Farkle die.
const Sides = 6

// MaxHand is the largest number of dice rolled at once.
const MaxHand = 6

// ErrInvalidFace indicates a die value outside 1-6.
var ErrInvalidFace = errors.New("die face must be between 1 and 6")

// ErrInvalidHandSize indicates a hand with fewer than one or more than six dice.
var ErrInvalidHandSize = errors.New("hand must hold between 1 and 6 dice")

// Face is the value shown by a single die.
type Face int

// Valid reports whether f is a face of a six-sided die.
func (f Face) Valid() bool {
	return f >= 1 && f <= Sides
}

// Hand is the set of dice produced by one roll. Order carries no meaning.
type Hand []Face

// NewHand builds a hand from raw values, validating each face and the hand size.
func NewHand(values ...int) (Hand, error) {
	if len(values) < 1 || len(values) > MaxHand {
		return nil, fmt.Errorf("new hand of %d dice: %w", len(values), ErrInvalidHandSize)
	}
	hand := make(Hand, len(values))
	for i, v := range values {
		face := Face(v)
		if !face.Valid() {
			return nil, fmt.Errorf("new hand die %d = %d: %w", i, v, ErrInvalidFace)
		}
		hand[i] = face
	}
	return hand, nil
}

// MustHand is like NewHand but panics on invalid input.
func MustHand(values ...int) Hand {
	hand, err := NewHand(values...)
	if err != nil {
		panic(err)
	}
	return hand
}

// Validate checks the hand size and every face.
func (h Hand) Validate() error {
	if len(h) < 1 || len(h) > MaxHand {
		return fmt.Errorf("hand of %d dice: %w", len(h), ErrInvalidHandSize)
	}
	for i, face := range h {
		if !face.Valid() {
			return fmt.Errorf("hand die %d = %d: %w", i, face, ErrInvalidFace)
		}
	}
	return nil
}
