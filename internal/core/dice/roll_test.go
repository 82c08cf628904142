package dice

import (
	"errors"
	"testing"
)

func TestRollHand(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr error
	}{
		{name: "single die", n: 1},
		{name: "full hand", n: 6},
		{name: "no dice", n: 0, wantErr: ErrInvalidHandSize},
		{name: "too many dice", n: 7, wantErr: ErrInvalidHandSize},
		{name: "negative", n: -1, wantErr: ErrInvalidHandSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand, err := RollHand(NewSource(42), tt.n)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("RollHand(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if len(hand) != tt.n {
				t.Fatalf("RollHand(%d) got %d dice", tt.n, len(hand))
			}
			for i, face := range hand {
				if !face.Valid() {
					t.Errorf("hand[%d] = %d, out of range [1, 6]", i, face)
				}
			}
		})
	}
}

func TestRollHand_Determinism(t *testing.T) {
	first, err := RollHand(NewSource(12345), 6)
	if err != nil {
		t.Fatalf("RollHand() error = %v", err)
	}
	second, err := RollHand(NewSource(12345), 6)
	if err != nil {
		t.Fatalf("RollHand() error = %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("hand[%d] differs: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestRoll_CoversAllFaces(t *testing.T) {
	rng := NewSource(7)
	var seen [Sides + 1]int
	const draws = 60000
	for i := 0; i < draws; i++ {
		face := Roll(rng)
		if !face.Valid() {
			t.Fatalf("Roll() = %d, out of range", face)
		}
		seen[face]++
	}
	// Each face should land near draws/6; allow a wide margin.
	for face := 1; face <= Sides; face++ {
		if seen[face] < 9000 || seen[face] > 11000 {
			t.Errorf("face %d drawn %d times, want about %d", face, seen[face], draws/Sides)
		}
	}
}

type fixedSource []int

func (s *fixedSource) Intn(int) int {
	v := (*s)[0]
	*s = (*s)[1:]
	return v
}

func TestRoll_MapsSourceToFace(t *testing.T) {
	src := fixedSource{0, 5, 2}
	want := []Face{1, 6, 3}
	for i, w := range want {
		if got := Roll(&src); got != w {
			t.Fatalf("roll %d = %d, want %d", i, got, w)
		}
	}
}

func TestNewHand(t *testing.T) {
	tests := []struct {
		name    string
		values  []int
		wantErr error
	}{
		{name: "valid", values: []int{1, 2, 3, 4, 5, 6}},
		{name: "empty", values: nil, wantErr: ErrInvalidHandSize},
		{name: "seven dice", values: []int{1, 1, 1, 1, 1, 1, 1}, wantErr: ErrInvalidHandSize},
		{name: "zero face", values: []int{0, 1}, wantErr: ErrInvalidFace},
		{name: "seven face", values: []int{7}, wantErr: ErrInvalidFace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand, err := NewHand(tt.values...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewHand(%v) error = %v, wantErr %v", tt.values, err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if err := hand.Validate(); err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
			}
		})
	}
}

func TestMustHandPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid face")
		}
	}()
	MustHand(9)
}

func TestHandValidate(t *testing.T) {
	if err := (Hand{}).Validate(); !errors.Is(err, ErrInvalidHandSize) {
		t.Fatalf("empty hand error = %v, want ErrInvalidHandSize", err)
	}
	if err := (Hand{1, 8}).Validate(); !errors.Is(err, ErrInvalidFace) {
		t.Fatalf("bad face error = %v, want ErrInvalidFace", err)
	}
}
