// Package random provides cryptographic seed generation helpers.
//
// Seeds drawn here initialize the pseudo-random generators that roll dice,
// so every generator starts from 64 bits of crypto/rand entropy.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	return SeedFrom(crand.Reader)
}

// SeedFrom reads a seed from r.
func SeedFrom(r io.Reader) (int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// StreamSeeds returns n seeds for independent generators.
//
// A zero base draws every seed from crypto/rand. A non-zero base derives the
// seeds from base so a run can be repeated; consecutive streams are spread
// with a SplitMix64 step so no two workers share a seed.
func StreamSeeds(base int64, n int) ([]int64, error) {
	if n < 1 {
		return nil, fmt.Errorf("stream count must be positive, got %d", n)
	}

	seeds := make([]int64, n)
	if base == 0 {
		for i := range seeds {
			seed, err := NewSeed()
			if err != nil {
				return nil, err
			}
			seeds[i] = seed
		}
		return seeds, nil
	}

	state := uint64(base)
	for i := range seeds {
		state += 0x9e3779b97f4a7c15
		seeds[i] = int64(mix(state))
	}
	return seeds, nil
}

func mix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
