// Package random provides seed generation and seeded generator helpers.
//
// It uses crypto/rand to generate high-entropy seeds suitable for
// initializing pseudo-random number generators whose sequences must be
// reproducible once the seed is known.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewRand creates a seeded random number generator.
// If seed is 0, a fresh seed is drawn from NewSeed, falling back to the
// current time when crypto/rand is unavailable. The seed actually used is
// returned so callers can replay the sequence.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		fresh, err := NewSeed()
		if err != nil || fresh == 0 {
			fresh = time.Now().UnixNano()
		}
		seed = fresh
	}
	return rand.New(rand.NewSource(seed)), seed
}
