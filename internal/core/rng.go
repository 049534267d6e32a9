package core

import (
	"math/rand/v2"
	"strings"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// RandomGrid draws a rows x cols block of text where each cell is hit with
// probability density and miss otherwise.
func RandomGrid(rows, cols int, density float64, seed int64, hit, miss rune) string {
	rng := NewRNG(seed)
	var b strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if rng.Chance(density) {
				b.WriteRune(hit)
			} else {
				b.WriteRune(miss)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
