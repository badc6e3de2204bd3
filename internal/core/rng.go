package core

import (
	"math/rand/v2"

	"pnmgrid/pkg/grid"
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

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// FillBits sets each bit of b independently with probability density.
func FillBits(r *rand.Rand, b *grid.Bits, density float64) {
	b.MapRowMajor(func(col, row int, b *grid.Bits, _ int) {
		bit := 0
		if r.Float64() < density {
			bit = 1
		}
		b.Put(col, row, bit)
	})
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
