// Package substrate re-exports the shared scalar pool.
package substrate

import (
	"math/rand"

	"github.com/plural-ml/plural/internal/substrate"
)

// Substrate is a fixed-size pool of scalar values addressed by integer
// handle.
type Substrate = substrate.Substrate

// New creates a Substrate of the given size with values drawn uniformly
// from [lo, hi).
func New(size int, lo, hi float64, rng *rand.Rand) *Substrate {
	return substrate.New(size, lo, hi, rng)
}

// FromValues creates a Substrate over a copy of the given values.
func FromValues(values []float64) *Substrate {
	return substrate.FromValues(values)
}
