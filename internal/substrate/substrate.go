package substrate

import (
	"fmt"
	"math/rand"

	"github.com/plural-ml/plural/internal/tensor"
)

// Substrate is a fixed-size pool of scalar values addressed by integer
// handle.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	pool := substrate.New(10000, -1.0, 1.0, rng)
//	v := pool.Get(17)
type Substrate struct {
	data []float64
}

// New creates a Substrate of the given size with values drawn uniformly
// from [lo, hi).
func New(size int, lo, hi float64, rng *rand.Rand) *Substrate {
	if size <= 0 {
		panic(fmt.Sprintf("substrate size must be positive, got %d", size))
	}
	data := make([]float64, size)
	for i := range data {
		data[i] = lo + rng.Float64()*(hi-lo)
	}
	return &Substrate{data: data}
}

// FromValues creates a Substrate over a copy of the given values.
func FromValues(values []float64) *Substrate {
	if len(values) == 0 {
		panic("substrate requires at least one value")
	}
	data := make([]float64, len(values))
	copy(data, values)
	return &Substrate{data: data}
}

// Size returns the pool capacity. Every index handed to Get or Highspeed
// must lie in [0, Size()).
func (s *Substrate) Size() int {
	return len(s.data)
}

// Get returns the value at the given pool slot. Pure lookup, no side
// effect. An out-of-range index is a contract violation and panics.
func (s *Substrate) Get(i int) float64 {
	if i < 0 || i >= len(s.data) {
		panic(fmt.Sprintf("substrate index %d out of range [0, %d)", i, len(s.data)))
	}
	return s.data[i]
}

// Highspeed applies a batch of (gradient, index) contributions to the pool.
//
// Every grad[k] is a contribution of grad[k] * learningRate to slot
// index[k]. Contributions aimed at the same slot anywhere in the call are
// combined before the slot's value changes; applying them one at a time
// would make the result depend on iteration order once the engine and the
// pool disagree about aliasing.
//
// The engine submits accumulators holding the negative running gradient
// sum, so adding the combined contribution performs gradient descent.
//
// The contract allows Highspeed to mutate both grad and index in place to
// reflect slot reassignment; this implementation performs no reassignment,
// but callers must not rely on that and should re-gather afterwards.
func (s *Substrate) Highspeed(grad *tensor.Tensor[float64], index *tensor.Tensor[int], learningRate float64) {
	gd := grad.Data()
	id := index.Data()
	if len(gd) != len(id) {
		panic(fmt.Sprintf("highspeed: grad has %d entries, index has %d", len(gd), len(id)))
	}

	combined := make(map[int]float64, len(id))
	for k, slot := range id {
		if slot < 0 || slot >= len(s.data) {
			panic(fmt.Sprintf("substrate index %d out of range [0, %d)", slot, len(s.data)))
		}
		combined[slot] += gd[k]
	}
	for slot, sum := range combined {
		s.data[slot] += learningRate * sum
	}
}
