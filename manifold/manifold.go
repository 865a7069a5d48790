package manifold

import (
	"math/rand"

	"github.com/plural-ml/plural/internal/manifold"
	"github.com/plural-ml/plural/internal/nn"
)

// Manifold is an ordered chain of layers over one shared pool.
type Manifold = manifold.Manifold

// Layer is one affine transform plus activation with pool-aliased
// weights.
type Layer = manifold.Layer

// Substrate is the pool contract the engine consumes.
type Substrate = manifold.Substrate

// GradientRetention governs accumulator resets after update steps.
type GradientRetention = manifold.GradientRetention

const (
	// RetainRoll leaves accumulators untouched between steps. The default.
	RetainRoll = manifold.RetainRoll

	// RetainZero resets accumulators after every update step.
	RetainZero = manifold.RetainZero
)

// TerminationFunc decides from the loss history whether to stop early.
type TerminationFunc = manifold.TerminationFunc

// Range is a half-open interval [Min, Max) sampled by Dynamic.
type Range = manifold.Range

// New creates a Manifold with a fixed hidden-layer width schedule.
func New(pool Substrate, dIn, dOut int, layers []int) *Manifold {
	return manifold.New(pool, dIn, dOut, layers)
}

// Dynamic creates a Manifold with a randomized topology sampled from the
// given breadth and depth ranges.
func Dynamic(pool Substrate, dIn, dOut int, breadth, depth Range) *Manifold {
	return manifold.Dynamic(pool, dIn, dOut, breadth, depth)
}

// Stalled builds the default early-termination predicate over a loss
// history.
func Stalled(patience int, minDelta float64) TerminationFunc {
	return manifold.Stalled(patience, minDelta)
}

// NewLayer creates a standalone layer with indices drawn uniformly from
// [0, poolSize).
func NewLayer(poolSize int, xShape, wShape []int, bShape int, activation nn.Activation, rng *rand.Rand) *Layer {
	return manifold.NewLayer(poolSize, xShape, wShape, bShape, activation, rng)
}
