package manifold

import "github.com/plural-ml/plural/internal/tensor"

// Substrate is the pool contract the engine consumes. The production
// implementation lives in internal/substrate; tests substitute stubs.
type Substrate interface {
	// Size returns the pool capacity. Every index entry in every layer
	// lies in [0, Size()).
	Size() int

	// Get returns the value at a pool slot. Pure lookup.
	Get(i int) float64

	// Highspeed applies every (grad[k], index[k]) pair as a contribution
	// of grad[k] * learningRate to pool slot index[k], combining
	// contributions that land on the same slot before applying them. It
	// may mutate both grad and index in place to reflect slot
	// reassignment; the engine treats both as changed afterwards and
	// re-gathers from the pool.
	Highspeed(grad *tensor.Tensor[float64], index *tensor.Tensor[int], learningRate float64)
}
