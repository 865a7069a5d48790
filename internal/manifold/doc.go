// Package manifold implements the Plural training engine: layered
// feed-forward networks whose weight and bias matrices are index lookups
// into a shared pool of scalar parameters.
//
// A Manifold is built in three steps:
//
//	m := manifold.New(pool, dIn, dOut, []int{16, 16})
//	m.Weave()  // instantiate the layer chain, draw random pool indices
//	m.Gather() // materialize dense weights from the current pool contents
//
// then trained:
//
//	m.SetLearningRate(0.01).Until(5, 1e-4).Train(inputs, targets)
//
// Each backward pass scatters accumulated gradients into the pool through
// the Substrate contract, which may reassign which slot an index refers
// to; layers re-gather after every update so their dense matrices always
// mirror the pool.
package manifold
