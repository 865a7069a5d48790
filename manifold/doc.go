// Package manifold re-exports the Plural training engine.
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/plural-ml/plural/manifold"
//	    "github.com/plural-ml/plural/substrate"
//	)
//
//	rng := rand.New(rand.NewSource(42))
//	pool := substrate.New(10000, -0.1, 0.1, rng)
//
//	m := manifold.New(pool, 2, 1, []int{16}).
//	    SetLearningRate(0.01).
//	    Until(5, 1e-4)
//	m.Weave().Gather()
//	m.Train(inputs, targets)
package manifold
