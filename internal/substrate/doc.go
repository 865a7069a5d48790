// Package substrate implements the shared pool of trainable scalar values.
//
// Every layer in a manifold addresses its weights and biases as integer
// handles into one Substrate, so a single pool slot may back many weight
// positions anywhere in the network (the weight-hashing trick). The pool is
// the single source of truth for parameter magnitudes; layers only ever hold
// indices plus gathered dense copies.
package substrate
