// Package nn implements the numeric capabilities consumed by the Plural
// training engine:
//
//   - Activation: elementwise nonlinearity plus its derivative, both
//     evaluated at the same pre-activation input
//   - Loss: scalar loss plus its gradient with respect to the prediction
//
// Capabilities are a small closed set of stateless variants dispatched
// through a two-operation interface. They hold no per-layer state, so one
// instance can be shared by every layer in a manifold.
package nn
