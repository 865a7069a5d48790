// Package nn re-exports Plural's activation and loss capabilities.
package nn

import "github.com/plural-ml/plural/internal/nn"

// Activation is an elementwise nonlinearity plus its derivative, both
// evaluated at the same pre-activation input.
type Activation = nn.Activation

// Loss is a scalar loss plus its gradient with respect to the prediction.
type Loss = nn.Loss

// Activations

// ReLU is max(0, z). The default hidden activation.
type ReLU = nn.ReLU

// Identity is the pass-through activation. The default output activation.
type Identity = nn.Identity

// Sigmoid squashes values to (0, 1).
type Sigmoid = nn.Sigmoid

// Tanh squashes values to (-1, 1).
type Tanh = nn.Tanh

// LeakyReLU lets a small gradient through for negative inputs.
type LeakyReLU = nn.LeakyReLU

// NewReLU creates a ReLU activation.
func NewReLU() ReLU { return nn.NewReLU() }

// NewIdentity creates an Identity activation.
func NewIdentity() Identity { return nn.NewIdentity() }

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid() Sigmoid { return nn.NewSigmoid() }

// NewTanh creates a Tanh activation.
func NewTanh() Tanh { return nn.NewTanh() }

// NewLeakyReLU creates a LeakyReLU with slope 0.1.
func NewLeakyReLU() LeakyReLU { return nn.NewLeakyReLU() }

// Losses

// MSE is mean squared error. The default loss.
type MSE = nn.MSE

// MAE is mean absolute error.
type MAE = nn.MAE

// NewMSE creates an MSE loss.
func NewMSE() MSE { return nn.NewMSE() }

// NewMAE creates an MAE loss.
func NewMAE() MAE { return nn.NewMAE() }
