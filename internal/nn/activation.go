package nn

import (
	"math"

	"github.com/plural-ml/plural/internal/tensor"
)

// Activation is an elementwise nonlinearity applied after a layer's affine
// transform.
//
// Derivative is always evaluated at the same pre-activation input z that
// Apply receives; the layer caches the result for the backward pass.
type Activation interface {
	// Apply computes the activation elementwise. Output shape equals the
	// input shape.
	Apply(z *tensor.Tensor[float64]) *tensor.Tensor[float64]

	// Derivative computes the activation's elementwise derivative at z.
	// Output shape equals the input shape.
	Derivative(z *tensor.Tensor[float64]) *tensor.Tensor[float64]
}

// ReLU is the Rectified Linear Unit: f(z) = max(0, z).
//
// The default hidden-layer activation.
type ReLU struct{}

// NewReLU creates a ReLU activation.
func NewReLU() ReLU { return ReLU{} }

// Apply computes max(0, z) elementwise.
func (ReLU) Apply(z *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	return z.Map(func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	})
}

// Derivative computes 1 for z > 0, else 0.
func (ReLU) Derivative(z *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	return z.Map(func(v float64) float64 {
		if v > 0 {
			return 1
		}
		return 0
	})
}

// Identity is the pass-through activation: f(z) = z.
//
// The default output-layer activation, appropriate for regression heads.
type Identity struct{}

// NewIdentity creates an Identity activation.
func NewIdentity() Identity { return Identity{} }

// Apply returns z unchanged.
func (Identity) Apply(z *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	return z.Clone()
}

// Derivative returns all ones.
func (Identity) Derivative(z *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	return tensor.Full[float64](z.Shape(), 1)
}

// Sigmoid squashes values to (0, 1): f(z) = 1 / (1 + exp(-z)).
type Sigmoid struct{}

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid() Sigmoid { return Sigmoid{} }

// Apply computes 1 / (1 + exp(-z)) elementwise.
func (Sigmoid) Apply(z *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	return z.Map(sigmoid)
}

// Derivative computes sigmoid(z) * (1 - sigmoid(z)).
func (Sigmoid) Derivative(z *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	return z.Map(func(v float64) float64 {
		s := sigmoid(v)
		return s * (1 - s)
	})
}

func sigmoid(v float64) float64 {
	return 1 / (1 + math.Exp(-v))
}

// Tanh squashes values to (-1, 1).
type Tanh struct{}

// NewTanh creates a Tanh activation.
func NewTanh() Tanh { return Tanh{} }

// Apply computes tanh(z) elementwise.
func (Tanh) Apply(z *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	return z.Map(math.Tanh)
}

// Derivative computes 1 - tanh²(z).
func (Tanh) Derivative(z *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	return z.Map(func(v float64) float64 {
		t := math.Tanh(v)
		return 1 - t*t
	})
}

// LeakyReLU lets a small gradient through for negative inputs:
// f(z) = z for z >= 0, else slope * z.
type LeakyReLU struct {
	Slope float64
}

// NewLeakyReLU creates a LeakyReLU with slope 0.1.
func NewLeakyReLU() LeakyReLU { return LeakyReLU{Slope: 0.1} }

// Apply computes z for z >= 0, else Slope * z.
func (l LeakyReLU) Apply(z *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	return z.Map(func(v float64) float64 {
		if v < 0 {
			return l.Slope * v
		}
		return v
	})
}

// Derivative computes 1 for z >= 0, else Slope.
func (l LeakyReLU) Derivative(z *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	return z.Map(func(v float64) float64 {
		if v < 0 {
			return l.Slope
		}
		return 1
	})
}
