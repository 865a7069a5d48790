package tensor

import (
	"math/rand"

	"github.com/plural-ml/plural/internal/tensor"
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Element is the set of types a Tensor may hold.
type Element = tensor.Element

// Tensor is a dense, row-major tensor with element type T.
type Tensor[T Element] = tensor.Tensor[T]

// New creates a Tensor over an existing backing slice.
func New[T Element](data []T, shape Shape) *Tensor[T] {
	return tensor.New(data, shape)
}

// FromSlice creates a tensor from a copy of a Go slice.
func FromSlice[T Element](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T Element](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Full creates a tensor filled with a specific value.
func Full[T Element](shape Shape, value T) *Tensor[T] {
	return tensor.Full(shape, value)
}

// RandUniform creates a float64 tensor with values drawn uniformly from
// [lo, hi).
func RandUniform(shape Shape, lo, hi float64, rng *rand.Rand) *Tensor[float64] {
	return tensor.RandUniform(shape, lo, hi, rng)
}

// RandIndex creates an int tensor with values drawn uniformly from [0, n).
func RandIndex(shape Shape, n int, rng *rand.Rand) *Tensor[int] {
	return tensor.RandIndex(shape, n, rng)
}
