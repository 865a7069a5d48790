package tensor

import "math/rand"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros[float64](Shape{3, 4})
func Zeros[T Element](shape Shape) *Tensor[T] {
	// Data is already zero-initialized by make()
	return New(make([]T, shape.NumElements()), shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(Shape{3, 3}, 3.14)
func Full[T Element](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// RandUniform creates a float64 tensor with values drawn uniformly from
// the half-open interval [lo, hi).
//
// Note: Uses math/rand (not crypto/rand) - appropriate for ML purposes,
// and the caller-supplied source keeps runs reproducible.
func RandUniform(shape Shape, lo, hi float64, rng *rand.Rand) *Tensor[float64] {
	t := Zeros[float64](shape)
	for i := range t.data {
		t.data[i] = lo + rng.Float64()*(hi-lo)
	}
	return t
}

// RandIndex creates an int tensor with values drawn uniformly from [0, n).
//
// This is the index-matrix initializer: every entry is a valid handle into
// a pool of size n.
func RandIndex(shape Shape, n int, rng *rand.Rand) *Tensor[int] {
	t := Zeros[int](shape)
	for i := range t.data {
		t.data[i] = rng.Intn(n)
	}
	return t
}
