// Package tensor re-exports the dense tensor types used throughout
// Plural.
//
// # Basic Usage
//
//	import "github.com/plural-ml/plural/tensor"
//
//	w := tensor.Zeros[float64](tensor.Shape{3, 4})
//	x, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{1, 3})
//	y := x.MatMul(w)
package tensor
