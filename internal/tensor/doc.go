// Package tensor provides dense 1-D and 2-D tensors for the Plural engine.
//
// # Overview
//
// Tensors are the numeric substrate of the engine. This package provides:
//   - Generic dense tensors (Tensor[T]) over a flat backing slice
//   - Row-major shapes with stride-based indexing
//   - The small op set the training pipeline needs: matmul, transpose,
//     Hadamard product, row broadcasting, column sums
//
// The same container holds float64 value matrices and int index matrices,
// which is why the element type is a type parameter rather than fixed.
//
// # Basic Usage
//
//	w := tensor.Zeros[float64](tensor.Shape{3, 4})
//	x, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{1, 3})
//	y := x.MatMul(w) // shape (1, 4)
//
// All tensors live on the CPU; there is no device abstraction.
package tensor
