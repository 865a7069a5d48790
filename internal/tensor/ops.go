package tensor

import "fmt"

// Add returns the elementwise sum of two tensors of identical shape.
func (t *Tensor[T]) Add(other *Tensor[T]) *Tensor[T] {
	t.mustMatch(other, "Add")
	out := t.Clone()
	for i := range out.data {
		out.data[i] += other.data[i]
	}
	return out
}

// Sub returns the elementwise difference of two tensors of identical shape.
func (t *Tensor[T]) Sub(other *Tensor[T]) *Tensor[T] {
	t.mustMatch(other, "Sub")
	out := t.Clone()
	for i := range out.data {
		out.data[i] -= other.data[i]
	}
	return out
}

// Mul returns the elementwise (Hadamard) product of two tensors of
// identical shape.
func (t *Tensor[T]) Mul(other *Tensor[T]) *Tensor[T] {
	t.mustMatch(other, "Mul")
	out := t.Clone()
	for i := range out.data {
		out.data[i] *= other.data[i]
	}
	return out
}

// Scale returns the tensor with every element multiplied by s.
func (t *Tensor[T]) Scale(s T) *Tensor[T] {
	out := t.Clone()
	for i := range out.data {
		out.data[i] *= s
	}
	return out
}

// AddAssign adds another tensor of identical shape into this one in place.
func (t *Tensor[T]) AddAssign(other *Tensor[T]) *Tensor[T] {
	t.mustMatch(other, "AddAssign")
	for i := range t.data {
		t.data[i] += other.data[i]
	}
	return t
}

// SubAssign subtracts another tensor of identical shape from this one in
// place.
func (t *Tensor[T]) SubAssign(other *Tensor[T]) *Tensor[T] {
	t.mustMatch(other, "SubAssign")
	for i := range t.data {
		t.data[i] -= other.data[i]
	}
	return t
}

// Map returns a new tensor with f applied to every element.
func (t *Tensor[T]) Map(f func(T) T) *Tensor[T] {
	out := t.Clone()
	for i := range out.data {
		out.data[i] = f(out.data[i])
	}
	return out
}

// MatMul computes the 2-D matrix product t @ other.
//
// Shapes: (m, k) @ (k, n) -> (m, n). Panics on rank or inner-dimension
// mismatch; per the engine contract that is a programming error, not a
// recoverable failure.
func (t *Tensor[T]) MatMul(other *Tensor[T]) *Tensor[T] {
	if len(t.shape) != 2 || len(other.shape) != 2 {
		panic(fmt.Sprintf("MatMul requires 2-D tensors, got %v and %v", t.shape, other.shape))
	}
	m, k := t.shape[0], t.shape[1]
	k2, n := other.shape[0], other.shape[1]
	if k != k2 {
		panic(fmt.Sprintf("MatMul inner dimension mismatch: %v @ %v", t.shape, other.shape))
	}

	out := Zeros[T](Shape{m, n})
	for i := 0; i < m; i++ {
		for p := 0; p < k; p++ {
			a := t.data[i*k+p]
			if a == 0 {
				continue
			}
			row := other.data[p*n : (p+1)*n]
			outRow := out.data[i*n : (i+1)*n]
			for j := 0; j < n; j++ {
				outRow[j] += a * row[j]
			}
		}
	}
	return out
}

// Transpose returns the transpose of a 2-D tensor.
func (t *Tensor[T]) Transpose() *Tensor[T] {
	if len(t.shape) != 2 {
		panic(fmt.Sprintf("Transpose requires a 2-D tensor, got %v", t.shape))
	}
	rows, cols := t.shape[0], t.shape[1]
	out := Zeros[T](Shape{cols, rows})
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[j*rows+i] = t.data[i*cols+j]
		}
	}
	return out
}

// SumAxis0 sums a 2-D tensor over its first axis, producing the 1-D vector
// of column totals. For a (batch, width) tensor this collapses the batch.
func (t *Tensor[T]) SumAxis0() *Tensor[T] {
	if len(t.shape) != 2 {
		panic(fmt.Sprintf("SumAxis0 requires a 2-D tensor, got %v", t.shape))
	}
	rows, cols := t.shape[0], t.shape[1]
	out := Zeros[T](Shape{cols})
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[j] += t.data[i*cols+j]
		}
	}
	return out
}

// AddRow returns a 2-D tensor with a 1-D row vector broadcast-added to
// every row. This is the bias add in the affine transform.
func (t *Tensor[T]) AddRow(row *Tensor[T]) *Tensor[T] {
	if len(t.shape) != 2 || len(row.shape) != 1 {
		panic(fmt.Sprintf("AddRow requires a 2-D tensor and a 1-D row, got %v and %v", t.shape, row.shape))
	}
	if t.shape[1] != row.shape[0] {
		panic(fmt.Sprintf("AddRow width mismatch: %v + %v", t.shape, row.shape))
	}
	rows, cols := t.shape[0], t.shape[1]
	out := t.Clone()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[i*cols+j] += row.data[j]
		}
	}
	return out
}

func (t *Tensor[T]) mustMatch(other *Tensor[T], op string) {
	if !t.shape.Equal(other.shape) {
		panic(fmt.Sprintf("%s: shape mismatch %v vs %v", op, t.shape, other.shape))
	}
}
