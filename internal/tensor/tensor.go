package tensor

import "fmt"

// Element is the set of types a Tensor may hold.
//
// float64 carries weight, bias, and gradient values; int carries index
// matrices into the substrate pool.
type Element interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Tensor is a dense, row-major tensor with element type T.
//
// Example:
//
//	t := tensor.Zeros[float64](tensor.Shape{3, 4})
//	t.Set(1.5, 0, 2)
//	v := t.At(0, 2)
type Tensor[T Element] struct {
	shape   Shape
	strides []int
	data    []T
}

// New creates a Tensor over an existing backing slice.
//
// The slice is used directly, not copied. Panics if the slice length does
// not match the shape.
func New[T Element](data []T, shape Shape) *Tensor[T] {
	if shape.NumElements() != len(data) {
		panic(fmt.Sprintf("tensor: shape %v requires %d elements, got %d", shape, shape.NumElements(), len(data)))
	}
	return &Tensor[T]{
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
		data:    data,
	}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Element](data []T, shape Shape) (*Tensor[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	owned := make([]T, len(data))
	copy(owned, data)
	return New(owned, shape), nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// Rows returns the size of the first axis of a 2-D tensor.
func (t *Tensor[T]) Rows() int {
	if len(t.shape) != 2 {
		panic(fmt.Sprintf("Rows() requires a 2-D tensor, got shape %v", t.shape))
	}
	return t.shape[0]
}

// Cols returns the size of the second axis of a 2-D tensor.
func (t *Tensor[T]) Cols() int {
	if len(t.shape) != 2 {
		panic(fmt.Sprintf("Cols() requires a 2-D tensor, got shape %v", t.shape))
	}
	return t.shape[1]
}

// Data returns the tensor's backing slice (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) At(indices ...int) T {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) Set(value T, indices ...int) {
	t.data[t.offset(indices)] = value
}

func (t *Tensor[T]) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.strides[i]
	}
	return offset
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return New(data, t.shape)
}

// Reshape returns a view of the tensor with a new shape.
//
// The backing data is shared, not copied. Panics if the element counts
// differ.
func (t *Tensor[T]) Reshape(shape Shape) *Tensor[T] {
	if shape.NumElements() != len(t.data) {
		panic(fmt.Sprintf("cannot reshape %v to %v", t.shape, shape))
	}
	return New(t.data, shape)
}

// Equal reports whether two tensors have the same shape and elements.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		if t.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor%v %v", t.shape, t.data)
}
