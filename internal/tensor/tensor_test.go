package tensor

import (
	"math/rand"
	"testing"
)

func TestShape(t *testing.T) {
	s := Shape{3, 4}

	if s.NumElements() != 12 {
		t.Errorf("NumElements() = %d, want 12", s.NumElements())
	}
	if !s.Equal(Shape{3, 4}) {
		t.Error("Equal() should match identical shapes")
	}
	if s.Equal(Shape{4, 3}) {
		t.Error("Equal() should reject different shapes")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if err := (Shape{3, 0}).Validate(); err == nil {
		t.Error("Validate() should reject zero dimensions")
	}

	strides := s.ComputeStrides()
	if strides[0] != 4 || strides[1] != 1 {
		t.Errorf("ComputeStrides() = %v, want [4 1]", strides)
	}
}

func TestFromSlice(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	tt, err := FromSlice(data, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice() error: %v", err)
	}
	if tt.At(1, 2) != 6 {
		t.Errorf("At(1, 2) = %f, want 6", tt.At(1, 2))
	}

	// The tensor owns a copy, not the caller's slice.
	data[0] = 99
	if tt.At(0, 0) != 1 {
		t.Errorf("At(0, 0) = %f, want 1 after mutating source slice", tt.At(0, 0))
	}

	if _, err := FromSlice(data, Shape{2, 2}); err == nil {
		t.Error("FromSlice() should reject mismatched lengths")
	}
}

func TestAtSet(t *testing.T) {
	tt := Zeros[float64](Shape{2, 2})
	tt.Set(3.5, 1, 0)
	if tt.At(1, 0) != 3.5 {
		t.Errorf("At(1, 0) = %f, want 3.5", tt.At(1, 0))
	}

	defer func() {
		if recover() == nil {
			t.Error("At() with out-of-bounds index should panic")
		}
	}()
	tt.At(2, 0)
}

func TestCloneIsDeep(t *testing.T) {
	a := Full(Shape{3}, 1.0)
	b := a.Clone()
	b.Data()[0] = 9
	if a.Data()[0] != 1 {
		t.Error("Clone() should not share backing data")
	}
}

func TestReshapeSharesData(t *testing.T) {
	a := Full(Shape{4}, 2.0)
	b := a.Reshape(Shape{2, 2})
	b.Set(7, 0, 1)
	if a.At(1) != 7 {
		t.Error("Reshape() should share backing data")
	}
}

func TestRandIndexRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tt := RandIndex(Shape{8, 8}, 17, rng)
	for _, v := range tt.Data() {
		if v < 0 || v >= 17 {
			t.Fatalf("RandIndex produced %d outside [0, 17)", v)
		}
	}
}

func TestRandUniformRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tt := RandUniform(Shape{100}, -0.5, 0.5, rng)
	for _, v := range tt.Data() {
		if v < -0.5 || v >= 0.5 {
			t.Fatalf("RandUniform produced %f outside [-0.5, 0.5)", v)
		}
	}
}
