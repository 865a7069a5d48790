package nn

import (
	"testing"
)

func TestMSE(t *testing.T) {
	pred := input(t, 1, 2, 3)
	target := input(t, 1, 0, 0)

	// mean((0)² + (2)² + (3)²) = 13/3
	loss := NewMSE().Loss(pred, target)
	if !floatEqual(loss, 13.0/3.0, 1e-12) {
		t.Errorf("Loss = %f, want %f", loss, 13.0/3.0)
	}

	// 2 * (pred - target) / 3
	grad := NewMSE().Gradient(pred, target).Data()
	want := []float64{0, 4.0 / 3.0, 2}
	for i, w := range want {
		if !floatEqual(grad[i], w, 1e-12) {
			t.Errorf("Gradient[%d] = %f, want %f", i, grad[i], w)
		}
	}
}

func TestMAE(t *testing.T) {
	pred := input(t, 1, -2)
	target := input(t, 0, 0)

	loss := NewMAE().Loss(pred, target)
	if !floatEqual(loss, 1.5, 1e-12) {
		t.Errorf("Loss = %f, want 1.5", loss)
	}

	grad := NewMAE().Gradient(pred, target).Data()
	if !floatEqual(grad[0], 0.5, 1e-12) || !floatEqual(grad[1], -0.5, 1e-12) {
		t.Errorf("Gradient = %v, want [0.5 -0.5]", grad)
	}
}

func TestLossShapeMismatchPanics(t *testing.T) {
	pred := input(t, 1, 2)
	target := input(t, 1, 2, 3)

	defer func() {
		if recover() == nil {
			t.Error("Loss with mismatched shapes should panic")
		}
	}()
	NewMSE().Loss(pred, target)
}
