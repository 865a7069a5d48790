package nn

import (
	"fmt"
	"math"

	"github.com/plural-ml/plural/internal/tensor"
)

// Loss scores a prediction against a target and supplies the gradient that
// seeds backpropagation.
//
// Prediction and target are 1-D tensors of equal length; Gradient returns
// a tensor of that same length (the gradient with respect to the
// prediction).
type Loss interface {
	// Loss computes the scalar loss value.
	Loss(pred, target *tensor.Tensor[float64]) float64

	// Gradient computes the loss gradient with respect to pred.
	Gradient(pred, target *tensor.Tensor[float64]) *tensor.Tensor[float64]
}

// MSE is mean squared error: mean((pred - target)²).
//
// The default loss for regression.
type MSE struct{}

// NewMSE creates an MSE loss.
func NewMSE() MSE { return MSE{} }

// Loss computes mean((pred - target)²).
func (MSE) Loss(pred, target *tensor.Tensor[float64]) float64 {
	checkLossShapes(pred, target)
	var sum float64
	p, t := pred.Data(), target.Data()
	for i := range p {
		d := p[i] - t[i]
		sum += d * d
	}
	return sum / float64(len(p))
}

// Gradient computes 2 * (pred - target) / n.
func (MSE) Gradient(pred, target *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	checkLossShapes(pred, target)
	n := float64(pred.NumElements())
	return pred.Sub(target).Scale(2 / n)
}

// MAE is mean absolute error: mean(|pred - target|).
type MAE struct{}

// NewMAE creates an MAE loss.
func NewMAE() MAE { return MAE{} }

// Loss computes mean(|pred - target|).
func (MAE) Loss(pred, target *tensor.Tensor[float64]) float64 {
	checkLossShapes(pred, target)
	var sum float64
	p, t := pred.Data(), target.Data()
	for i := range p {
		sum += math.Abs(p[i] - t[i])
	}
	return sum / float64(len(p))
}

// Gradient computes sign(pred - target) / n. The derivative at zero is
// taken as zero.
func (MAE) Gradient(pred, target *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	checkLossShapes(pred, target)
	n := float64(pred.NumElements())
	return pred.Sub(target).Map(func(v float64) float64 {
		switch {
		case v > 0:
			return 1 / n
		case v < 0:
			return -1 / n
		default:
			return 0
		}
	})
}

func checkLossShapes(pred, target *tensor.Tensor[float64]) {
	if !pred.Shape().Equal(target.Shape()) {
		panic(fmt.Sprintf("loss: prediction shape %v does not match target shape %v", pred.Shape(), target.Shape()))
	}
}
