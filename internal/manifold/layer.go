package manifold

import (
	"math/rand"

	"github.com/plural-ml/plural/internal/nn"
	"github.com/plural-ml/plural/internal/tensor"
)

// Layer is one affine transform plus activation whose weight and bias
// values live in the shared pool.
//
// The layer owns index matrices (wi, bi) into the pool and dense
// materializations (w, b) of the values those indices currently refer to.
// The invariant after any Gather: w[i,j] == pool.Get(wi[i,j]) and
// b[j] == pool.Get(bi[j]).
//
// Forward state (x, dz) is overwritten on every forward call and consumed
// by the immediately following backward call. Gradient accumulators
// (gradW, gradB) hold the negative running sum of all gradients since the
// last reset; the retention policy decides when that reset happens.
type Layer struct {
	x  *tensor.Tensor[float64] // last forward input, (batch, in)
	wi *tensor.Tensor[int]     // weight indices into the pool, (in, out)
	bi *tensor.Tensor[int]     // bias indices into the pool, (out)
	w  *tensor.Tensor[float64] // gathered weights, (in, out)
	b  *tensor.Tensor[float64] // gathered biases, (out)
	dz *tensor.Tensor[float64] // activation derivative at the last pre-activation, (batch, out)

	gradW *tensor.Tensor[float64]
	gradB *tensor.Tensor[float64]

	activation nn.Activation
}

// NewLayer creates a layer with index matrices drawn uniformly from
// [0, poolSize) and all numeric state zeroed. Dense weights hold zeros
// until the first Gather.
func NewLayer(poolSize int, xShape, wShape tensor.Shape, bShape int, activation nn.Activation, rng *rand.Rand) *Layer {
	return &Layer{
		x:          tensor.Zeros[float64](xShape),
		wi:         tensor.RandIndex(wShape, poolSize, rng),
		bi:         tensor.RandIndex(tensor.Shape{bShape}, poolSize, rng),
		w:          tensor.Zeros[float64](wShape),
		b:          tensor.Zeros[float64](tensor.Shape{bShape}),
		dz:         tensor.Zeros[float64](wShape),
		gradW:      tensor.Zeros[float64](wShape),
		gradB:      tensor.Zeros[float64](tensor.Shape{bShape}),
		activation: activation,
	}
}

// Gather recomputes the dense weight and bias matrices by looking up the
// layer's indices in the pool. Idempotent for unchanged indices and pool
// contents.
func (l *Layer) Gather(pool Substrate) *Layer {
	wd, wid := l.w.Data(), l.wi.Data()
	for i, ix := range wid {
		wd[i] = pool.Get(ix)
	}
	bd, bid := l.b.Data(), l.bi.Data()
	for i, ix := range bid {
		bd[i] = pool.Get(ix)
	}
	return l
}

// Forward computes activation(x·w + b), caching x and the activation
// derivative at the pre-activation for the next backward call.
//
// Input shape: (batch, in). Output shape: (batch, out). A shape mismatch
// is a programming error and panics inside the matmul.
func (l *Layer) Forward(x *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	l.x = x.Clone()
	z := x.MatMul(l.w).AddRow(l.b)
	l.dz = l.activation.Derivative(z)
	return l.activation.Apply(z)
}

// Backward consumes the gradient of the loss with respect to this layer's
// output and returns the gradient with respect to its input.
//
// The locally computed weight and bias gradients are subtracted into the
// persistent accumulators, so the buffers hold the negative running sum
// of every gradient applied since the last reset.
func (l *Layer) Backward(gradOutput *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	gradZ := gradOutput.Mul(l.dz)
	gradInput := gradZ.MatMul(l.w.Transpose())

	l.gradW.SubAssign(l.x.Transpose().MatMul(gradZ))
	l.gradB.SubAssign(gradZ.SumAxis0())

	return gradInput
}

// ShiftWeights adds an index delta to the weight index matrix in place,
// applying a pool-slot reassignment reported by the substrate.
func (l *Layer) ShiftWeights(delta *tensor.Tensor[int]) *Layer {
	l.wi.AddAssign(delta)
	return l
}

// ShiftBias adds an index delta to the bias index vector in place.
func (l *Layer) ShiftBias(delta *tensor.Tensor[int]) *Layer {
	l.bi.AddAssign(delta)
	return l
}

// AssignGradW replaces the weight gradient accumulator wholesale.
func (l *Layer) AssignGradW(grad *tensor.Tensor[float64]) *Layer {
	l.gradW = grad
	return l
}

// AssignGradB replaces the bias gradient accumulator wholesale.
func (l *Layer) AssignGradB(grad *tensor.Tensor[float64]) *Layer {
	l.gradB = grad
	return l
}

// InWidth returns the layer's input width.
func (l *Layer) InWidth() int { return l.w.Rows() }

// OutWidth returns the layer's output width.
func (l *Layer) OutWidth() int { return l.w.Cols() }

// Wi returns the weight index matrix.
func (l *Layer) Wi() *tensor.Tensor[int] { return l.wi }

// Bi returns the bias index vector.
func (l *Layer) Bi() *tensor.Tensor[int] { return l.bi }

// W returns the gathered dense weight matrix.
func (l *Layer) W() *tensor.Tensor[float64] { return l.w }

// B returns the gathered dense bias vector.
func (l *Layer) B() *tensor.Tensor[float64] { return l.b }

// GradW returns the weight gradient accumulator.
func (l *Layer) GradW() *tensor.Tensor[float64] { return l.gradW }

// GradB returns the bias gradient accumulator.
func (l *Layer) GradB() *tensor.Tensor[float64] { return l.gradB }
