package manifold

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/plural-ml/plural/internal/nn"
	"github.com/plural-ml/plural/internal/tensor"
	"github.com/plural-ml/plural/internal/viz"
)

// GradientRetention governs what happens to a layer's gradient
// accumulators after each update step.
type GradientRetention int

const (
	// RetainRoll leaves the accumulators untouched, so the accumulated
	// total is resubmitted (plus newly computed gradients) on the next
	// backward pass. The default.
	RetainRoll GradientRetention = iota

	// RetainZero resets the accumulators after every update step.
	RetainZero
)

// TerminationFunc decides, given the entire per-epoch loss history, whether
// training should stop early.
type TerminationFunc func(losses []float64) bool

// Range is a half-open interval [Min, Max) used by Dynamic to sample
// layer counts and widths.
type Range struct {
	Min int
	Max int
}

func (r Range) sample(rng *rand.Rand) int {
	if r.Max <= r.Min {
		panic(fmt.Sprintf("invalid range [%d, %d)", r.Min, r.Max))
	}
	return r.Min + rng.Intn(r.Max-r.Min)
}

// Manifold is an ordered chain of layers over one shared pool, plus the
// configuration that drives its training loop.
//
// Construction is builder-style: New or Dynamic, optional setters, then
// Weave and Gather before the first Forward or Train call.
//
//	m := manifold.New(pool, 2, 1, []int{8}).
//		SetLearningRate(0.01).
//		Until(5, 1e-4)
//	m.Weave().Gather()
//	m.Train(inputs, targets)
type Manifold struct {
	pool Substrate
	dIn  int
	dOut int

	layers []int    // hidden-layer width schedule, output width excluded
	web    []*Layer // realized chain, len(layers)+1 after Weave

	hiddenActivation nn.Activation
	outputActivation nn.Activation
	loss             nn.Loss
	retention        GradientRetention
	learningRate     float64
	decay            float64
	epochs           int
	sampleSize       int
	earlyTerminate   TerminationFunc
	verbose          bool
	rng              *rand.Rand

	losses []float64
}

// New creates a Manifold with a fixed hidden-layer width schedule.
//
// Defaults: hidden activation ReLU, output activation Identity, MSE loss,
// Roll retention, learning rate 0.001, decay 1.0 (no decay), 1000 epochs,
// sample size 10, never-firing termination predicate, time-seeded RNG.
//
// The layer chain is not built until Weave is called.
func New(pool Substrate, dIn, dOut int, layers []int) *Manifold {
	m := defaults(pool, dIn, dOut)
	m.layers = layers
	m.sampleSize = 10
	return m
}

// Dynamic creates a Manifold with a randomized topology: the hidden-layer
// count is drawn uniformly from depth and each hidden width uniformly from
// breadth. Sample size defaults to 1; all other defaults match New.
func Dynamic(pool Substrate, dIn, dOut int, breadth, depth Range) *Manifold {
	m := defaults(pool, dIn, dOut)
	n := depth.sample(m.rng)
	m.layers = make([]int, n)
	for i := range m.layers {
		m.layers[i] = breadth.sample(m.rng)
	}
	m.sampleSize = 1
	return m
}

func defaults(pool Substrate, dIn, dOut int) *Manifold {
	return &Manifold{
		pool:             pool,
		dIn:              dIn,
		dOut:             dOut,
		hiddenActivation: nn.NewReLU(),
		outputActivation: nn.NewIdentity(),
		loss:             nn.NewMSE(),
		retention:        RetainRoll,
		learningRate:     0.001,
		decay:            1.0,
		epochs:           1000,
		earlyTerminate:   func([]float64) bool { return false },
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetHiddenActivation sets the activation shared by all hidden layers.
func (m *Manifold) SetHiddenActivation(a nn.Activation) *Manifold {
	m.hiddenActivation = a
	return m
}

// SetOutputActivation sets the final layer's activation.
func (m *Manifold) SetOutputActivation(a nn.Activation) *Manifold {
	m.outputActivation = a
	return m
}

// SetLoss sets the training loss.
func (m *Manifold) SetLoss(l nn.Loss) *Manifold {
	m.loss = l
	return m
}

// SetGradientRetention sets the accumulator retention policy.
func (m *Manifold) SetGradientRetention(r GradientRetention) *Manifold {
	m.retention = r
	return m
}

// SetLearningRate sets the scatter-update learning rate.
func (m *Manifold) SetLearningRate(rate float64) *Manifold {
	m.learningRate = rate
	return m
}

// SetDecay sets the per-epoch multiplicative learning-rate decay.
func (m *Manifold) SetDecay(decay float64) *Manifold {
	m.decay = decay
	return m
}

// SetEpochs sets the epoch budget.
func (m *Manifold) SetEpochs(epochs int) *Manifold {
	m.epochs = epochs
	return m
}

// SetSampleSize sets how many pairs each epoch draws without replacement.
func (m *Manifold) SetSampleSize(n int) *Manifold {
	m.sampleSize = n
	return m
}

// SetRNG replaces the manifold's random source. Call before Weave to make
// index initialization and minibatch sampling reproducible.
func (m *Manifold) SetRNG(rng *rand.Rand) *Manifold {
	m.rng = rng
	return m
}

// Verbose enables per-epoch progress output.
func (m *Manifold) Verbose() *Manifold {
	m.verbose = true
	return m
}

// Web returns the realized layer chain. Empty before Weave.
func (m *Manifold) Web() []*Layer {
	return m.web
}

// Schedule returns the hidden-layer width schedule.
func (m *Manifold) Schedule() []int {
	return m.layers
}

// Losses returns the per-epoch average loss history, ordered and
// append-only across Train calls.
func (m *Manifold) Losses() []float64 {
	return m.losses
}

// Weave builds the layer chain from the width schedule: one layer per
// hidden width plus a final output layer, each layer's input width
// threaded from the previous layer's output width, with pool indices
// drawn uniformly at random.
func (m *Manifold) Weave() *Manifold {
	xShape := tensor.Shape{1, m.dIn}
	pDim := m.dIn

	for _, width := range m.layers {
		wShape := tensor.Shape{pDim, width}
		m.web = append(m.web, NewLayer(m.pool.Size(), xShape, wShape, width, m.hiddenActivation, m.rng))
		pDim = width
		xShape = tensor.Shape{1, width}
	}

	wShape := tensor.Shape{pDim, m.dOut}
	m.web = append(m.web, NewLayer(m.pool.Size(), xShape, wShape, m.dOut, m.outputActivation, m.rng))
	return m
}

// Gather synchronizes every layer's dense matrices with the current pool
// contents.
func (m *Manifold) Gather() *Manifold {
	for _, layer := range m.web {
		layer.Gather(m.pool)
	}
	return m
}

// Forward threads a flat input vector of length dIn through the layer
// chain and returns the flattened dOut-length output.
//
// A wrong-length input is a programming error and panics.
func (m *Manifold) Forward(xv []float64) []float64 {
	if len(xv) != m.dIn {
		panic(fmt.Sprintf("manifold: input length %d does not match d_in %d", len(xv), m.dIn))
	}
	if len(m.web) == 0 {
		panic("manifold: Forward called before Weave")
	}

	x := tensor.New(append([]float64(nil), xv...), tensor.Shape{1, m.dIn})
	for _, layer := range m.web {
		x = layer.Forward(x)
	}

	out := make([]float64, x.NumElements())
	copy(out, x.Data())
	return out
}

// Backwards backpropagates one prediction/target pair through the chain
// in reverse layer order, scattering each layer's accumulated gradients
// into the pool as it goes.
//
// After every Layer.Backward, the layer's accumulators and index matrices
// are submitted to the pool's scatter-update. Weights and biases follow
// one uniform path: copies of the accumulator and index tensors go to
// Highspeed, the resulting index reassignment is applied back as an
// explicit delta via ShiftWeights/ShiftBias, and the (possibly mutated)
// gradient copy is written back wholesale. The layer is then re-gathered
// so its dense matrices reflect the just-updated pool, and the retention
// policy is applied.
func (m *Manifold) Backwards(yPred, y []float64, loss nn.Loss) {
	if len(yPred) != m.dOut || len(y) != m.dOut {
		panic(fmt.Sprintf("manifold: prediction/target length (%d, %d) does not match d_out %d", len(yPred), len(y), m.dOut))
	}

	pred := tensor.New(append([]float64(nil), yPred...), tensor.Shape{m.dOut})
	target := tensor.New(append([]float64(nil), y...), tensor.Shape{m.dOut})
	gradOutput := loss.Gradient(pred, target).Reshape(tensor.Shape{1, m.dOut})

	for i := len(m.web) - 1; i >= 0; i-- {
		layer := m.web[i]
		gradOutput = layer.Backward(gradOutput)

		wGrad, wIdx := layer.GradW().Clone(), layer.Wi().Clone()
		m.pool.Highspeed(wGrad, wIdx, m.learningRate)
		layer.ShiftWeights(wIdx.Sub(layer.Wi())).AssignGradW(wGrad)

		bGrad, bIdx := layer.GradB().Clone(), layer.Bi().Clone()
		m.pool.Highspeed(bGrad, bIdx, m.learningRate)
		layer.ShiftBias(bIdx.Sub(layer.Bi())).AssignGradB(bGrad)

		layer.Gather(m.pool)

		if m.retention == RetainZero {
			layer.AssignGradW(tensor.Zeros[float64](layer.GradW().Shape()))
			layer.AssignGradB(tensor.Zeros[float64](layer.GradB().Shape()))
		}
	}
}

// LossGraph renders the loss history to an HTML bar chart at path.
func (m *Manifold) LossGraph(path string) error {
	return viz.RenderLossCurve(m.losses, path)
}
