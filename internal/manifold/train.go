package manifold

import (
	"fmt"

	"github.com/plural-ml/plural/internal/tensor"
)

// Train pairs inputs with targets positionally and runs the training loop.
//
// Each epoch draws sampleSize distinct pairs uniformly at random without
// replacement (capped at the dataset size), runs forward / loss /
// backwards for each, decays the learning rate, appends the epoch's mean
// loss to the history, and evaluates the early-termination predicate over
// the entire history. Training stops at the epoch budget or as soon as the
// predicate fires, whichever comes first.
//
// Mismatched input/target counts are a programming error and panic.
func (m *Manifold) Train(inputs, targets [][]float64) *Manifold {
	if len(inputs) != len(targets) {
		panic(fmt.Sprintf("manifold: %d inputs paired with %d targets", len(inputs), len(targets)))
	}
	if len(inputs) == 0 {
		panic("manifold: Train called with no data")
	}

	n := m.sampleSize
	if n > len(inputs) {
		n = len(inputs)
	}

	for epoch := 0; epoch < m.epochs; epoch++ {
		perm := m.rng.Perm(len(inputs))

		var totalLoss float64
		for _, p := range perm[:n] {
			x, y := inputs[p], targets[p]

			yPred := m.Forward(x)
			totalLoss += m.lossValue(yPred, y)
			m.Backwards(yPred, y, m.loss)
		}

		m.learningRate *= m.decay
		m.losses = append(m.losses, totalLoss/float64(n))

		if m.earlyTerminate(m.losses) {
			if m.verbose {
				fmt.Println("Early termination condition met.")
			}
			break
		}

		if m.verbose {
			fmt.Printf("(%d/%d) Loss = %f\n", epoch, m.epochs, m.losses[len(m.losses)-1])
		}
	}

	return m
}

func (m *Manifold) lossValue(yPred, y []float64) float64 {
	pred := tensorFrom(yPred)
	target := tensorFrom(y)
	return m.loss.Loss(pred, target)
}

func tensorFrom(v []float64) *tensor.Tensor[float64] {
	return tensor.New(append([]float64(nil), v...), tensor.Shape{len(v)})
}

// Stalled builds the default early-termination predicate: true once the
// mean improvement (previous loss minus current loss) over the trailing
// patience loss pairs falls below minDelta.
//
// With fewer than patience+2 recorded losses the predicate returns false
// and training continues; insufficient history is an explicit non-error.
func Stalled(patience int, minDelta float64) TerminationFunc {
	return func(losses []float64) bool {
		if len(losses) < patience+2 {
			return false
		}

		var sum float64
		for i := len(losses) - patience; i < len(losses); i++ {
			sum += losses[i-1] - losses[i]
		}
		avgDelta := sum / float64(patience)

		return avgDelta < minDelta
	}
}

// Until installs the Stalled predicate with the given patience and
// minimum improvement.
func (m *Manifold) Until(patience int, minDelta float64) *Manifold {
	m.earlyTerminate = Stalled(patience, minDelta)
	return m
}

// UntilSome installs an arbitrary early-termination predicate over the
// full loss history.
func (m *Manifold) UntilSome(fn TerminationFunc) *Manifold {
	m.earlyTerminate = fn
	return m
}
