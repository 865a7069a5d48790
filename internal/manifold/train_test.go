package manifold_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plural-ml/plural/internal/manifold"
	"github.com/plural-ml/plural/internal/nn"
	"github.com/plural-ml/plural/internal/substrate"
)

func TestStalled(t *testing.T) {
	tests := []struct {
		name     string
		patience int
		minDelta float64
		losses   []float64
		want     bool
	}{
		{
			// Mean trailing improvement ((3-2)+(2-2)+(2-2))/3 ≈ 0.33 >= 0.1.
			name:     "still improving",
			patience: 3, minDelta: 0.1,
			losses: []float64{5.0, 4.0, 3.0, 2.0, 2.0, 2.0},
			want:   false,
		},
		{
			name:     "insufficient history",
			patience: 3, minDelta: 0.1,
			losses: []float64{5.0, 4.0},
			want:   false,
		},
		{
			name:     "stalled",
			patience: 3, minDelta: 0.5,
			losses: []float64{5.0, 4.0, 3.0, 2.0, 2.0, 2.0},
			want:   true,
		},
		{
			// Mean improvement is -1; worsening loss fires the predicate
			// just like a stall.
			name:     "worsening",
			patience: 2, minDelta: 0.0,
			losses: []float64{1.0, 1.0, 2.0, 3.0, 4.0},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := manifold.Stalled(tt.patience, tt.minDelta)(tt.losses)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrainRespectsEpochBudget(t *testing.T) {
	pool := identityPool{size: 20}

	m := manifold.New(pool, 1, 1, nil).
		SetRNG(rand.New(rand.NewSource(3))).
		SetEpochs(7).
		SetSampleSize(2)
	m.Weave().Gather()

	inputs := [][]float64{{1}, {2}, {3}}
	targets := [][]float64{{1}, {2}, {3}}
	m.Train(inputs, targets)

	assert.Len(t, m.Losses(), 7, "one loss per epoch, never more than the budget")
}

func TestTrainStopsWhenPredicateFires(t *testing.T) {
	pool := identityPool{size: 20}

	m := manifold.New(pool, 1, 1, nil).
		SetRNG(rand.New(rand.NewSource(3))).
		SetEpochs(100).
		SetSampleSize(1).
		UntilSome(func(losses []float64) bool { return len(losses) >= 3 })
	m.Weave().Gather()

	m.Train([][]float64{{1}}, [][]float64{{2}})

	assert.Len(t, m.Losses(), 3, "training stops the epoch the predicate first fires")
}

func TestTrainLossHistoryAppendOnly(t *testing.T) {
	pool := identityPool{size: 20}

	m := manifold.New(pool, 1, 1, nil).
		SetRNG(rand.New(rand.NewSource(4))).
		SetEpochs(2).
		SetSampleSize(1)
	m.Weave().Gather()

	m.Train([][]float64{{1}}, [][]float64{{2}})
	first := append([]float64(nil), m.Losses()...)
	m.Train([][]float64{{1}}, [][]float64{{2}})

	require.Len(t, m.Losses(), 4)
	assert.Equal(t, first, m.Losses()[:2], "earlier history is never rewritten")
}

func TestTrainMismatchedPairsPanics(t *testing.T) {
	pool := identityPool{size: 20}
	m := manifold.New(pool, 1, 1, nil).
		SetRNG(rand.New(rand.NewSource(5)))
	m.Weave().Gather()

	assert.Panics(t, func() {
		m.Train([][]float64{{1}, {2}}, [][]float64{{1}})
	})
}

func TestRetentionZeroResetsAccumulators(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	pool := substrate.New(64, -0.5, 0.5, rng)

	m := manifold.New(pool, 2, 1, []int{3}).
		SetRNG(rng).
		SetGradientRetention(manifold.RetainZero)
	m.Weave().Gather()

	yPred := m.Forward([]float64{1, 2})
	m.Backwards(yPred, []float64{0.5}, nn.NewMSE())

	for _, layer := range m.Web() {
		for _, v := range layer.GradW().Data() {
			assert.Zero(t, v)
		}
		for _, v := range layer.GradB().Data() {
			assert.Zero(t, v)
		}
	}
}

func TestRetentionRollAccumulatesAcrossSteps(t *testing.T) {
	// A pool that neither applies nor reassigns isolates the engine's own
	// accumulator behavior.
	pool := identityPool{size: 32}

	m := manifold.New(pool, 2, 1, []int{2}).
		SetRNG(rand.New(rand.NewSource(31))).
		SetHiddenActivation(nn.NewIdentity())
	m.Weave().Gather()

	x, y := []float64{1, -1}, []float64{2}

	yPred := m.Forward(x)
	m.Backwards(yPred, y, nn.NewMSE())

	firstW := m.Web()[0].GradW().Clone()
	firstB := m.Web()[0].GradB().Clone()

	// The pool dropped the update, so the second pass sees identical
	// weights and produces identical gradients; under Roll the buffer
	// doubles.
	yPred = m.Forward(x)
	m.Backwards(yPred, y, nn.NewMSE())

	assert.True(t, m.Web()[0].GradW().Equal(firstW.Scale(2)))
	assert.True(t, m.Web()[0].GradB().Equal(firstB.Scale(2)))
}

// TestTrainUpdatesPoolByExactGradientStep trains a single-layer manifold
// for one epoch on one pair over a real substrate and checks every
// touched slot against an independent recomputation of the backward pass
// and the combine-then-apply update rule.
func TestTrainUpdatesPoolByExactGradientStep(t *testing.T) {
	values := []float64{
		0.10, -0.20, 0.30, -0.40, 0.50, -0.60, 0.70, -0.80, 0.90, -1.00,
		0.11, -0.21, 0.31, -0.41, 0.51, -0.61, 0.71, -0.81, 0.91, -1.01,
	}
	pool := substrate.FromValues(values)

	const lr = 0.1
	m := manifold.New(pool, 2, 1, nil).
		SetRNG(rand.New(rand.NewSource(99))).
		SetLearningRate(lr).
		SetEpochs(1).
		SetSampleSize(1)
	m.Weave().Gather()

	layer := m.Web()[0]
	wi := [2]int{layer.Wi().At(0, 0), layer.Wi().At(1, 0)}
	bi := layer.Bi().At(0)

	x := []float64{1.5, -2.0}
	yTrue := 0.5

	// Independent forward: identity output activation.
	w := [2]float64{pool.Get(wi[0]), pool.Get(wi[1])}
	b := pool.Get(bi)
	pred := x[0]*w[0] + x[1]*w[1] + b

	// MSE gradient for a single output, grad_z = 2 * (pred - y).
	d := 2 * (pred - yTrue)
	gradW := [2]float64{x[0] * d, x[1] * d}
	gradB := d

	// Expected pool after the weight call (accumulators hold the negative
	// gradient; colliding contributions combine first) then the bias call.
	expected := append([]float64(nil), values...)
	combined := map[int]float64{}
	combined[wi[0]] += -gradW[0]
	combined[wi[1]] += -gradW[1]
	for slot, sum := range combined {
		expected[slot] += lr * sum
	}
	expected[bi] += lr * -gradB

	m.Train([][]float64{x}, [][]float64{{yTrue}})

	require.Len(t, m.Losses(), 1)
	assert.InDelta(t, (pred-yTrue)*(pred-yTrue), m.Losses()[0], 1e-12)

	for slot := range values {
		assert.InDelta(t, expected[slot], pool.Get(slot), 1e-12, "pool slot %d", slot)
	}

	// At least one referenced slot moved by exactly lr * grad.
	assert.NotEqual(t, values[wi[0]], pool.Get(wi[0]))

	// The layer re-gathered the just-updated pool.
	assert.Equal(t, pool.Get(wi[0]), layer.W().At(0, 0))
	assert.Equal(t, pool.Get(wi[1]), layer.W().At(1, 0))
	assert.Equal(t, pool.Get(bi), layer.B().At(0))
}
