// Package main provides the Plural CLI.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/plural-ml/plural/internal/manifold"
	"github.com/plural-ml/plural/internal/nn"
	"github.com/plural-ml/plural/internal/substrate"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Plural %s\n", version)
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Println("Plural - weight-hashed feed-forward training for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Train a small regression and write loss.html")
}

// demo trains a tiny manifold to approximate y = x1 + x2 over a shared
// pool of 2000 scalars and writes the loss curve to loss.html.
func demo() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	pool := substrate.New(2000, -0.1, 0.1, rng)

	inputs := make([][]float64, 0, 256)
	targets := make([][]float64, 0, 256)
	for i := 0; i < 256; i++ {
		x1, x2 := rng.Float64(), rng.Float64()
		inputs = append(inputs, []float64{x1, x2})
		targets = append(targets, []float64{x1 + x2})
	}

	m := manifold.New(pool, 2, 1, []int{16, 16}).
		SetHiddenActivation(nn.NewTanh()).
		SetLearningRate(0.01).
		SetEpochs(500).
		SetSampleSize(16).
		Until(10, 1e-5).
		Verbose()

	m.Weave().Gather()
	m.Train(inputs, targets)

	losses := m.Losses()
	fmt.Printf("trained %d epochs, final loss %f\n", len(losses), losses[len(losses)-1])

	if err := m.LossGraph("loss.html"); err != nil {
		fmt.Fprintf(os.Stderr, "loss graph: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("wrote loss.html")
}
