// Package viz renders training diagnostics. Its only consumer-facing
// surface is the per-epoch loss history, taken as ordered (epoch, value)
// pairs.
package viz

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderLossCurve writes the loss history as an HTML bar chart to path,
// epoch index on the X axis and average loss on the Y axis.
func RenderLossCurve(losses []float64, path string) error {
	if len(losses) == 0 {
		return fmt.Errorf("viz: no losses recorded")
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Training loss",
			Subtitle: "average loss per epoch",
		}),
	)

	epochs := make([]string, len(losses))
	values := make([]opts.BarData, len(losses))
	for i, v := range losses {
		epochs[i] = strconv.Itoa(i)
		values[i] = opts.BarData{Value: v}
	}
	bar.SetXAxis(epochs).AddSeries("avg loss", values)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("viz: create %s: %w", path, err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("viz: render %s: %w", path, err)
	}
	return nil
}
