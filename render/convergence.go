package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ConvergencePlot writes a residual-vs-iteration line plot to path.
// The Y axis is logarithmic when at least two samples are strictly
// positive; otherwise it falls back to a linear scale so an immediate
// fixed point (residual 0) still renders.
func ConvergencePlot(residuals []float64, path string) error {
	if len(residuals) == 0 {
		return ErrNoSamples
	}

	pts := make(plotter.XYs, 0, len(residuals))
	positive := 0
	for i, r := range residuals {
		if r > 0 {
			positive++
		}
		pts = append(pts, plotter.XY{X: float64(i + 1), Y: r})
	}

	p := plot.New()
	p.Title.Text = "Convergence"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "residual"

	if positive >= 2 {
		// log scale cannot hold zero samples, drop them
		logPts := pts[:0]
		for _, xy := range pts {
			if xy.Y > 0 {
				logPts = append(logPts, xy)
			}
		}
		pts = logPts
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("render: build residual line: %w", err)
	}
	p.Add(line, plotter.NewGrid())

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("render: save convergence plot: %w", err)
	}

	return nil
}
