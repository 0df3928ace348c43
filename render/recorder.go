package render

import (
	"path/filepath"

	"github.com/relaxfield/laplace/jacobi"
)

// convergenceFile is the name of the residual plot written on Close.
const convergenceFile = "convergence.png"

// Recorder plugs into the solver's iteration callback and accumulates
// both artifacts of a run: subsampled heatmap frames (written as the
// run progresses) and the full residual series (plotted on Close).
//
// Record never returns an error because the callback shape has none;
// the first failure is latched and surfaced by Close.
type Recorder struct {
	frames    *FrameWriter
	residuals []float64
	err       error
}

// NewRecorder creates dir and returns a recorder writing every n-th
// frame into it (n < 1 means every frame).
func NewRecorder(dir string, every int) (*Recorder, error) {
	fw, err := NewFrameWriter(dir, every)
	if err != nil {
		return nil, err
	}

	return &Recorder{frames: fw}, nil
}

// Record consumes one iteration record. Pass it to the solver via
// jacobi.WithOnIteration(rec.Record).
func (r *Recorder) Record(rec jacobi.IterationRecord) {
	r.residuals = append(r.residuals, rec.Residual)
	if r.err != nil {
		return
	}
	r.err = r.frames.WriteFrame(rec)
}

// Close writes the convergence plot and returns the number of frames
// rendered together with the first error encountered, if any. A run
// with zero iterations yields no plot and no error.
func (r *Recorder) Close() (int, error) {
	if r.err != nil {
		return r.frames.Written(), r.err
	}
	if len(r.residuals) == 0 {
		return 0, nil
	}
	path := filepath.Join(r.frames.Dir(), convergenceFile)
	if err := ConvergencePlot(r.residuals, path); err != nil {
		return r.frames.Written(), err
	}

	return r.frames.Written(), nil
}
