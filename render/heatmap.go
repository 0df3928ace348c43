package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/relaxfield/laplace/grid"
	"github.com/relaxfield/laplace/jacobi"
)

var (
	// ErrNilSnapshot indicates a record without a grid snapshot.
	ErrNilSnapshot = errors.New("render: record has no grid snapshot")
	// ErrNoSamples indicates an empty residual history.
	ErrNoSamples = errors.New("render: no residual samples to plot")
)

const (
	// paletteColors is the number of discrete levels sampled from the
	// diverging colormap.
	paletteColors = 255
	// frameSize is the edge length of a saved frame.
	frameSize = 5 * vg.Inch
)

// fieldXYZ adapts a grid.Grid to plotter.GridXYZ. Grid row 0 is the top
// edge while plot Y grows upward, so rows are flipped.
type fieldXYZ struct {
	g *grid.Grid
}

func (f fieldXYZ) Dims() (c, r int)   { return f.g.Cols(), f.g.Rows() }
func (f fieldXYZ) Z(c, r int) float64 { return f.g.RowView(f.g.Rows()-1-r)[c] }
func (f fieldXYZ) X(c int) float64    { return float64(c) }
func (f fieldXYZ) Y(r int) float64    { return float64(r) }

// FrameWriter renders iteration snapshots as PNG heatmaps,
// frame_0000.png, frame_0001.png, … under a single output directory.
type FrameWriter struct {
	dir     string
	every   int
	written int
}

// NewFrameWriter creates the output directory and returns a writer that
// renders every n-th iteration (n < 1 means every iteration).
func NewFrameWriter(dir string, every int) (*FrameWriter, error) {
	if every < 1 {
		every = 1
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: create output dir: %w", err)
	}

	return &FrameWriter{dir: dir, every: every}, nil
}

// WriteFrame renders rec's snapshot unless the iteration falls outside
// the subsampling stride. Skipped records return nil.
func (w *FrameWriter) WriteFrame(rec jacobi.IterationRecord) error {
	if rec.Grid == nil {
		return ErrNilSnapshot
	}
	if rec.Iteration%w.every != 0 {
		return nil
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Iteration %d", rec.Iteration)
	p.X.Label.Text = "col"
	p.Y.Label.Text = "row"

	hm := plotter.NewHeatMap(fieldXYZ{g: rec.Grid}, moreland.SmoothBlueRed().Palette(paletteColors))
	// a flat field would collapse the color range to a zero-width interval
	if hm.Max-hm.Min < 1e-12 {
		hm.Max = hm.Min + 1
	}
	p.Add(hm)

	name := filepath.Join(w.dir, fmt.Sprintf("frame_%04d.png", rec.Iteration))
	if err := p.Save(frameSize, frameSize, name); err != nil {
		return fmt.Errorf("render: save frame %d: %w", rec.Iteration, err)
	}
	w.written++

	return nil
}

// Written returns the number of frames rendered so far.
func (w *FrameWriter) Written() int { return w.written }

// Dir returns the output directory.
func (w *FrameWriter) Dir() string { return w.dir }
