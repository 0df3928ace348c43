package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// MinDimension is the smallest legal extent along either axis.
const MinDimension = 2

// Grid is a fixed-size 2D scalar field. The zero value is not usable;
// construct with New or NewFilled.
type Grid struct {
	rows, cols int
	data       *mat.Dense
}

// New constructs a zero-initialized rows × cols Grid.
// Returns ErrInvalidDimension if either extent is below MinDimension.
func New(rows, cols int) (*Grid, error) {
	return NewFilled(rows, cols, 0)
}

// NewFilled constructs a rows × cols Grid with every cell, boundary and
// interior alike, set to v.
// Returns ErrInvalidDimension if either extent is below MinDimension.
func NewFilled(rows, cols int, v float64) (*Grid, error) {
	if rows < MinDimension || cols < MinDimension {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimension, rows, cols)
	}
	g := &Grid{rows: rows, cols: cols, data: mat.NewDense(rows, cols, nil)}
	if v != 0 {
		g.Fill(v)
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (r,c) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the value at (r,c).
// Returns ErrOutOfRange if the index lies outside the grid.
func (g *Grid) At(r, c int) (float64, error) {
	if !g.InBounds(r, c) {
		return 0, fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfRange, r, c, g.rows, g.cols)
	}

	return g.data.At(r, c), nil
}

// Set writes v at (r,c).
// Returns ErrOutOfRange if the index lies outside the grid.
func (g *Grid) Set(r, c int, v float64) error {
	if !g.InBounds(r, c) {
		return fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfRange, r, c, g.rows, g.cols)
	}
	g.data.Set(r, c, v)

	return nil
}

// RowView returns the backing slice for row r. The slice aliases the
// grid: writes through it mutate the field directly. r must lie in
// [0,rows); out-of-range panics, matching mat.Dense semantics.
// Intended for sweep loops where per-cell bounds checks would dominate.
func (g *Grid) RowView(r int) []float64 {
	return g.data.RawRowView(r)
}

// Fill sets every cell to v.
func (g *Grid) Fill(v float64) {
	raw := g.data.RawMatrix().Data
	for i := range raw {
		raw[i] = v
	}
}

// Clone returns an independent deep copy of the grid.
// Complexity: O(rows×cols) time and memory.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, data: mat.DenseCopyOf(g.data)}
}

// CopyFrom overwrites every cell with the corresponding cell of src.
// Returns ErrNilGrid for a nil src and ErrShapeMismatch if dimensions
// differ. Used for double buffering: the destination keeps its identity.
func (g *Grid) CopyFrom(src *Grid) error {
	if src == nil {
		return ErrNilGrid
	}
	if src.rows != g.rows || src.cols != g.cols {
		return fmt.Errorf("%w: %d×%d vs %d×%d", ErrShapeMismatch, g.rows, g.cols, src.rows, src.cols)
	}
	g.data.Copy(src.data)

	return nil
}

// HasNonFinite reports whether any cell holds NaN or ±Inf.
// Complexity: O(rows×cols).
func (g *Grid) HasNonFinite() bool {
	for _, v := range g.data.RawMatrix().Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}

	return false
}

// Dense exposes the backing matrix for gonum interop. The matrix aliases
// the grid; treat it as read-only unless you own the Grid exclusively.
func (g *Grid) Dense() *mat.Dense { return g.data }
