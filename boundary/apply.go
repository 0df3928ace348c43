package boundary

import (
	"math"

	"github.com/relaxfield/laplace/grid"
)

// Apply writes all four boundary conditions into g with unit grid spacing.
// See ApplyWithSpacing for semantics.
func (s Set) Apply(g *grid.Grid) error {
	return s.ApplyWithSpacing(g, 1)
}

// ApplyWithSpacing writes all four boundary conditions into g, using h as
// the grid spacing for Neumann first-order differences.
//
// Edges are written in the fixed order Top, Bottom, Left, Right; later
// writes win at corners. Dirichlet covers the full edge including corners;
// Neumann covers only the interior strip (indices 1..n-2 along the edge)
// and derives each boundary cell from its adjacent interior cell:
//
//	top:    u[0][j]   = u[1][j]   + g·h
//	bottom: u[n-1][j] = u[n-2][j] − g·h
//	left:   u[i][0]   = u[i][1]   + g·h
//	right:  u[i][m-1] = u[i][m-2] − g·h
//
// The signs follow the outward normal of each edge, enforcing
// ∂u/∂n = g. Interior cells are never touched, so applying twice in a row
// yields identical boundary values for both kinds.
//
// Returns ErrNilGrid or ErrBadSpacing; never mutates g on error.
// Complexity: O(rows+cols).
func (s Set) ApplyWithSpacing(g *grid.Grid, h float64) error {
	if g == nil {
		return ErrNilGrid
	}
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return ErrBadSpacing
	}

	rows, cols := g.Rows(), g.Cols()
	top, sub := g.RowView(0), g.RowView(1)
	bot, sup := g.RowView(rows-1), g.RowView(rows-2)

	// Top edge.
	switch s.Top.Kind {
	case Dirichlet:
		for j := 0; j < cols; j++ {
			top[j] = s.Top.Value
		}
	case Neumann:
		for j := 1; j < cols-1; j++ {
			top[j] = sub[j] + s.Top.Value*h
		}
	}

	// Bottom edge.
	switch s.Bottom.Kind {
	case Dirichlet:
		for j := 0; j < cols; j++ {
			bot[j] = s.Bottom.Value
		}
	case Neumann:
		for j := 1; j < cols-1; j++ {
			bot[j] = sup[j] - s.Bottom.Value*h
		}
	}

	// Left edge.
	switch s.Left.Kind {
	case Dirichlet:
		for i := 0; i < rows; i++ {
			g.RowView(i)[0] = s.Left.Value
		}
	case Neumann:
		for i := 1; i < rows-1; i++ {
			row := g.RowView(i)
			row[0] = row[1] + s.Left.Value*h
		}
	}

	// Right edge.
	switch s.Right.Kind {
	case Dirichlet:
		for i := 0; i < rows; i++ {
			g.RowView(i)[cols-1] = s.Right.Value
		}
	case Neumann:
		for i := 1; i < rows-1; i++ {
			row := g.RowView(i)
			row[cols-1] = row[cols-2] - s.Right.Value*h
		}
	}

	return nil
}
