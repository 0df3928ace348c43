package boundary_test

import (
	"math"
	"testing"

	"github.com/relaxfield/laplace/boundary"
	"github.com/relaxfield/laplace/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dirichlet(v float64) boundary.Condition {
	return boundary.Condition{Kind: boundary.Dirichlet, Value: v}
}

func neumann(v float64) boundary.Condition {
	return boundary.Condition{Kind: boundary.Neumann, Value: v}
}

// TestNewSet_NonFiniteValue rejects NaN and ±Inf on any edge.
func TestNewSet_NonFiniteValue(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := boundary.NewSet(dirichlet(bad), dirichlet(0), dirichlet(0), dirichlet(0))
		assert.ErrorIs(t, err, boundary.ErrNonFiniteValue, "value %v", bad)
	}

	// the edge name must survive wrapping
	_, err := boundary.NewSet(dirichlet(0), neumann(math.NaN()), dirichlet(0), dirichlet(0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bottom edge")
}

// TestNewSet_UnknownKind rejects kinds outside the enum.
func TestNewSet_UnknownKind(t *testing.T) {
	bad := boundary.Condition{Kind: boundary.Kind(7), Value: 0}
	_, err := boundary.NewSet(bad, dirichlet(0), dirichlet(0), dirichlet(0))
	assert.ErrorIs(t, err, boundary.ErrUnknownKind)
}

// TestApply_DirichletEdges verifies each Dirichlet edge covers its full
// row/column.
func TestApply_DirichletEdges(t *testing.T) {
	g, err := grid.New(4, 5)
	require.NoError(t, err)
	set, err := boundary.NewSet(dirichlet(10), dirichlet(20), dirichlet(30), dirichlet(40))
	require.NoError(t, err)

	require.NoError(t, set.Apply(g))

	// interior columns of top and bottom rows
	for j := 1; j < 4; j++ {
		top, _ := g.At(0, j)
		bot, _ := g.At(3, j)
		assert.Equal(t, 10.0, top, "top row col %d", j)
		assert.Equal(t, 20.0, bot, "bottom row col %d", j)
	}
	// interior rows of left and right columns
	for i := 1; i < 3; i++ {
		left, _ := g.At(i, 0)
		right, _ := g.At(i, 4)
		assert.Equal(t, 30.0, left, "left col row %d", i)
		assert.Equal(t, 40.0, right, "right col row %d", i)
	}
	// interior untouched
	center, _ := g.At(2, 2)
	assert.Equal(t, 0.0, center)
}

// TestApply_CornerPrecedence pins the documented policy: edges are written
// Top, Bottom, Left, Right with later writes winning, so Left/Right own
// all four corners when adjacent Dirichlet edges disagree.
func TestApply_CornerPrecedence(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)
	set, err := boundary.NewSet(dirichlet(1), dirichlet(2), dirichlet(3), dirichlet(4))
	require.NoError(t, err)

	require.NoError(t, set.Apply(g))

	topLeft, _ := g.At(0, 0)
	botLeft, _ := g.At(3, 0)
	topRight, _ := g.At(0, 3)
	botRight, _ := g.At(3, 3)
	assert.Equal(t, 3.0, topLeft, "left edge owns the top-left corner")
	assert.Equal(t, 3.0, botLeft, "left edge owns the bottom-left corner")
	assert.Equal(t, 4.0, topRight, "right edge owns the top-right corner")
	assert.Equal(t, 4.0, botRight, "right edge owns the bottom-right corner")
}

// TestApply_NeumannTop verifies the one-sided difference and that Neumann
// writes skip corners.
func TestApply_NeumannTop(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)
	// distinguishable interior row adjacent to the top edge
	for j := 0; j < 4; j++ {
		require.NoError(t, g.Set(1, j, float64(j)+1))
	}
	set, err := boundary.NewSet(neumann(0.5), dirichlet(0), neumann(0), neumann(0))
	require.NoError(t, err)

	require.NoError(t, set.Apply(g))

	for j := 1; j < 3; j++ {
		v, _ := g.At(0, j)
		interior, _ := g.At(1, j)
		assert.Equal(t, interior+0.5, v, "top[%d] = interior + g·h", j)
	}
	// corners of the top edge are not written by the Neumann strip
	corner, _ := g.At(0, 0)
	assert.Equal(t, 0.0, corner)
}

// TestApply_NeumannSigns pins the outward-normal sign per edge: + for
// top/left, − for bottom/right.
func TestApply_NeumannSigns(t *testing.T) {
	g, err := grid.NewFilled(4, 4, 10)
	require.NoError(t, err)
	set, err := boundary.NewSet(neumann(1), neumann(1), neumann(1), neumann(1))
	require.NoError(t, err)

	require.NoError(t, set.Apply(g))

	top, _ := g.At(0, 1)
	bottom, _ := g.At(3, 1)
	left, _ := g.At(1, 0)
	right, _ := g.At(1, 3)
	assert.Equal(t, 11.0, top)
	assert.Equal(t, 9.0, bottom)
	assert.Equal(t, 11.0, left)
	assert.Equal(t, 9.0, right)
}

// TestApplyWithSpacing scales the Neumann step by h.
func TestApplyWithSpacing(t *testing.T) {
	g, err := grid.NewFilled(4, 4, 2)
	require.NoError(t, err)
	set, err := boundary.NewSet(neumann(4), dirichlet(0), dirichlet(0), dirichlet(0))
	require.NoError(t, err)

	require.NoError(t, set.ApplyWithSpacing(g, 0.25))

	v, _ := g.At(0, 1)
	assert.Equal(t, 3.0, v, "u[0][1] = u[1][1] + 4·0.25")
}

// TestApply_Idempotent verifies a second Apply reproduces the same
// boundary values for both kinds: Apply never touches the interior, so
// the Neumann source cells are unchanged between calls.
func TestApply_Idempotent(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)
	for i := 1; i < 4; i++ {
		for j := 1; j < 4; j++ {
			require.NoError(t, g.Set(i, j, float64(i*5+j)))
		}
	}
	set, err := boundary.NewSet(dirichlet(7), neumann(2), neumann(-1), dirichlet(3))
	require.NoError(t, err)

	require.NoError(t, set.Apply(g))
	first := g.Clone()
	require.NoError(t, set.Apply(g))

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			want, _ := first.At(r, c)
			got, _ := g.At(r, c)
			assert.Equal(t, want, got, "cell (%d,%d) changed on second Apply", r, c)
		}
	}
}

// TestApply_BadInputs covers nil grids and invalid spacing.
func TestApply_BadInputs(t *testing.T) {
	set, err := boundary.Uniform(boundary.Dirichlet, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, set.Apply(nil), boundary.ErrNilGrid)

	g, err := grid.New(3, 3)
	require.NoError(t, err)
	for _, h := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, set.ApplyWithSpacing(g, h), boundary.ErrBadSpacing, "spacing %v", h)
	}
}

// TestKind_String covers the flag/log names.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "dirichlet", boundary.Dirichlet.String())
	assert.Equal(t, "neumann", boundary.Neumann.String())
	assert.Equal(t, "kind(9)", boundary.Kind(9).String())
}
