package grid

import "errors"

var (
	// ErrInvalidDimension indicates rows or cols below the 2×2 minimum
	// (a 5-point stencil needs at least one interior point per axis).
	ErrInvalidDimension = errors.New("grid: rows and cols must each be at least 2")
	// ErrOutOfRange indicates an index outside [0,rows)×[0,cols).
	ErrOutOfRange = errors.New("grid: index out of range")
	// ErrShapeMismatch indicates two grids of differing dimensions.
	ErrShapeMismatch = errors.New("grid: grids must have identical dimensions")
	// ErrNilGrid indicates a nil *Grid was passed where a field is required.
	ErrNilGrid = errors.New("grid: grid is nil")
)
