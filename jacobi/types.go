package jacobi

import (
	"errors"
	"fmt"
	"math"

	"github.com/relaxfield/laplace/grid"
)

// Sentinel errors for configuration and execution.
var (
	// ErrInvalidDimension indicates Rows or Cols outside
	// [MinDimension, MaxDimension].
	ErrInvalidDimension = errors.New("jacobi: grid dimensions out of range")

	// ErrParameterRange indicates MaxIterations, Tolerance, or an option
	// value outside its documented bounds.
	ErrParameterRange = errors.New("jacobi: parameter out of range")

	// ErrNumericInstability indicates a NaN or ±Inf appeared in the field
	// after a sweep. The solve stops immediately rather than propagating
	// non-finite values through further iterations.
	ErrNumericInstability = errors.New("jacobi: non-finite value in grid")
)

// Documented bounds for Config. Dimensions below MinDimension leave no
// interior point for the stencil; MaxDimension caps the two dense working
// buffers plus the per-iteration snapshot clones.
const (
	MinDimension     = grid.MinDimension
	MaxDimension     = 1 << 12
	MinIterations    = 1
	MaxIterationsCap = 1_000_000
)

// State is the solver's position in its lifecycle:
// Idle → Running → {Converged | MaxIterationsReached | Aborted}.
type State int

const (
	// Idle: no solve has started.
	Idle State = iota
	// Running: a sweep is in progress.
	Running
	// Converged: the residual dropped below the tolerance. Terminal.
	Converged
	// MaxIterationsReached: the iteration budget ran out before
	// convergence. Terminal, and not an error — the best available
	// result is returned.
	MaxIterationsReached
	// Aborted: the caller cancelled the solve. Terminal; records emitted
	// before the abort remain valid.
	Aborted
)

// String returns the state name used in logs and summaries.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Converged:
		return "Converged"
	case MaxIterationsReached:
		return "MaxIterationsReached"
	case Aborted:
		return "Aborted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config holds the immutable solve parameters.
type Config struct {
	// Rows, Cols define the field extent, in [MinDimension, MaxDimension].
	Rows, Cols int
	// MaxIterations is the sweep budget, in [MinIterations, MaxIterationsCap].
	MaxIterations int
	// Tolerance is the convergence threshold on the residual; must be
	// finite and strictly positive.
	Tolerance float64
}

// Validate checks every field against its documented bounds.
// Returns ErrInvalidDimension or ErrParameterRange; a valid Config
// guarantees Solve reaches its iteration loop.
func (c Config) Validate() error {
	if c.Rows < MinDimension || c.Rows > MaxDimension ||
		c.Cols < MinDimension || c.Cols > MaxDimension {
		return fmt.Errorf("%w: %d×%d not in [%d,%d]",
			ErrInvalidDimension, c.Rows, c.Cols, MinDimension, MaxDimension)
	}
	if c.MaxIterations < MinIterations || c.MaxIterations > MaxIterationsCap {
		return fmt.Errorf("%w: MaxIterations=%d not in [%d,%d]",
			ErrParameterRange, c.MaxIterations, MinIterations, MaxIterationsCap)
	}
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance <= 0 {
		return fmt.Errorf("%w: Tolerance=%v must be finite and positive",
			ErrParameterRange, c.Tolerance)
	}

	return nil
}

// IterationRecord is the per-sweep progress unit.
// Grid is an owned deep copy, never aliased to the solver's live buffers;
// ownership transfers to the consumer on emission.
type IterationRecord struct {
	// Iteration is the 0-based sweep index.
	Iteration int
	// Grid is the field state after this sweep.
	Grid *grid.Grid
	// Residual is the max absolute interior change from the previous sweep.
	Residual float64
}

// Result summarizes a finished solve: the terminal state, how many
// records were emitted, the final residual, and the final field (an owned
// clone). History is populated only under WithHistory.
type Result struct {
	State      State
	Iterations int
	Residual   float64
	Grid       *grid.Grid
	History    []IterationRecord
}
