package jacobi

import (
	"fmt"
	"math"

	"github.com/relaxfield/laplace/boundary"
	"github.com/relaxfield/laplace/grid"
)

// Solve relaxes a cfg.Rows × cfg.Cols field toward the Laplace steady
// state under bcs, applying any number of functional Options.
//
// Each iteration, in order:
//  1. cancellation check (ctx done → Aborted, records kept, nil error)
//  2. bcs applied to the current buffer
//  3. Jacobi sweep: every interior point of the next buffer set to the
//     4-neighbor average of the current buffer (double-buffered)
//  4. residual = max |next − current| over interior points
//  5. non-finite scan of the swept buffer → ErrNumericInstability
//  6. buffers swapped; IterationRecord emitted with a clone of the new
//     current buffer
//  7. residual < cfg.Tolerance → Converged; budget exhausted →
//     MaxIterationsReached; otherwise next iteration
//
// Converged, MaxIterationsReached, and Aborted are all ordinary terminal
// states returned with a nil error. Only configuration problems
// (ErrInvalidDimension, ErrParameterRange) and ErrNumericInstability are
// errors; configuration errors are raised before any iteration runs.
//
// Solve is synchronous, owns its buffers exclusively, and touches no
// package state, so it is safe to call from any goroutine and to run
// concurrently with other Solve calls.
func Solve(cfg Config, bcs boundary.Set, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	cur, err := grid.NewFilled(cfg.Rows, cfg.Cols, o.Initial)
	if err != nil {
		return nil, err
	}
	next, err := grid.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}

	s := &sweeper{cfg: cfg, bcs: bcs, opts: o, cur: cur, next: next}

	return s.run()
}

// sweeper encapsulates the mutable state of one solve.
type sweeper struct {
	cfg  Config
	bcs  boundary.Set
	opts Options
	cur  *grid.Grid // field state entering the sweep
	next *grid.Grid // double buffer written by the sweep
	res  Result
}

// run drives the iteration loop to a terminal state.
func (s *sweeper) run() (*Result, error) {
	s.res.State = Running
	for iter := 0; iter < s.cfg.MaxIterations; iter++ {
		// cancellation check, once per iteration
		select {
		case <-s.opts.Ctx.Done():
			s.res.State = Aborted

			return s.finish(), nil
		default:
		}

		if err := s.bcs.ApplyWithSpacing(s.cur, s.opts.Spacing); err != nil {
			return nil, err
		}

		residual := s.relax()
		if s.next.HasNonFinite() {
			return nil, fmt.Errorf("%w: after iteration %d", ErrNumericInstability, iter)
		}

		// swap buffers: next becomes the field state, the old current is
		// recycled as the scratch buffer for the following sweep
		s.cur, s.next = s.next, s.cur
		s.emit(iter, residual)

		if residual < s.cfg.Tolerance {
			s.res.State = Converged

			return s.finish(), nil
		}
	}
	s.res.State = MaxIterationsReached

	return s.finish(), nil
}

// relax copies the current buffer into next and overwrites every interior
// point with the 4-neighbor average of the current buffer, returning the
// max absolute interior change. Reading exclusively from cur preserves
// Jacobi (as opposed to Gauss-Seidel) semantics.
func (s *sweeper) relax() float64 {
	// carries boundary rows/columns over; interior is overwritten below
	_ = s.next.CopyFrom(s.cur)

	rows, cols := s.cfg.Rows, s.cfg.Cols
	var residual float64
	for i := 1; i < rows-1; i++ {
		up := s.cur.RowView(i - 1)
		mid := s.cur.RowView(i)
		down := s.cur.RowView(i + 1)
		dst := s.next.RowView(i)
		for j := 1; j < cols-1; j++ {
			v := (up[j] + down[j] + mid[j-1] + mid[j+1]) / 4
			if d := math.Abs(v - mid[j]); d > residual {
				residual = d
			}
			dst[j] = v
		}
	}

	return residual
}

// emit hands one record to the caller and updates the running summary.
// The snapshot is a clone, so the next sweep's in-place mutation can
// never race with a consumer holding the record.
func (s *sweeper) emit(iter int, residual float64) {
	rec := IterationRecord{Iteration: iter, Grid: s.cur.Clone(), Residual: residual}
	s.opts.OnIteration(rec)
	if s.opts.History {
		s.res.History = append(s.res.History, rec)
	}
	s.res.Iterations = iter + 1
	s.res.Residual = residual
}

// finish seals the Result with a clone of the final field.
func (s *sweeper) finish() *Result {
	s.res.Grid = s.cur.Clone()

	return &s.res
}
