package jacobi

import (
	"context"
	"fmt"
	"math"
)

// Option configures a solve via functional arguments. An invalid Option
// (non-finite seed, non-positive spacing) is recorded internally and
// surfaced as ErrParameterRange when Solve is invoked.
type Option func(*Options)

// Options holds the tunable behavior of a single Solve call.
type Options struct {
	// Ctx allows cooperative cancellation; checked at the top of each
	// iteration.
	Ctx context.Context

	// OnIteration is called once per sweep with an owned IterationRecord.
	// The solver keeps no reference to the record after the call.
	OnIteration func(IterationRecord)

	// History retains every IterationRecord on the Result. Off by default:
	// each record carries a full grid clone.
	History bool

	// Initial seeds every cell of the working grid. Default 0.
	Initial float64

	// Spacing is the grid step used by Neumann boundary differences.
	// Default 1.
	Spacing float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnIteration hook
//   - no history retention
//   - zero-seeded grid, unit spacing.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnIteration: func(IterationRecord) {},
		History:     false,
		Initial:     0,
		Spacing:     1,
		err:         nil,
	}
}

// WithContext sets a custom context for cancellation. The solver observes
// cancellation at iteration granularity and finishes with State Aborted.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnIteration registers a per-sweep callback. The record's Grid is an
// independent clone; the callback may retain or mutate it freely.
func WithOnIteration(fn func(IterationRecord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// WithHistory retains all emitted records on Result.History.
func WithHistory() Option {
	return func(o *Options) { o.History = true }
}

// WithInitialValue seeds the working grid with v instead of zero.
// Non-finite v → ErrParameterRange at Solve.
func WithInitialValue(v float64) Option {
	return func(o *Options) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			o.err = fmt.Errorf("%w: initial value %v must be finite", ErrParameterRange, v)

			return
		}
		o.Initial = v
	}
}

// WithSpacing sets the grid step h used by Neumann boundary differences.
// h must be finite and positive; otherwise ErrParameterRange at Solve.
func WithSpacing(h float64) Option {
	return func(o *Options) {
		if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
			o.err = fmt.Errorf("%w: spacing %v must be finite and positive", ErrParameterRange, h)

			return
		}
		o.Spacing = h
	}
}
