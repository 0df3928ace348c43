package boundary

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for condition construction and application.
var (
	// ErrNonFiniteValue indicates a condition value of NaN or ±Inf.
	ErrNonFiniteValue = errors.New("boundary: condition value must be finite")
	// ErrUnknownKind indicates a Kind outside {Dirichlet, Neumann}.
	ErrUnknownKind = errors.New("boundary: unknown condition kind")
	// ErrNilGrid indicates Apply was called with a nil grid.
	ErrNilGrid = errors.New("boundary: grid is nil")
	// ErrBadSpacing indicates a non-finite or non-positive grid spacing.
	ErrBadSpacing = errors.New("boundary: spacing must be finite and positive")
)

// Kind selects the boundary-condition semantics for one edge.
type Kind int

const (
	// Dirichlet fixes the field value on the edge.
	Dirichlet Kind = iota
	// Neumann fixes the normal derivative (gradient) at the edge.
	Neumann
)

// String returns the lowercase name used in CLI flags and logs.
func (k Kind) String() string {
	switch k {
	case Dirichlet:
		return "dirichlet"
	case Neumann:
		return "neumann"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Condition pairs a Kind with its numeric value: the fixed field value
// for Dirichlet, the fixed normal gradient for Neumann.
type Condition struct {
	Kind  Kind
	Value float64
}

// validate rejects unknown kinds and non-finite values.
func (c Condition) validate() error {
	if c.Kind != Dirichlet && c.Kind != Neumann {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(c.Kind))
	}
	if math.IsNaN(c.Value) || math.IsInf(c.Value, 0) {
		return fmt.Errorf("%w: %s=%v", ErrNonFiniteValue, c.Kind, c.Value)
	}

	return nil
}

// Set holds exactly one Condition per edge. Construct via NewSet or
// Uniform; a Set is immutable by value during a solve.
type Set struct {
	Top, Bottom, Left, Right Condition
}

// NewSet validates all four conditions and returns the Set.
// Returns ErrUnknownKind or ErrNonFiniteValue naming the offending edge.
func NewSet(top, bottom, left, right Condition) (Set, error) {
	edges := []struct {
		name string
		cond Condition
	}{
		{"top", top}, {"bottom", bottom}, {"left", left}, {"right", right},
	}
	for _, e := range edges {
		if err := e.cond.validate(); err != nil {
			return Set{}, fmt.Errorf("%s edge: %w", e.name, err)
		}
	}

	return Set{Top: top, Bottom: bottom, Left: left, Right: right}, nil
}

// Uniform builds a Set with the same kind and value on every edge.
func Uniform(k Kind, v float64) (Set, error) {
	c := Condition{Kind: k, Value: v}

	return NewSet(c, c, c, c)
}
