package jacobi_test

import (
	"fmt"

	"github.com/relaxfield/laplace/boundary"
	"github.com/relaxfield/laplace/jacobi"
)

// ExampleSolve demonstrates the fixed-point case: a field seeded at the
// same value as all four Dirichlet edges converges on the first sweep.
func ExampleSolve() {
	set, _ := boundary.Uniform(boundary.Dirichlet, 5)
	cfg := jacobi.Config{Rows: 8, Cols: 8, MaxIterations: 100, Tolerance: 1e-6}

	res, err := jacobi.Solve(cfg, set, jacobi.WithInitialValue(5))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s after %d iteration(s), residual %.1f\n", res.State, res.Iterations, res.Residual)
	// Output:
	// Converged after 1 iteration(s), residual 0.0
}

// ExampleSolve_ramp solves the 1D-reducible case: Dirichlet top/bottom,
// zero-gradient Neumann sides. The steady state is a linear ramp, printed
// here for one interior column.
func ExampleSolve_ramp() {
	set, _ := boundary.NewSet(
		boundary.Condition{Kind: boundary.Dirichlet, Value: 100}, // top
		boundary.Condition{Kind: boundary.Dirichlet, Value: 0},   // bottom
		boundary.Condition{Kind: boundary.Neumann, Value: 0},     // left
		boundary.Condition{Kind: boundary.Neumann, Value: 0},     // right
	)
	cfg := jacobi.Config{Rows: 5, Cols: 4, MaxIterations: 10_000, Tolerance: 1e-8}

	res, err := jacobi.Solve(cfg, set)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("state:", res.State)
	for i := 0; i < cfg.Rows; i++ {
		v, _ := res.Grid.At(i, 1)
		fmt.Printf("row %d: %.0f\n", i, v)
	}
	// Output:
	// state: Converged
	// row 0: 100
	// row 1: 75
	// row 2: 50
	// row 3: 25
	// row 4: 0
}
