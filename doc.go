// Package laplace is a small toolkit for solving the 2D Laplace equation
// ∇²u = 0 on a rectangular grid and watching the solution converge.
//
// 🚀 What is laplace?
//
//	A Jacobi finite-difference solver with mixed Dirichlet/Neumann boundary
//	conditions, built for step-by-step observation:
//		• grid/     — the dense scalar field (rows × cols, float64)
//		• boundary/ — per-edge Dirichlet (fixed value) and Neumann (fixed
//		  gradient) conditions with a documented corner policy
//		• jacobi/   — the iterative solver: 5-point stencil, double
//		  buffering, residual tracking, cooperative cancellation
//		• render/   — turns per-iteration snapshots into PNG heatmap
//		  frames and a convergence plot
//		• cmd/laplace — command-line front end
//
// ✨ Why choose laplace?
//
//   - Observable – one IterationRecord per sweep, so callers can report
//     progress or render partial history while the solve is running
//   - Cancellable – pass a context; the solver checks it every iteration
//   - Deterministic – no global state, explicit corner precedence,
//     double-buffered Jacobi semantics (never Gauss-Seidel by accident)
//   - Honest about non-convergence – hitting the iteration budget is a
//     reported terminal state, not an error
//
// Quick example:
//
//	cfg := jacobi.Config{Rows: 30, Cols: 30, MaxIterations: 200, Tolerance: 1e-4}
//	bcs, _ := boundary.NewSet(
//	    boundary.Condition{Kind: boundary.Dirichlet, Value: 100}, // top
//	    boundary.Condition{Kind: boundary.Dirichlet, Value: 0},   // bottom
//	    boundary.Condition{Kind: boundary.Dirichlet, Value: 0},   // left
//	    boundary.Condition{Kind: boundary.Dirichlet, Value: 0},   // right
//	)
//	res, err := jacobi.Solve(cfg, bcs)
//
// Dive into the package docs for the full API, and cmd/laplace for the
// ready-made front end.
//
//	go get github.com/relaxfield/laplace
package laplace
