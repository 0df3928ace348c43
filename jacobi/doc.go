// Package jacobi relaxes a rectangular grid toward the steady state of
// the 2D Laplace equation ∇²u = 0 under per-edge Dirichlet/Neumann
// boundary conditions.
//
// 🚀 What is Jacobi iteration?
//
//	Each sweep replaces every interior point with the average of its four
//	nearest neighbors — the 5-point-stencil discretization of the
//	Laplacian. Updates read only the previous sweep's values (double
//	buffering), which is what distinguishes Jacobi from Gauss-Seidel.
//	The sweep repeats until the residual (max absolute per-cell change)
//	drops below a tolerance, the iteration budget runs out, or the caller
//	cancels.
//
// ✨ Key features:
//   - one IterationRecord per sweep: iteration index, owned grid
//     snapshot, residual — consumable live via WithOnIteration or
//     retained via WithHistory
//   - cooperative cancellation through WithContext, checked at the top
//     of every iteration
//   - non-convergence is a terminal state (MaxIterationsReached), not an
//     error; only numeric instability (NaN/Inf) aborts the solve hard
//
// ⚙️ Usage:
//
//	cfg := jacobi.Config{Rows: 30, Cols: 30, MaxIterations: 200, Tolerance: 1e-4}
//	bcs, _ := boundary.Uniform(boundary.Dirichlet, 0)
//	bcs.Top = boundary.Condition{Kind: boundary.Dirichlet, Value: 100}
//
//	res, err := jacobi.Solve(cfg, bcs,
//	    jacobi.WithContext(ctx),
//	    jacobi.WithOnIteration(func(rec jacobi.IterationRecord) {
//	        // rec.Grid is an owned clone; render or inspect freely
//	    }),
//	)
//
// Performance:
//
//   - Time:   O(rows·cols) per iteration
//   - Memory: two working buffers plus one clone per emitted record
package jacobi
