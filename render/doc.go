// Package render consumes solver iteration records and produces
// visualization artifacts on disk: one PNG heatmap per recorded sweep
// and a convergence plot of the residual history.
//
// It is a downstream consumer of the jacobi package — the solver never
// depends on it. Recorder bundles frame writing and residual collection
// behind a single method with the WithOnIteration callback shape:
//
//	rec, _ := render.NewRecorder("media", 0)
//	res, err := jacobi.Solve(cfg, bcs, jacobi.WithOnIteration(rec.Record))
//	frames, cerr := rec.Close()
//
// Video assembly, palette design, and camera framing are out of scope;
// frames are plain files the caller may post-process however they like.
package render
