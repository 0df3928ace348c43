// Command laplace solves the steady-state heat equation on a rectangular
// plate and writes heatmap frames plus a convergence plot.
//
// Usage:
//
//	laplace --rows 30 --cols 30 --top dirichlet=100 --out media
//	laplace --max-iterations 2000 --tolerance 1e-6 --left neumann=0 --right neumann=0
//
// Ctrl-C aborts the solve cooperatively; frames written so far are kept.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
