package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/relaxfield/laplace/boundary"
	"github.com/relaxfield/laplace/jacobi"
	"github.com/relaxfield/laplace/render"
)

// targetFrames is the rough number of heatmap frames a default run
// produces; the stride is derived from the iteration budget.
const targetFrames = 25

var (
	flagRows    int
	flagCols    int
	flagMaxIter int
	flagTol     float64
	flagSpacing float64
	flagInitial float64
	flagTop     string
	flagBottom  string
	flagLeft    string
	flagRight   string
	flagOut     string
	flagEvery   int
	flagQuiet   bool

	rootCmd = &cobra.Command{
		Use:   "laplace",
		Short: "Jacobi relaxation solver for the 2D Laplace equation",
		Long: `laplace iterates a rectangular temperature field toward steady state
under per-edge Dirichlet (fixed value) or Neumann (fixed gradient)
boundary conditions, writing PNG heatmap frames and a convergence plot.`,
		SilenceUsage: true,
		RunE:         runSolve,
	}
)

func init() {
	f := rootCmd.Flags()
	f.IntVar(&flagRows, "rows", 30, "grid rows")
	f.IntVar(&flagCols, "cols", 30, "grid columns")
	f.IntVar(&flagMaxIter, "max-iterations", 200, "iteration budget")
	f.Float64Var(&flagTol, "tolerance", 1e-4, "convergence threshold on the residual")
	f.Float64Var(&flagSpacing, "spacing", 1, "grid step used by Neumann differences")
	f.Float64Var(&flagInitial, "initial", 0, "initial interior value")
	f.StringVar(&flagTop, "top", "dirichlet=100", "top edge condition, kind=value")
	f.StringVar(&flagBottom, "bottom", "dirichlet=0", "bottom edge condition, kind=value")
	f.StringVar(&flagLeft, "left", "dirichlet=0", "left edge condition, kind=value")
	f.StringVar(&flagRight, "right", "dirichlet=0", "right edge condition, kind=value")
	f.StringVar(&flagOut, "out", "media", "output directory for frames and plots")
	f.IntVar(&flagEvery, "every", 0, "write every n-th frame (0 derives a stride from the budget)")
	f.BoolVar(&flagQuiet, "quiet", false, "suppress per-run progress logging")
}

// parseCondition parses "dirichlet=100" or "neumann=0" into a Condition.
func parseCondition(s string) (boundary.Condition, error) {
	kindStr, valStr, ok := strings.Cut(s, "=")
	if !ok {
		return boundary.Condition{}, fmt.Errorf("want kind=value, got %q", s)
	}

	var kind boundary.Kind
	switch strings.ToLower(strings.TrimSpace(kindStr)) {
	case "dirichlet":
		kind = boundary.Dirichlet
	case "neumann":
		kind = boundary.Neumann
	default:
		return boundary.Condition{}, fmt.Errorf("unknown condition kind %q", kindStr)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(valStr), 64)
	if err != nil {
		return boundary.Condition{}, fmt.Errorf("bad value in %q: %w", s, err)
	}

	return boundary.Condition{Kind: kind, Value: v}, nil
}

// frameStride derives the subsampling stride from the iteration budget
// so a run yields roughly targetFrames frames.
func frameStride(maxIter int) int {
	stride := maxIter / targetFrames
	if stride < 1 {
		stride = 1
	}

	return stride
}

func runSolve(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if flagQuiet {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	}

	top, err := parseCondition(flagTop)
	if err != nil {
		return fmt.Errorf("--top: %w", err)
	}
	bottom, err := parseCondition(flagBottom)
	if err != nil {
		return fmt.Errorf("--bottom: %w", err)
	}
	left, err := parseCondition(flagLeft)
	if err != nil {
		return fmt.Errorf("--left: %w", err)
	}
	right, err := parseCondition(flagRight)
	if err != nil {
		return fmt.Errorf("--right: %w", err)
	}

	set, err := boundary.NewSet(top, bottom, left, right)
	if err != nil {
		return err
	}

	cfg := jacobi.Config{
		Rows:          flagRows,
		Cols:          flagCols,
		MaxIterations: flagMaxIter,
		Tolerance:     flagTol,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	every := flagEvery
	if every < 1 {
		every = frameStride(flagMaxIter)
	}
	rec, err := render.NewRecorder(flagOut, every)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("solve starting",
		"rows", flagRows, "cols", flagCols,
		"max_iterations", flagMaxIter, "tolerance", flagTol,
		"out", flagOut, "every", every)

	onIteration := func(r jacobi.IterationRecord) {
		if r.Iteration%every == 0 {
			logger.Info("iteration", "n", r.Iteration, "residual", r.Residual)
		}
		rec.Record(r)
	}

	res, err := jacobi.Solve(cfg, set,
		jacobi.WithContext(ctx),
		jacobi.WithInitialValue(flagInitial),
		jacobi.WithSpacing(flagSpacing),
		jacobi.WithOnIteration(onIteration),
	)
	if err != nil {
		return err
	}

	frames, cerr := rec.Close()
	if cerr != nil {
		return cerr
	}

	logger.Info("solve finished",
		"state", res.State.String(),
		"iterations", res.Iterations,
		"residual", res.Residual,
		"frames", frames)

	if res.State == jacobi.MaxIterationsReached {
		logger.Warn("iteration budget exhausted before convergence",
			"residual", res.Residual, "tolerance", flagTol)
	}

	return nil
}
