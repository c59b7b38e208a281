package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sudoku-api/internal/checker"
	"sudoku-api/internal/config"
	"sudoku-api/internal/ioformat"
	"sudoku-api/internal/solver"
)

// usageError, ioError, and internalError distinguish the §7 error
// taxonomy's exit codes: a usage error (missing/unknown flag) exits 1,
// everything touching the filesystem, the puzzle data, or the solver's own
// correctness exits -1.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

type ioError struct{ err error }

func (e ioError) Error() string { return e.err.Error() }
func (e ioError) Unwrap() error { return e.err }

// internalError marks a bug in the solver itself (§7 item 5: a checked
// invariant that should be unreachable). It is never shown with a stack
// trace to an ordinary user — see checker.AssertClean and Execute below.
type internalError struct{ err error }

func (e internalError) Error() string { return e.err.Error() }
func (e internalError) Unwrap() error { return e.err }

var inputPath string

// aliasValue lets -f/--file and -i/--input write into the same string, so
// whichever of the two is parsed later on the command line wins, per §6's
// "value overrides -f if provided later" — pflag calls Set in command-line
// order, so the last Set call simply leaves the later value in place.
type aliasValue struct{ target *string }

func (a *aliasValue) String() string   { return *a.target }
func (a *aliasValue) Set(s string) error { *a.target = s; return nil }
func (a *aliasValue) Type() string     { return "string" }

var workerHint int

var rootCmd = &cobra.Command{
	Use:           "sudoku",
	Short:         "Solve a generalized N²×N² Sudoku puzzle",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSolve,
}

func init() {
	rootCmd.Flags().VarP(&aliasValue{&inputPath}, "file", "f", "input puzzle file (required)")
	rootCmd.Flags().VarP(&aliasValue{&inputPath}, "input", "i", "legacy alias for -f; overrides it if given later")
	rootCmd.Flags().IntVarP(&workerHint, "workers", "n", 1, "worker count hint for the parallel backtracker")
	rootCmd.Flags().BoolP("help", "?", false, "show usage")
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(os.Stderr, cmd.UsageString())
		os.Exit(1)
	})
}

// Execute runs the root command and maps its result to the §6/§7 exit codes:
// 0 success, 1 bad usage, -1 unreadable input/output or malformed puzzle
// data. main passes the result to os.Exit; apart from the help function,
// which exits 1 itself, everything below returns ordinary errors.
func Execute() int {
	err := rootCmd.Execute()
	var ue usageError
	var ie ioError
	var ne internalError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &ue):
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, rootCmd.UsageString())
		return 1
	case errors.As(err, &ie):
		fmt.Fprintln(os.Stderr, err)
		return -1
	case errors.As(err, &ne):
		// Already logged via slog in runSolve with full violation detail;
		// the message shown here is deliberately generic, per §7's "never
		// surface internal-inconsistency detail to users."
		fmt.Fprintln(os.Stderr, "internal error: the solver produced an invalid result")
		return -1
	default:
		// cobra's own flag-parsing failures (unknown flag, bad int, ...)
		// land here as plain errors: treat as usage errors.
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, rootCmd.UsageString())
		return 1
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(inputPath, workerHint)
	if err != nil {
		return usageError{err}
	}

	n, givens, err := ioformat.ReadPuzzle(cfg.InputPath)
	if err != nil {
		return ioError{err}
	}

	board, err := solver.NewBoard(n, givens)
	if err != nil {
		return ioError{fmt.Errorf("malformed puzzle: %w", err)}
	}

	slog.Debug("starting solve", "input", cfg.InputPath, "n", n, "workers", cfg.Workers)

	start := time.Now()
	ctx := context.Background()
	solved, ok := solver.Solve(ctx, board, cfg.Workers)
	elapsed := time.Since(start)

	if !ok {
		fmt.Println("No Solution")
		fmt.Fprintf(os.Stderr, "solve time: %s\n", elapsed)
		return nil
	}

	if violations := checker.CheckSolution(solved, givens); len(violations) > 0 {
		for _, v := range violations {
			slog.Error("internal inconsistency", "violation", v.String())
		}
		// Panics only when SUDOKU_DEBUG_ASSERTIONS is set; otherwise falls
		// through to a clean, non-zero exit with no stack trace.
		checker.AssertClean(violations)
		return internalError{fmt.Errorf("solver produced an invalid board (%s)", violations[0])}
	}

	outPath := ioformat.OutputPath(cfg.InputPath)
	if err := ioformat.WriteSolution(outPath, n, solved.Digits()); err != nil {
		return ioError{err}
	}

	slog.Debug("solve complete", "output", outPath, "elapsed", elapsed)
	fmt.Fprintf(os.Stderr, "solve time: %s\n", elapsed)
	return nil
}
