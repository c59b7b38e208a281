package solver

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultDepthThreshold is the search depth below which branches are
// dispatched as parallel tasks; at or past this depth, a branch runs
// in-line via the sequential backtracker (C6).
const DefaultDepthThreshold = 2

// errSolutionFound is a sentinel returned up the errgroup call chain to
// trigger cooperative cancellation of sibling tasks the moment any branch
// succeeds. It carries no payload; the winning board is recorded
// separately in solutionBox under a mutex, since errgroup.Wait only
// surfaces the first non-nil error, not an arbitrary value.
var errSolutionFound = errors.New("solution found")

// solutionBox is a single-producer-wins slot for the first solved board
// observed by any task in a SolveParallel call.
type solutionBox struct {
	mu    sync.Mutex
	board *Board
}

func (s *solutionBox) trySet(b *Board) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.board == nil {
		s.board = b
	}
}

func (s *solutionBox) get() (*Board, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board, s.board != nil
}

// SolveParallel is C7: a task-parallel depth-first search. Each candidate
// digit at the current branch point is dispatched as an independent task
// (its own board clone) while depth is below DefaultDepthThreshold; past
// that depth the remaining search runs in-line via SolveSequential. The
// first task to find a solution wins — sibling tasks are asked to stop via
// ctx cancellation but are not forcibly interrupted, matching the spec's
// cooperative-advisory cancellation contract. workers bounds the number of
// concurrently running tasks at each fan-out point; values less than 1 are
// treated as 1.
func SolveParallel(ctx context.Context, root *Board, workers int) (*Board, bool) {
	if workers < 1 {
		workers = 1
	}
	box := &solutionBox{}
	_ = solveBranch(ctx, root, 0, workers, box)
	return box.get()
}

func solveBranch(ctx context.Context, b *Board, depth, workers int, box *solutionBox) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	idx := b.FirstEmptyCell()
	if idx == -1 {
		box.trySet(b)
		return errSolutionFound
	}

	if depth >= DefaultDepthThreshold {
		if solved, ok := SolveSequential(b); ok {
			box.trySet(solved)
			return errSolutionFound
		}
		return nil
	}

	digits := b.Candidates(idx).digits(b.BoardSize)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, d := range digits {
		d := d
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			clone := b.Clone()
			clone.resolve(idx, d)
			eliminatePeers(clone, idx, d)

			if !Propagate(clone) {
				return nil
			}
			return solveBranch(gctx, clone, depth+1, workers, box)
		})
	}
	return g.Wait()
}
