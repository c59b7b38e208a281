package solver

import "context"

// Solve is the C8 facade: seed peer exclusions for every given clue, run
// propagation to a fixed point, then hand off to the parallel backtracker.
// Returns the solved board and true, or (nil, false) if the puzzle (as
// given) is inconsistent or has no solution. workers bounds the
// concurrency of the parallel search; it is typically derived from the
// CLI's -n flag.
func Solve(ctx context.Context, b *Board, workers int) (*Board, bool) {
	// Reject conflicting givens (P7) up front: IsValid reads resolved
	// values directly and is unaffected by the candidate-mask corruption
	// that peer elimination would otherwise leave on a clashing pair of
	// given cells (each seeing the other as a peer holding its own digit).
	if !b.IsValid() {
		return nil, false
	}

	for idx, c := range b.Cells {
		if !c.isEmpty() {
			eliminatePeers(b, idx, c.value())
		}
	}

	if !Propagate(b) {
		return nil, false
	}

	return SolveParallel(ctx, b, workers)
}
