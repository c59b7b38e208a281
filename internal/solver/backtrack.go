package solver

// SolveSequential runs a depth-first branch-and-propagate search starting
// from b. It returns the solved board and true on success, or (nil, false)
// if the subtree rooted at b has no solution. b itself is never mutated;
// every branch explores its own clone.
//
// Re-architected per the spec's design note: the original sources signal
// "no solution" with a nil/null board pointer; here that is made explicit
// with the second return value rather than relying on callers to treat a
// nil *Board as meaningful on its own.
func SolveSequential(b *Board) (*Board, bool) {
	idx := b.FirstEmptyCell()
	if idx == -1 {
		return b, true
	}

	mask := b.Candidates(idx)
	for _, d := range mask.digits(b.BoardSize) {
		clone := b.Clone()
		clone.resolve(idx, d)
		eliminatePeers(clone, idx, d)

		if !Propagate(clone) {
			continue
		}

		if solved, ok := SolveSequential(clone); ok {
			return solved, true
		}
	}
	return nil, false
}
