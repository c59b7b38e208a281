package solver

import "sync"

// peerTables holds, for a given N, every row/column/box index list and the
// row/column/box peer lists for each cell. Generalizes the teacher's
// package-level init() (fixed at GridSize=9) into a per-N memoized builder,
// since this engine must support N in [1, MaxN].
type peerTables struct {
	rowIndices, colIndices, boxIndices [][]int
	rowPeers, colPeers, boxPeers       [][]int
	peers                              [][]int
}

var peerTableCache sync.Map // int(N) -> *peerTables

// getPeerTables returns the (memoized) peer tables for box side n.
func getPeerTables(n int) *peerTables {
	if v, ok := peerTableCache.Load(n); ok {
		return v.(*peerTables)
	}
	pt := buildPeerTables(n)
	actual, _ := peerTableCache.LoadOrStore(n, pt)
	return actual.(*peerTables)
}

func buildPeerTables(n int) *peerTables {
	boardSize := n * n
	total := boardSize * boardSize

	pt := &peerTables{
		rowIndices: make([][]int, boardSize),
		colIndices: make([][]int, boardSize),
		boxIndices: make([][]int, boardSize),
		rowPeers:   make([][]int, total),
		colPeers:   make([][]int, total),
		boxPeers:   make([][]int, total),
		peers:      make([][]int, total),
	}

	for row := 0; row < boardSize; row++ {
		for col := 0; col < boardSize; col++ {
			idx := row*boardSize + col
			pt.rowIndices[row] = append(pt.rowIndices[row], idx)
			pt.colIndices[col] = append(pt.colIndices[col], idx)
			box := (row/n)*n + col/n
			pt.boxIndices[box] = append(pt.boxIndices[box], idx)
		}
	}

	for idx := 0; idx < total; idx++ {
		row, col := idx/boardSize, idx%boardSize
		box := (row/n)*n + col/n

		seen := make(map[int]bool)
		for _, other := range pt.rowIndices[row] {
			if other != idx {
				pt.rowPeers[idx] = append(pt.rowPeers[idx], other)
				seen[other] = true
			}
		}
		for _, other := range pt.colIndices[col] {
			if other != idx {
				pt.colPeers[idx] = append(pt.colPeers[idx], other)
				seen[other] = true
			}
		}
		for _, other := range pt.boxIndices[box] {
			if other != idx {
				pt.boxPeers[idx] = append(pt.boxPeers[idx], other)
				seen[other] = true
			}
		}
		for other := range seen {
			pt.peers[idx] = append(pt.peers[idx], other)
		}
	}

	return pt
}

// eliminatePeers clears digit d from the candidate mask of every peer of
// idx (its row, column, and box), given that idx has just been resolved to
// d. idx itself is left untouched and no peer's value field changes; a
// resolved peer loses bit d only if it holds d itself (a clash). O(N²) per
// call.
func eliminatePeers(b *Board, idx, d int) {
	pt := getPeerTables(b.N)
	for _, peer := range pt.peers[idx] {
		if b.Cells[peer].hasCandidate(d) {
			b.Cells[peer] = b.Cells[peer].clearCandidate(d)
		}
	}
}
