package solver

import "fmt"

// MaxN is the largest supported box side. The spec fixes ValueBits=5, which
// bounds boardSize (N²) to 31; practically only N<=5 (boardSize<=25) is
// exercised, matching the Non-goal that rules out N>5.
const MaxN = 5

// Board is an N²×N² Sudoku grid, stored row-major. N and BoardSize are fixed
// for the board's lifetime.
type Board struct {
	N         int
	BoardSize int // N*N
	Cells     []Cell
}

// NewBoard builds a board from raw digits (0 marks an empty cell). Every
// empty cell starts with the full candidate mask 1..boardSize; the clues are
// not removed from their peers' masks here (Solve does that).
func NewBoard(n int, givens []int) (*Board, error) {
	if n < 1 || n > MaxN {
		return nil, fmt.Errorf("box side N=%d out of range [1,%d]", n, MaxN)
	}
	boardSize := n * n
	total := boardSize * boardSize
	if len(givens) != total {
		return nil, fmt.Errorf("expected %d cells for N=%d, got %d", total, n, len(givens))
	}

	b := &Board{N: n, BoardSize: boardSize, Cells: make([]Cell, total)}
	full := fullMask(boardSize)
	for i, v := range givens {
		if v < 0 || v > boardSize {
			return nil, fmt.Errorf("cell %d: digit %d out of range [0,%d]", i, v, boardSize)
		}
		if v == 0 {
			b.Cells[i] = setMask(full)
		} else {
			b.Cells[i] = encodeCell(v, CandidateMask(0).Set(v))
		}
	}
	return b, nil
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := &Board{N: b.N, BoardSize: b.BoardSize, Cells: make([]Cell, len(b.Cells))}
	copy(nb.Cells, b.Cells)
	return nb
}

// Value returns the resolved digit at idx, or 0 if empty.
func (b *Board) Value(idx int) int {
	return b.Cells[idx].value()
}

// IsEmpty reports whether the cell at idx holds no digit.
func (b *Board) IsEmpty(idx int) bool {
	return b.Cells[idx].isEmpty()
}

// Candidates returns the candidate mask at idx.
func (b *Board) Candidates(idx int) CandidateMask {
	return b.Cells[idx].candidateMask()
}

// RowOf, ColOf, BoxOf return the row/column/box number of a cell index.
func (b *Board) RowOf(idx int) int { return idx / b.BoardSize }
func (b *Board) ColOf(idx int) int { return idx % b.BoardSize }
func (b *Board) BoxOf(idx int) int {
	row, col := b.RowOf(idx), b.ColOf(idx)
	return (row/b.N)*b.N + col/b.N
}

// IndexOf returns the cell index for a given row and column.
func (b *Board) IndexOf(row, col int) int { return row*b.BoardSize + col }

// resolve sets idx's value to d and narrows its candidate mask to exactly
// {d}, satisfying the invariant that a resolved cell's mask has exactly
// one bit set (§3). Peer exclusion (C3) is the caller's responsibility.
func (b *Board) resolve(idx, d int) {
	b.Cells[idx] = encodeCell(d, CandidateMask(0).Set(d))
}

// Digits returns the resolved grid as a flat slice of ints (0 = empty).
func (b *Board) Digits() []int {
	out := make([]int, len(b.Cells))
	for i, c := range b.Cells {
		out[i] = c.value()
	}
	return out
}

// IsSolved reports whether every cell holds a digit and the board is valid.
func (b *Board) IsSolved() bool {
	for _, c := range b.Cells {
		if c.value() == 0 {
			return false
		}
	}
	return b.IsValid()
}

// IsValid reports whether the current resolved digits contain no
// row/column/box duplicates. Unresolved cells (value 0) are ignored.
func (b *Board) IsValid() bool {
	pt := getPeerTables(b.N)
	seen := make([]bool, b.BoardSize+1)

	checkUnit := func(unit []int) bool {
		for i := range seen {
			seen[i] = false
		}
		for _, idx := range unit {
			d := b.Value(idx)
			if d == 0 {
				continue
			}
			if seen[d] {
				return false
			}
			seen[d] = true
		}
		return true
	}

	for _, unit := range pt.rowIndices {
		if !checkUnit(unit) {
			return false
		}
	}
	for _, unit := range pt.colIndices {
		if !checkUnit(unit) {
			return false
		}
	}
	for _, unit := range pt.boxIndices {
		if !checkUnit(unit) {
			return false
		}
	}
	return true
}

// FirstEmptyCell returns the index of the first unresolved cell in row-major
// order, or -1 if the board is fully resolved.
func (b *Board) FirstEmptyCell() int {
	for i, c := range b.Cells {
		if c.isEmpty() {
			return i
		}
	}
	return -1
}
