package solver

import "testing"

func TestSolveSequentialAlreadySolved(t *testing.T) {
	solved := []int{
		1, 2, 3, 4,
		3, 4, 1, 2,
		2, 1, 4, 3,
		4, 3, 2, 1,
	}
	b, _ := NewBoard(2, solved)
	got, ok := SolveSequential(b)
	if !ok {
		t.Fatal("expected an already-solved board to solve")
	}
	if !got.IsSolved() {
		t.Error("returned board should be solved")
	}
}

func TestSolveSequentialEasyPuzzle(t *testing.T) {
	rows := [][]int{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
	b := boardFromRows(3, rows)
	for idx, c := range b.Cells {
		if !c.isEmpty() {
			eliminatePeers(b, idx, c.value())
		}
	}
	Propagate(b)

	solved, ok := SolveSequential(b)
	if !ok {
		t.Fatal("expected the easy puzzle to be solvable")
	}
	if !solved.IsSolved() {
		t.Error("returned board should be fully solved")
	}
	for r, row := range rows {
		for c, clue := range row {
			if clue == 0 {
				continue
			}
			idx := r*9 + c
			if solved.Value(idx) != clue {
				t.Errorf("clue at (%d,%d) overwritten: want %d got %d", r, c, clue, solved.Value(idx))
			}
		}
	}
}

func TestSolveSequentialUnsolvable(t *testing.T) {
	// 4x4: row 0 is 1,2,3,_ forcing cell (0,3) to candidate {4}, but (1,3)
	// is also given 4 — a column peer — so (0,3) ends up with zero
	// candidates once propagated.
	givens := emptyGivens(2)
	givens[0] = 1 // (0,0)
	givens[1] = 2 // (0,1)
	givens[2] = 3 // (0,2)
	givens[7] = 4 // (1,3)
	b, _ := NewBoard(2, givens)
	for idx, c := range b.Cells {
		if !c.isEmpty() {
			eliminatePeers(b, idx, c.value())
		}
	}

	if _, ok := SolveSequential(b); ok {
		t.Error("expected an inconsistent puzzle to have no solution")
	}
}

func TestSolveSequentialEmptyBoard4x4(t *testing.T) {
	b, _ := NewBoard(2, emptyGivens(2))
	solved, ok := SolveSequential(b)
	if !ok {
		t.Fatal("expected an empty 4x4 board to be solvable")
	}
	if !solved.IsSolved() || !solved.IsValid() {
		t.Error("expected a valid, fully solved 4x4 board")
	}
}
