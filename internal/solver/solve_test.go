package solver

import (
	"context"
	"testing"
)

// easyPuzzleRows is the classic "easy" 9x9 puzzle from the spec's concrete
// scenarios (scenario 2).
var easyPuzzleRows = [][]int{
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

// Scenario 1: already fully filled, valid board solves unchanged, no
// branching required.
func TestSolveScenario1TrivialFilled(t *testing.T) {
	filled := []int{
		5, 3, 4, 6, 7, 8, 9, 1, 2,
		6, 7, 2, 1, 9, 5, 3, 4, 8,
		1, 9, 8, 3, 4, 2, 5, 6, 7,
		8, 5, 9, 7, 6, 1, 4, 2, 3,
		4, 2, 6, 8, 5, 3, 7, 9, 1,
		7, 1, 3, 9, 2, 4, 8, 5, 6,
		9, 6, 1, 5, 3, 7, 2, 8, 4,
		2, 8, 7, 4, 1, 9, 6, 3, 5,
		3, 4, 5, 2, 8, 6, 1, 7, 9,
	}
	b := boardFromRows(3, chunk(filled, 9))

	solved, ok := Solve(context.Background(), b, 2)
	if !ok {
		t.Fatal("expected the already-solved board to solve")
	}
	for i, v := range filled {
		if solved.Value(i) != v {
			t.Errorf("cell %d: want %d, got %d", i, v, solved.Value(i))
		}
	}
}

// Scenario 2: the classic easy puzzle must return the unique solution
// starting 534678912...
func TestSolveScenario2EasyPuzzle(t *testing.T) {
	b := boardFromRows(3, easyPuzzleRows)

	solved, ok := Solve(context.Background(), b, 2)
	if !ok {
		t.Fatal("expected the easy puzzle to solve")
	}
	want := []int{5, 3, 4, 6, 7, 8, 9, 1, 2}
	for i, v := range want {
		if solved.Value(i) != v {
			t.Errorf("cell %d: want %d, got %d", i, v, solved.Value(i))
		}
	}
	if !solved.IsValid() {
		t.Error("expected a valid solved board")
	}
}

// Scenario 3: a puzzle that requires backtracking (propagation alone leaves
// empty cells) must still solve and satisfy P1.
func TestSolveScenario3RequiresBacktracking(t *testing.T) {
	// A well-known hard 21-clue puzzle: propagation alone stalls with empty
	// cells left, so the solver must fall back to backtracking.
	rows := [][]int{
		{8, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 3, 6, 0, 0, 0, 0, 0},
		{0, 7, 0, 0, 9, 0, 2, 0, 0},
		{0, 5, 0, 0, 0, 7, 0, 0, 0},
		{0, 0, 0, 0, 4, 5, 7, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 3, 0},
		{0, 0, 1, 0, 0, 0, 0, 6, 8},
		{0, 0, 8, 5, 0, 0, 0, 1, 0},
		{0, 9, 0, 0, 0, 0, 4, 0, 0},
	}
	b := boardFromRows(3, rows)

	solved, ok := Solve(context.Background(), b, 2)
	if !ok {
		t.Fatal("expected the sparse puzzle to be solvable")
	}
	if !solved.IsValid() || solved.FirstEmptyCell() != -1 {
		t.Error("expected a fully solved, valid board (P1)")
	}
}

// Scenario 4: the easy puzzle with the top-left clue changed to clash with
// a peer is unsolvable.
func TestSolveScenario4Unsolvable(t *testing.T) {
	rows := make([][]int, len(easyPuzzleRows))
	for i, row := range easyPuzzleRows {
		rows[i] = append([]int(nil), row...)
	}
	rows[0][0] = 6 // clashes with the 6 already given at (1,0)
	b := boardFromRows(3, rows)

	if _, ok := Solve(context.Background(), b, 2); ok {
		t.Error("expected a board with clashing givens to have no solution (P7)")
	}
}

// Scenario 5: an empty 4x4 board must yield some valid Latin-square-with-box
// board.
func TestSolveScenario5EmptyBoard4x4(t *testing.T) {
	b, _ := NewBoard(2, emptyGivens(2))

	solved, ok := Solve(context.Background(), b, 2)
	if !ok {
		t.Fatal("expected an empty 4x4 board to be solvable")
	}
	if !solved.IsValid() || solved.FirstEmptyCell() != -1 {
		t.Error("expected a fully solved, valid 4x4 board")
	}
}

// Scenario 6: box-line reduction (R3) applies to the easy puzzle's seeded
// starting position, and the puzzle still solves. R1/R2 can also make
// progress from that position, so this does not show that R3 is required.
func TestSolveScenario6BoxLineReductionApplies(t *testing.T) {
	b := boardFromRows(3, easyPuzzleRows)
	for idx, c := range b.Cells {
		if !c.isEmpty() {
			eliminatePeers(b, idx, c.value())
		}
	}

	before := applyBoxLineReduction(b.Clone())
	if !before.changed {
		t.Fatal("expected box-line reduction to apply to the easy puzzle's starting position")
	}

	solved, ok := Solve(context.Background(), boardFromRows(3, easyPuzzleRows), 2)
	if !ok {
		t.Fatal("expected the puzzle to solve")
	}
	if !solved.IsValid() || solved.FirstEmptyCell() != -1 {
		t.Error("expected a fully solved, valid board")
	}
}

func chunk(flat []int, width int) [][]int {
	rows := make([][]int, 0, len(flat)/width)
	for i := 0; i < len(flat); i += width {
		rows = append(rows, flat[i:i+width])
	}
	return rows
}

