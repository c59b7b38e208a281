package solver

// ruleResult reports whether a rule mutated the board and whether it
// detected an inconsistency. Re-architected from the boolean out-parameter
// style of the original sources into a small return-value record.
type ruleResult struct {
	changed      bool
	inconsistent bool
}

// applySingleCandidate is R1: resolve every empty cell whose candidate mask
// has exactly one bit, then eliminate that digit from its peers. An empty
// cell with an empty mask is reported as inconsistent.
func applySingleCandidate(b *Board) ruleResult {
	var res ruleResult
	for idx := range b.Cells {
		if !b.Cells[idx].isEmpty() {
			continue
		}
		mask := b.Cells[idx].candidateMask()
		if mask.IsEmpty() {
			res.inconsistent = true
			return res
		}
		if d, ok := mask.Only(); ok {
			b.resolve(idx, d)
			eliminatePeers(b, idx, d)
			res.changed = true
		}
	}
	return res
}

// applyLoneRanger is R2 (hidden single): for every empty cell and each of
// its three units (column, then row, then box), if exactly one bit in the
// cell's mask is absent from every other cell's mask in that unit, the cell
// must hold that digit.
func applyLoneRanger(b *Board) ruleResult {
	var res ruleResult
	pt := getPeerTables(b.N)

	resolveIfLone := func(idx int, unit []int) bool {
		mask := b.Cells[idx].candidateMask()
		var others CandidateMask
		for _, other := range unit {
			if other == idx {
				continue
			}
			others = others.Union(b.Cells[other].candidateMask())
		}
		diff := mask.Subtract(others)
		if d, ok := diff.Only(); ok {
			b.resolve(idx, d)
			eliminatePeers(b, idx, d)
			res.changed = true
			return true
		}
		return false
	}

	for idx := range b.Cells {
		if !b.Cells[idx].isEmpty() {
			continue
		}
		col := b.ColOf(idx)
		if resolveIfLone(idx, pt.colIndices[col]) {
			continue
		}
		row := b.RowOf(idx)
		if resolveIfLone(idx, pt.rowIndices[row]) {
			continue
		}
		box := b.BoxOf(idx)
		resolveIfLone(idx, pt.boxIndices[box])
	}
	return res
}

// applyBoxLineReduction is R3: if a digit's candidates within a box are all
// confined to a single row (or column), it cannot appear elsewhere in that
// row (or column), board-wide.
func applyBoxLineReduction(b *Board) ruleResult {
	var res ruleResult
	pt := getPeerTables(b.N)

	for _, boxCells := range pt.boxIndices {
		for d := 1; d <= b.BoardSize; d++ {
			var rows, cols []int
			for _, idx := range boxCells {
				if b.Cells[idx].isEmpty() && b.Cells[idx].candidateMask().Has(d) {
					rows = append(rows, b.RowOf(idx))
					cols = append(cols, b.ColOf(idx))
				}
			}
			if len(rows) == 0 {
				continue
			}
			if allEqual(rows) {
				row := rows[0]
				for _, idx := range pt.rowIndices[row] {
					if !containsInt(boxCells, idx) && b.Cells[idx].hasCandidate(d) {
						b.Cells[idx] = b.Cells[idx].clearCandidate(d)
						res.changed = true
					}
				}
			}
			if allEqual(cols) {
				col := cols[0]
				for _, idx := range pt.colIndices[col] {
					if !containsInt(boxCells, idx) && b.Cells[idx].hasCandidate(d) {
						b.Cells[idx] = b.Cells[idx].clearCandidate(d)
						res.changed = true
					}
				}
			}
		}
	}
	return res
}

// applyNakedTwins is R4: narrows candidate masks when two cells in a unit
// share a two-digit residual that no other cell in the unit can take.
func applyNakedTwins(b *Board) ruleResult {
	return applyNakedSubset(b, 2)
}

// applyNakedTriplets is R5: same shape as R4 for triples of cells and a
// target residual width of 3.
func applyNakedTriplets(b *Board) ruleResult {
	return applyNakedSubset(b, 3)
}

// applyNakedSubset implements R4/R5's shared structure: for each unit,
// processed in row, box, column order, for every k-sized combination of
// empty cells, intersect their masks; if the intersection (after
// subtracting every other empty cell's mask in the unit) narrows to exactly
// k bits, pin every cell in the combination to that residual mask. The
// popcount gate before subtraction uses >=k (the most permissive source
// variant), per the spec's Open Question resolution.
func applyNakedSubset(b *Board, k int) ruleResult {
	var res ruleResult
	pt := getPeerTables(b.N)

	units := make([][]int, 0, len(pt.rowIndices)+len(pt.boxIndices)+len(pt.colIndices))
	units = append(units, pt.rowIndices...)
	units = append(units, pt.boxIndices...)
	units = append(units, pt.colIndices...)

	for _, unit := range units {
		var empties []int
		for _, idx := range unit {
			if b.Cells[idx].isEmpty() {
				empties = append(empties, idx)
			}
		}
		if len(empties) < k {
			continue
		}
		for _, combo := range combinations(empties, k) {
			intersection := fullMask(b.BoardSize)
			for _, idx := range combo {
				intersection = intersection.Intersect(b.Cells[idx].candidateMask())
			}
			if intersection.Count() < k {
				continue
			}

			var others CandidateMask
			for _, idx := range empties {
				if containsInt(combo, idx) {
					continue
				}
				others = others.Union(b.Cells[idx].candidateMask())
			}

			residual := intersection.Subtract(others)
			if residual.Count() != k {
				continue
			}

			for _, idx := range combo {
				if b.Cells[idx].candidateMask() != residual {
					b.Cells[idx] = setMask(residual)
					res.changed = true
				}
			}
		}
	}
	return res
}

func allEqual(xs []int) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// combinations returns every k-element subset of xs, preserving xs's order.
func combinations(xs []int, k int) [][]int {
	if k <= 0 || k > len(xs) {
		return nil
	}
	var out [][]int
	var rec func(start int, current []int)
	rec = func(start int, current []int) {
		if len(current) == k {
			combo := make([]int, k)
			copy(combo, current)
			out = append(out, combo)
			return
		}
		for i := start; i <= len(xs)-(k-len(current)); i++ {
			rec(i+1, append(current, xs[i]))
		}
	}
	rec(0, nil)
	return out
}
