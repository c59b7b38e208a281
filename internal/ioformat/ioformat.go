// Package ioformat reads and writes the plain-text puzzle file format
// described in spec §6: a box side N, followed by N⁴ whitespace-separated
// digits. Grounded on the teacher's loader shape (a single exported
// "read the whole file, wrap every error with fmt.Errorf" function), widened
// from the teacher's fixed JSON puzzle-bank format to this bespoke
// whitespace-separated-integers format with bufio.ScanWords, since no
// third-party format library in the retrieved pack fits a one-off grid text
// format like this.
package ioformat

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ReadPuzzle parses a puzzle file: first token is the box side N, followed
// by N⁴ integers in [0, N²] (0 marks an empty cell). Any ASCII whitespace
// may separate tokens.
func ReadPuzzle(path string) (n int, givens []int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("opening input file %q: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	scanner.Split(bufio.ScanWords)

	nextInt := func(label string) (int, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("reading %s: %w", label, err)
			}
			return 0, fmt.Errorf("reading %s: unexpected end of file", label)
		}
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return 0, fmt.Errorf("parsing %s: %q is not an integer", label, scanner.Text())
		}
		return v, nil
	}

	n, err = nextInt("box side N")
	if err != nil {
		return 0, nil, err
	}
	if n < 1 {
		return 0, nil, fmt.Errorf("box side N=%d must be >= 1", n)
	}

	boardSize := n * n
	total := boardSize * boardSize
	givens = make([]int, total)
	for i := 0; i < total; i++ {
		v, err := nextInt(fmt.Sprintf("cell %d", i))
		if err != nil {
			return 0, nil, err
		}
		if v < 0 || v > boardSize {
			return 0, nil, fmt.Errorf("cell %d: digit %d out of range [0,%d]", i, v, boardSize)
		}
		givens[i] = v
	}

	return n, givens, nil
}

// OutputPath derives the §6 output path from an input file path: the input
// file's basename, its final four characters (the ".txt" extension)
// stripped, prefixed with "outputs/output_".
func OutputPath(inputPath string) string {
	stem := filepath.Base(inputPath)
	if len(stem) > 4 {
		stem = stem[:len(stem)-4]
	}
	return filepath.Join("outputs", "output_"+stem+".txt")
}

// WriteSolution writes a solved board to the §6 output format: N on the
// first line, then boardSize lines of boardSize two-digit zero-padded
// integers each, single-space separated. Parent directories are created as
// needed.
func WriteSolution(path string, n int, digits []int) error {
	boardSize := n * n
	if len(digits) != boardSize*boardSize {
		return fmt.Errorf("writing %q: expected %d cells, got %d", path, boardSize*boardSize, len(digits))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory for %q: %w", path, err)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n", n)
	for row := 0; row < boardSize; row++ {
		for col := 0; col < boardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%02d", digits[row*boardSize+col])
		}
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("writing output file %q: %w", path, err)
	}
	return nil
}
