// Package sudoku checks solved 9x9 sudoku grids stored as graymaps.
package sudoku

import (
	"errors"
	"fmt"
	"io"

	"pnmgrid/internal/pnm"
	"pnmgrid/pkg/grid"
)

// Size is the side length of a board; Box is the side length of a block.
const (
	Size = 9
	Box  = 3
)

var (
	// ErrNotSudoku reports a map that is not a 9x9 graymap with maxval 9.
	ErrNotSudoku = errors.New("sudoku: not a 9x9 graymap with maxval 9")
	// ErrZeroCell reports a board with an empty cell.
	ErrZeroCell = errors.New("sudoku: zero cell")
)

// Unit names a group of cells that must hold every digit once.
type Unit string

const (
	Row    Unit = "row"
	Column Unit = "column"
	Block  Unit = "block"
)

// RuleError identifies the first unit found missing a digit.
type RuleError struct {
	Unit  Unit
	Index int // row, column, or block number counted left to right, top to bottom
	Digit int // a digit absent from the unit
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s %d is missing %d", e.Unit, e.Index, e.Digit)
}

// Load reads a board from a graymap. The returned grid is owned by the caller.
func Load(r io.Reader) (*grid.Dense[int], error) {
	rd, err := pnm.NewReader(r)
	if err != nil {
		return nil, err
	}
	h := rd.Header()
	if h.Kind != pnm.Graymap || h.Width != Size || h.Height != Size || h.MaxVal != Size {
		return nil, fmt.Errorf("%w: got %dx%d %s maxval %d", ErrNotSudoku, h.Width, h.Height, h.Kind, h.MaxVal)
	}
	board := grid.NewDense[int](Size, Size)
	if err := rd.ReadInto(board); err != nil {
		board.Free()
		return nil, err
	}
	var zero *grid.Point
	board.MapRowMajor(func(col, row int, _ *grid.Dense[int], v *int) {
		if *v == 0 && zero == nil {
			zero = &grid.Point{Col: col, Row: row}
		}
	})
	if zero != nil {
		board.Free()
		return nil, fmt.Errorf("%w at (%d,%d)", ErrZeroCell, zero.Col, zero.Row)
	}
	return board, nil
}

// Check returns nil when every row, column and block of board holds each digit
// 1 through 9 exactly once, or a *RuleError for the first unit that does not.
func Check(board *grid.Dense[int]) error {
	if board.Width() != Size || board.Height() != Size {
		return fmt.Errorf("%w: got %dx%d", ErrNotSudoku, board.Width(), board.Height())
	}
	for i := 0; i < Size; i++ {
		if err := checkUnit(board, Row, i, func(k int) (int, int) { return k, i }); err != nil {
			return err
		}
	}
	for i := 0; i < Size; i++ {
		if err := checkUnit(board, Column, i, func(k int) (int, int) { return i, k }); err != nil {
			return err
		}
	}
	for i := 0; i < Size; i++ {
		c0, r0 := (i%Box)*Box, (i/Box)*Box
		if err := checkUnit(board, Block, i, func(k int) (int, int) { return c0 + k%Box, r0 + k/Box }); err != nil {
			return err
		}
	}
	return nil
}

// Validate reports whether board is a solved sudoku.
func Validate(board *grid.Dense[int]) bool { return Check(board) == nil }

// checkUnit marks the digits found at cell(0..8) in a presence table and
// reports the first digit left unmarked.
func checkUnit(board *grid.Dense[int], unit Unit, index int, cell func(k int) (col, row int)) error {
	var seen [Size + 1]bool
	for k := 0; k < Size; k++ {
		v := board.Get(cell(k))
		if v >= 1 && v <= Size {
			seen[v] = true
		}
	}
	for d := 1; d <= Size; d++ {
		if !seen[d] {
			return &RuleError{Unit: unit, Index: index, Digit: d}
		}
	}
	return nil
}
