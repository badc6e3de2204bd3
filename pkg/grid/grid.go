// Package grid provides fixed-size two-dimensional containers addressed by
// (col, row) and stored in row-major order.
//
// Indices outside [0,Width)x[0,Height) are caller bugs: every accessor panics
// on them instead of returning an error.
package grid

import "fmt"

// Grid is the access contract shared by Dense and Bits.
type Grid[E any] interface {
	Width() int
	Height() int
	Get(col, row int) E
	Put(col, row int, v E) E
}

// Point identifies a single cell.
type Point struct {
	Col, Row int
}

// Neighbors4 lists the 4-connected offsets in scan order: left, up, right, down.
var Neighbors4 = [4]Point{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point { return Point{p.Col + d.Col, p.Row + d.Row} }

// In reports whether p lies inside a w x h grid.
func (p Point) In(w, h int) bool {
	return p.Col >= 0 && p.Col < w && p.Row >= 0 && p.Row < h
}

// OnBorder reports whether p touches the outer frame of a w x h grid.
func (p Point) OnBorder(w, h int) bool {
	return p.Col == 0 || p.Row == 0 || p.Col == w-1 || p.Row == h-1
}

func checkSize(w, h int) {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("grid: invalid size %dx%d", w, h))
	}
}

func checkIndex(col, row, w, h int) {
	if w == 0 {
		panic("grid: use after Free")
	}
	if col < 0 || col >= w || row < 0 || row >= h {
		panic(fmt.Sprintf("grid: index (%d,%d) out of range %dx%d", col, row, w, h))
	}
}
