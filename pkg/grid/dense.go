package grid

import "unsafe"

// Dense stores a 2D grid of E values in row-major order.
type Dense[E any] struct {
	w, h int
	data []E
}

// NewDense allocates a w x h grid with every cell set to the zero value of E.
func NewDense[E any](w, h int) *Dense[E] {
	checkSize(w, h)
	return &Dense[E]{w: w, h: h, data: make([]E, w*h)}
}

// Width returns the number of columns.
func (d *Dense[E]) Width() int { return d.w }

// Height returns the number of rows.
func (d *Dense[E]) Height() int { return d.h }

// ElementSize returns the size in bytes of one cell.
func (d *Dense[E]) ElementSize() int {
	var zero E
	return int(unsafe.Sizeof(zero))
}

// At returns a pointer to the cell at (col, row) so callers can read and write
// it in place.
func (d *Dense[E]) At(col, row int) *E {
	checkIndex(col, row, d.w, d.h)
	return &d.data[row*d.w+col]
}

// Get returns the value at (col, row).
func (d *Dense[E]) Get(col, row int) E { return *d.At(col, row) }

// Put stores v at (col, row) and returns the previous value.
func (d *Dense[E]) Put(col, row int, v E) E {
	p := d.At(col, row)
	old := *p
	*p = v
	return old
}

// MapRowMajor calls apply for every cell, columns varying fastest.
func (d *Dense[E]) MapRowMajor(apply func(col, row int, d *Dense[E], elem *E)) {
	RowMajor(d.w, d.h, func(col, row int) {
		apply(col, row, d, d.At(col, row))
	})
}

// MapColMajor calls apply for every cell, rows varying fastest.
func (d *Dense[E]) MapColMajor(apply func(col, row int, d *Dense[E], elem *E)) {
	ColMajor(d.w, d.h, func(col, row int) {
		apply(col, row, d, d.At(col, row))
	})
}

// Free releases the backing store. The grid must not be used afterwards.
func (d *Dense[E]) Free() {
	d.data = nil
	d.w, d.h = 0, 0
}
