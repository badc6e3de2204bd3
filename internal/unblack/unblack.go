// Package unblack removes black edges from bitmaps: every set bit on the
// border, and every set bit 4-connected to one, is cleared.
package unblack

import "pnmgrid/pkg/grid"

// Stats summarises one Clear pass.
type Stats struct {
	Seeds    int // border bits that started a fill
	Cleared  int // bits changed from 1 to 0
	MaxStack int // deepest fill stack observed
}

// Clear zeroes all border-reachable black bits of b in place. Bits not
// connected to the border are left untouched, so a second call is a no-op.
func Clear(b *grid.Bits) Stats {
	var st Stats
	var stack []grid.Point
	w, h := b.Width(), b.Height()

	b.MapRowMajor(func(col, row int, b *grid.Bits, bit int) {
		p := grid.Point{Col: col, Row: row}
		if bit == 0 || !p.OnBorder(w, h) {
			return
		}
		st.Seeds++
		stack = fill(b, p, stack[:0], &st)
	})
	return st
}

// fill clears the component containing seed with a depth-first walk. Bits are
// cleared as they are pushed so no cell enters the stack twice.
func fill(b *grid.Bits, seed grid.Point, stack []grid.Point, st *Stats) []grid.Point {
	w, h := b.Width(), b.Height()
	b.Put(seed.Col, seed.Row, 0)
	stack = append(stack, seed)
	st.Cleared++

	for len(stack) > 0 {
		if len(stack) > st.MaxStack {
			st.MaxStack = len(stack)
		}
		top := stack[len(stack)-1]
		pushed := false
		for _, d := range grid.Neighbors4 {
			n := top.Add(d)
			if !n.In(w, h) || b.Get(n.Col, n.Row) == 0 {
				continue
			}
			b.Put(n.Col, n.Row, 0)
			stack = append(stack, n)
			st.Cleared++
			pushed = true
			break
		}
		if !pushed {
			stack = stack[:len(stack)-1]
		}
	}
	return stack
}
