package pnm

import (
	"bufio"
	"fmt"
	"io"

	"pnmgrid/pkg/grid"
)

// WriteBits writes b as a plain (P1) bitmap: one digit per bit and a newline
// after every row.
func WriteBits(w io.Writer, b *grid.Bits) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P1\n%d %d\n", b.Width(), b.Height())
	last := b.Width() - 1
	b.MapRowMajor(func(col, _ int, _ *grid.Bits, bit int) {
		bw.WriteByte('0' + byte(bit))
		if col == last {
			bw.WriteByte('\n')
		}
	})
	return bw.Flush()
}

// WriteRawBits writes b as a raw (P4) bitmap.
func WriteRawBits(w io.Writer, b *grid.Bits) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P4\n%d %d\n", b.Width(), b.Height())
	last := b.Width() - 1
	var pack byte
	b.MapRowMajor(func(col, _ int, _ *grid.Bits, bit int) {
		pack |= byte(bit) << (7 - uint(col%8))
		if col%8 == 7 || col == last {
			bw.WriteByte(pack)
			pack = 0
		}
	})
	return bw.Flush()
}
