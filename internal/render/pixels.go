package render

import (
	"image/color"

	"pnmgrid/pkg/grid"
)

// fillBinaryRGBA converts the bits of b into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, b *grid.Bits, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	w := b.Width()
	b.MapRowMajor(func(col, row int, _ *grid.Bits, bit int) {
		base := (row*w + col) * 4
		if bit != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			return
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	})
}
