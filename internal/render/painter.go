//go:build ebiten

package render

import (
	"image/color"

	"pnmgrid/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from a bit grid.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the bits into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, b *grid.Bits, on, off color.Color, scale int) {
	if b.Width() != gp.w || b.Height() != gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, b, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
