// Package render turns bit grids into raster images.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"pnmgrid/pkg/grid"
)

// Palette maps bit 0 to white and bit 1 to black, as in PBM.
var Palette = color.Palette{color.White, color.Black}

// Image returns b as a paletted image, each bit drawn as a scale x scale block.
func Image(b *grid.Bits, scale int) *image.Paletted {
	if scale < 1 {
		scale = 1
	}
	src := image.NewPaletted(image.Rect(0, 0, b.Width(), b.Height()), Palette)
	b.MapRowMajor(func(col, row int, _ *grid.Bits, bit int) {
		src.SetColorIndex(col, row, uint8(bit))
	})
	if scale == 1 {
		return src
	}
	dst := image.NewPaletted(image.Rect(0, 0, b.Width()*scale, b.Height()*scale), Palette)
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// WriteBMP encodes b as a BMP image.
func WriteBMP(w io.Writer, b *grid.Bits, scale int) error {
	return bmp.Encode(w, Image(b, scale))
}

// SaveBMP writes b as a BMP image to path.
func SaveBMP(path string, b *grid.Bits, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := WriteBMP(f, b, scale); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}
