//go:build ebiten

package app

import (
	"image/color"

	"pnmgrid/internal/render"
	"pnmgrid/internal/ui"
	"pnmgrid/internal/unblack"
	"pnmgrid/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a bitmap and its cleaned copy to the ebiten.Game interface.
type Game struct {
	original *grid.Bits
	cleaned  *grid.Bits
	painter  *render.GridPainter
	overlay  *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale       int
	showCleaned bool
}

// New constructs a Game showing original and, on request, original with its
// black edges removed.
func New(original *grid.Bits, scale int) *Game {
	cleaned := grid.NewBits(original.Width(), original.Height())
	original.MapRowMajor(func(col, row int, _ *grid.Bits, bit int) {
		cleaned.Put(col, row, bit)
	})
	st := unblack.Clear(cleaned)
	return &Game{
		original: original,
		cleaned:  cleaned,
		painter:  render.NewGridPainter(original.Width(), original.Height()),
		overlay:  ui.NewOverlay(st, original.Count()),
		onColor:  color.Black,
		offColor: color.White,
		scale:    scale,
	}
}

// Close releases the cleaned copy. The original stays owned by the caller.
func (g *Game) Close() {
	g.cleaned.Free()
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.showCleaned = !g.showCleaned
	}
	g.overlay.Update(g.showCleaned)
	return nil
}

// Draw renders the selected bitmap.
func (g *Game) Draw(screen *ebiten.Image) {
	b := g.original
	if g.showCleaned {
		b = g.cleaned
	}
	g.painter.Blit(screen, b, g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h * g.scale
}
