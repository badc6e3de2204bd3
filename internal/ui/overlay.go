//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pnmgrid/internal/unblack"
)

// Overlay prints the cleaning statistics on top of the bitmap.
type Overlay struct {
	text    string
	visible bool
	cleaned bool
}

// NewOverlay constructs an overlay for a bitmap with set bits that produced st.
func NewOverlay(st unblack.Stats, set int) *Overlay {
	return &Overlay{text: Summary(st, set), visible: true}
}

// Update toggles visibility on H and records which bitmap is shown.
func (o *Overlay) Update(cleaned bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
	o.cleaned = cleaned
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	view := "original"
	if o.cleaned {
		view = "cleaned"
	}
	ebitenutil.DebugPrint(screen, view+"  [space] toggle  [h] hide  [q] quit\n"+o.text)
}
