//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 8
	hudLineHeight = 16
)

// HUD renders a stats panel to the right of the grid view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int

	labelColor color.Color
	valueColor color.Color
}

// NewHUD constructs a HUD for the provided panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{
		width:      width,
		labelColor: color.RGBA{R: 150, G: 150, B: 160, A: 255},
		valueColor: color.White,
	}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Draw paints the panel at offsetX with one line per stat followed by the
// help lines.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int, stats []Stat, help []string) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := hudPadding + hudLineHeight
	for _, s := range stats {
		text.Draw(h.panel, s.Label, face, hudPadding, y, h.labelColor)
		y += hudLineHeight
		text.Draw(h.panel, s.Value, face, hudPadding*2, y, h.valueColor)
		y += hudLineHeight + hudPadding/2
	}
	y += hudLineHeight
	for _, line := range help {
		text.Draw(h.panel, line, face, hudPadding, y, h.labelColor)
		y += hudLineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
