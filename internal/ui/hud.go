//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the mesh view.
type HUD struct {
	panel  *Panel
	width  int
	title  string
	canvas *ebiten.Image
	pixel  *ebiten.Image

	offsetX int
}

// NewHUD constructs a HUD for target, which should provide parameter
// controls, and the given panel width.
func NewHUD(target any, title string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{panel: NewPanel(target, width), width: width, title: title}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Height returns the pixel height the panel needs.
func (h *HUD) Height() int {
	if h == nil {
		return 0
	}
	return h.panel.Height()
}

// Update refreshes control values and handles clicks. It reports whether a
// parameter changed.
func (h *HUD) Update(offsetX int) bool {
	if h == nil {
		return false
	}
	h.offsetX = offsetX
	h.panel.Refresh()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < offsetX {
		return false
	}
	return h.panel.Click(mx-offsetX, my)
}

// Draw paints the panel anchored at the offset given to Update.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.canvas == nil || h.canvas.Bounds().Dy() != height {
		h.canvas = ebiten.NewImage(h.width, height)
	}
	h.canvas.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.canvas, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.canvas, h.title, face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	controls := h.panel.Controls()
	if len(controls) == 0 {
		text.Draw(h.canvas, "No adjustable parameters", face, panelPadding, controlsTop+labelBaseline, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i, st := range controls {
		labelY := st.Top + labelBaseline
		label := st.Control.Group + " " + st.Control.Label
		text.Draw(h.canvas, label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		value := "--"
		valueColor := color.RGBA{R: 160, G: 160, B: 170, A: 255}
		if st.HasValue {
			value = FormatValue(st.Control, st.Value)
			valueColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
		}
		bounds := text.BoundString(face, value)
		valueX := st.MinusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.canvas, value, face, valueX, labelY, valueColor)

		h.drawButton(st.MinusRect, "-", h.panel.CanAdjust(i, -1))
		h.drawButton(st.PlusRect, "+", h.panel.CanAdjust(i, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.canvas.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.canvas, label, face, x, y, fg)
}
