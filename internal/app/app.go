//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"time"

	"wavefield/internal/core"
	"wavefield/internal/field"
	"wavefield/internal/render"
	"wavefield/internal/ui"
	"wavefield/internal/wave"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const panelWidth = 300

var driftKey = wave.Key{Axis: wave.AxisX, Kind: wave.Sine, Field: wave.HorizontalDisplacement}

// Game adapts a wave field to the ebiten.Game interface.
type Game struct {
	field   *field.Field
	painter *render.MeshPainter
	hud     *ui.HUD
	view    render.View
	clock   *core.FixedStep
	log     *slog.Logger

	meshColor color.Color
	width     int
	height    int
	drift     float64
	paused    bool
	initial   wave.Parameters

	verts   []render.Vertex
	indices []uint16
}

// New constructs a Game showing f in a width by height mesh view.
func New(f *field.Field, width, height, tps int, drift float64, log *slog.Logger) *Game {
	g := &Game{
		field:     f,
		painter:   render.NewMeshPainter(),
		hud:       ui.NewHUD(f, "Wave Controls", panelWidth),
		view:      render.DefaultView(f.Size(), width, height),
		clock:     core.NewFixedStep(tps, 4),
		log:       log,
		meshColor: color.RGBA{R: 90, G: 170, B: 230, A: 255},
		width:     width,
		height:    height,
		drift:     drift,
		initial:   f.Parameters(),
	}
	g.project()
	return g
}

// Update handles per-frame logic: input, drift animation and at most one
// refresh per tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.clock.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		initial := g.initial.Clone()
		if err := g.field.SetParameters(func(wave.Parameters) wave.Parameters { return initial }); err != nil {
			g.log.Warn("reset rejected", "err", err)
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.view.Yaw -= 0.02
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.view.Yaw += 0.02
	}
	g.hud.Update(g.width)

	if !g.paused && g.drift != 0 {
		if steps := g.clock.Advance(time.Now()); steps > 0 {
			if err := g.field.SetParameters(wave.Shift(driftKey, g.drift*float64(steps))); err != nil {
				g.log.Warn("drift rejected", "err", err)
			}
		}
	}
	if g.field.NeedsRefresh() {
		g.field.Refresh()
	}
	g.project()
	return nil
}

func (g *Game) project() {
	g.verts = render.Project(g.view, g.field.Size(), g.field.Heights(), g.field.Normals())
	idx, err := render.Indices16(g.field.Indices(), g.verts)
	if err != nil {
		g.log.Error("cannot draw mesh", "err", err)
		g.indices = nil
		return
	}
	g.indices = idx
}

// Draw renders the mesh and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 8, G: 8, B: 12, A: 255})
	g.painter.Draw(screen, g.verts, g.indices, g.meshColor)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width + panelWidth, max(g.height, g.hud.Height())
}
