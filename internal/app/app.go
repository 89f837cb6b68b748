//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"wraplife/internal/perf"
	"wraplife/internal/render"
	"wraplife/internal/ui"
	"wraplife/pkg/life"
)

// Game adapts a life.Universe to the ebiten.Game interface. All universe
// mutation happens inside Update, so the single-caller discipline of the
// engine holds.
type Game struct {
	universe *life.Universe
	painter  *render.GridPainter
	overlay  *ui.Overlay
	timing   *perf.Collector

	onColor  color.Color
	offColor color.Color

	scale      int
	paused     bool
	tickOnce   bool
	seed       int64
	generation int
}

// New constructs a Game for the provided universe.
func New(u *life.Universe, scale int, seed int64) *Game {
	return &Game{
		universe: u,
		painter:  render.NewGridPainter(u.Width(), u.Height()),
		overlay:  ui.NewOverlay(),
		timing:   perf.NewCollector(60),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
}

// Reset reseeds the universe and restarts the generation counter.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.universe.Randomize(seed)
	g.generation = 0
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.universe.Clear()
		g.generation = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		if row, col, ok := g.cellAt(ebiten.CursorPosition()); ok {
			// The stamp is unwrapped; keep the whole 3x3 window in bounds.
			if row >= 1 && col >= 1 && row+1 < g.universe.Height() && col+1 < g.universe.Width() {
				g.universe.InsertGlider(row, col)
			}
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if row, col, ok := g.cellAt(ebiten.CursorPosition()); ok {
			g.universe.ToggleCell(row, col)
		}
	}

	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.timing.StartTick()
		g.universe.Tick()
		g.timing.EndTick()
		g.generation++
		g.tickOnce = false
		if g.generation%600 == 0 {
			g.timing.Stats().Log()
		}
	}
	return nil
}

// Draw renders the current universe state.
func (g *Game) Draw(screen *ebiten.Image) {
	if pw, ph := g.painter.Size(); pw != g.universe.Width() || ph != g.universe.Height() {
		g.painter = render.NewGridPainter(g.universe.Width(), g.universe.Height())
	}
	g.painter.Blit(screen, g.universe.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, g.generation, g.universe.Population(), g.timing.Stats())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.universe.Width() * g.scale, g.universe.Height() * g.scale
}

// cellAt maps a screen position to grid coordinates, reporting whether the
// position falls inside the grid. Direct edits require pre-validated
// coordinates, so out-of-range clicks are dropped here.
func (g *Game) cellAt(mx, my int) (row, col int, ok bool) {
	if g.scale <= 0 {
		return 0, 0, false
	}
	col = mx / g.scale
	row = my / g.scale
	if mx < 0 || my < 0 || row >= g.universe.Height() || col >= g.universe.Width() {
		return 0, 0, false
	}
	return row, col, true
}
