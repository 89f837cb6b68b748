//go:build ebiten

package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"wraplife/internal/perf"
)

// Overlay draws a small debug HUD on top of the grid view.
type Overlay struct {
	visible bool
}

// NewOverlay constructs an overlay, visible by default.
func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

// Update handles overlay input; H toggles visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw prints generation, population and rolling tick timing.
func (o *Overlay) Draw(screen *ebiten.Image, generation, population int, stats perf.Stats) {
	if !o.visible {
		return
	}
	msg := fmt.Sprintf("gen %d  alive %d", generation, population)
	if stats.Avg > 0 {
		msg += fmt.Sprintf("  tick %s (%.0f tps)", stats.Avg.Round(time.Microsecond), stats.TicksPerSecond)
	}
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}
