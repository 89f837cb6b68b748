// Package view provides a gocui terminal front-end for a Universe.
package view

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"wraplife/internal/config"
	"wraplife/internal/perf"
	"wraplife/pkg/core"
	"wraplife/pkg/life"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// UI is a terminal viewer and controller driving a single Universe. All
// universe mutation is funneled through the gocui event loop, so the
// engine's single-caller discipline holds.
type UI struct {
	universe *life.Universe
	g        *gocui.Gui
	bindings []keyBinding

	timing *perf.Collector
	pacer  *core.FixedStep
	rng    *core.RNG

	aliveGlyph string
	deadGlyph  string

	generation int
	running    atomic.Bool
	quit       chan struct{}
}

// New constructs the terminal UI around an already-seeded universe.
func New(u *life.Universe, cfg *config.Config, seed int64) (*UI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}

	t := &UI{
		universe:   u,
		g:          g,
		timing:     perf.NewCollector(32),
		pacer:      core.NewFixedStep(cfg.Terminal.TPS),
		rng:        core.NewRNG(seed),
		aliveGlyph: aurora.Green(cfg.Terminal.AliveGlyph).String(),
		deadGlyph:  cfg.Terminal.DeadGlyph,
		quit:       make(chan struct{}),
	}
	g.Mouse = true

	t.bindings = []keyBinding{
		{gocui.KeyCtrlC, "^C", "quit", t.cmdQuit, ""},
		{'n', "N", "step", t.cmdStep, ""},
		{'r', "R", "run", t.cmdRun, ""},
		{'s', "S", "stop", t.cmdStop, ""},
		{'c', "C", "clear", t.cmdClear, ""},
		{'w', "W", "randomize", t.cmdRandomize, ""},
		{'g', "G", "glider", t.cmdGlider, ""},
		{'+', "+", "faster", t.cmdFaster, ""},
		{'-', "-", "slower", t.cmdSlower, ""},
		{gocui.MouseLeft, "MOUSE", "toggle cell", t.cmdToggle, "grid"},
	}
	g.SetManagerFunc(t.layout)

	for _, kb := range t.bindings {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			return nil, fmt.Errorf("bind %s: %w", kb.name, err)
		}
	}
	return t, nil
}

// Run blocks in the terminal main loop until the user quits.
func (t *UI) Run() error {
	go t.runLoop()
	err := t.g.MainLoop()
	close(t.quit)
	t.g.Close()
	if err == gocui.ErrQuit {
		return nil
	}
	return err
}

// runLoop paces run mode in the background; every step is handed to the
// gocui event loop so it never races the key handlers.
func (t *UI) runLoop() {
	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-t.quit:
			return
		case <-ticker.C:
			if t.running.Load() && t.pacer.ShouldStep() {
				t.g.Update(func(*gocui.Gui) error {
					t.step()
					return nil
				})
			}
		}
	}
}

func (t *UI) step() {
	t.timing.StartTick()
	t.universe.Tick()
	t.timing.EndTick()
	t.generation++
}

func (t *UI) cmdQuit(*gocui.View) error { return gocui.ErrQuit }

func (t *UI) cmdStep(*gocui.View) error {
	t.step()
	return nil
}

func (t *UI) cmdRun(*gocui.View) error {
	t.running.Store(true)
	return nil
}

func (t *UI) cmdStop(*gocui.View) error {
	t.running.Store(false)
	return nil
}

func (t *UI) cmdClear(*gocui.View) error {
	t.running.Store(false)
	t.universe.Clear()
	t.generation = 0
	return nil
}

func (t *UI) cmdRandomize(*gocui.View) error {
	t.universe.Randomize(time.Now().UnixNano())
	t.generation = 0
	return nil
}

// cmdGlider stamps a glider at a random interior position, keeping the
// unwrapped 3x3 window in bounds.
func (t *UI) cmdGlider(*gocui.View) error {
	w, h := t.universe.Width(), t.universe.Height()
	if w < 3 || h < 3 {
		return nil
	}
	row := 1 + t.rng.IntN(h-2)
	col := 1 + t.rng.IntN(w-2)
	t.universe.InsertGlider(row, col)
	return nil
}

func (t *UI) cmdFaster(*gocui.View) error {
	t.pacer.SetTPS(t.pacer.TPS() + 2)
	return nil
}

func (t *UI) cmdSlower(*gocui.View) error {
	tps := t.pacer.TPS() - 2
	if tps < 1 {
		tps = 1
	}
	t.pacer.SetTPS(tps)
	return nil
}

// cmdToggle flips the cell under the mouse cursor. Direct edits require
// pre-validated coordinates, so clicks outside the grid are dropped.
func (t *UI) cmdToggle(v *gocui.View) error {
	if v == nil {
		return nil
	}
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	row, col := cy+oy, cx+ox
	if row < 0 || col < 0 || row >= t.universe.Height() || col >= t.universe.Width() {
		return nil
	}
	t.universe.ToggleCell(row, col)
	return nil
}

func (t *UI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	x1 := t.universe.Width() + 1
	if x1 > maxX-1 {
		x1 = maxX - 1
	}
	y1 := t.universe.Height() + 1
	if y1 > maxY-4 {
		y1 = maxY - 4
	}
	if x1 < 2 || y1 < 2 {
		return nil
	}

	v, err := g.SetView("grid", 0, 0, x1, y1)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Clear()
	t.drawGrid(v)

	sv, err := g.SetView("status", 0, y1+1, maxX-1, y1+3)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	sv.Frame = false
	sv.Clear()
	t.drawStatus(sv)
	return nil
}

func (t *UI) drawGrid(v *gocui.View) {
	cells := t.universe.Cells()
	w := t.universe.Width()
	var b strings.Builder
	for row := 0; row < t.universe.Height(); row++ {
		for col := 0; col < w; col++ {
			if cells[row*w+col] == life.Alive {
				b.WriteString(t.aliveGlyph)
			} else {
				b.WriteString(t.deadGlyph)
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(v, b.String())
}

func (t *UI) drawStatus(v *gocui.View) {
	state := aurora.Blue("paused").String()
	if t.running.Load() {
		state = aurora.Cyan("running").String()
	}
	stats := t.timing.Stats()
	fmt.Fprintf(v, "%s  gen %d  alive %d  %d tps", state, t.generation, t.universe.Population(), t.pacer.TPS())
	if stats.Avg > 0 {
		fmt.Fprintf(v, "  tick %s", stats.Avg.Round(time.Microsecond))
	}
	fmt.Fprintln(v)

	help := make([]string, 0, len(t.bindings))
	for _, kb := range t.bindings {
		help = append(help, fmt.Sprintf("%s %s", aurora.Yellow(kb.name), kb.descr))
	}
	fmt.Fprint(v, strings.Join(help, "  "))
}
