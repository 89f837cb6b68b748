package main

import (
	"log"
	"time"

	"github.com/integrii/flaggy"

	"wraplife/internal/config"
	"wraplife/internal/view"
	"wraplife/pkg/life"
)

func main() {
	var (
		configPath string
		width      int
		height     int
		tps        int
		seed       int64
		pattern    string
	)

	flaggy.SetDescription("Terminal viewer for Conway's Game of Life on a toroidal grid")
	flaggy.String(&configPath, "f", "config", "Path to a yaml config file")
	flaggy.Int(&width, "x", "width", "Grid width (overrides config)")
	flaggy.Int(&height, "y", "height", "Grid height (overrides config)")
	flaggy.Int(&tps, "t", "tps", "Run-mode generations per second (overrides config)")
	flaggy.Int64(&seed, "", "seed", "RNG seed, 0 seeds from the clock (overrides config)")
	flaggy.String(&pattern, "p", "pattern", "Seed with a named pattern instead of random state (glider, blinker, block)")
	flaggy.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	if width > 0 {
		cfg.Grid.Width = width
	}
	if height > 0 {
		cfg.Grid.Height = height
	}
	if tps > 0 {
		cfg.Terminal.TPS = tps
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	u := life.NewSize(cfg.Grid.Width, cfg.Grid.Height)
	if pattern == "" {
		u.Randomize(s)
	} else {
		p, ok := life.LookupPattern(pattern)
		if !ok {
			log.Fatalf("unknown pattern %q", pattern)
		}
		row, col := u.Height()/2-1, u.Width()/2-1
		if !patternFits(p, row, col, u.Width(), u.Height()) {
			log.Fatalf("grid %dx%d too small for pattern %q", u.Width(), u.Height(), pattern)
		}
		u.SetPattern(p, row, col)
	}

	ui, err := view.New(u, cfg, s)
	if err != nil {
		log.Fatal(err)
	}
	if err := ui.Run(); err != nil {
		log.Fatal(err)
	}
}

// patternFits reports whether every pattern coordinate lands inside the
// grid when the origin is placed at (row, col). Direct edits panic on
// out-of-range coordinates, so this is checked up front.
func patternFits(p life.Pattern, row, col, width, height int) bool {
	if row < 0 || col < 0 {
		return false
	}
	for _, rc := range p.Coords {
		if row+rc[0] >= height || col+rc[1] >= width {
			return false
		}
	}
	return true
}
