//go:build ebiten

package main

import (
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"

	"wraplife/internal/app"
	"wraplife/internal/config"
	"wraplife/pkg/life"
)

func main() {
	var (
		configPath string
		width      int
		height     int
		scale      int
		tps        int
		seed       int64
	)

	flaggy.SetDescription("Conway's Game of Life on a toroidal grid")
	flaggy.String(&configPath, "f", "config", "Path to a yaml config file")
	flaggy.Int(&width, "x", "width", "Grid width (overrides config)")
	flaggy.Int(&height, "y", "height", "Grid height (overrides config)")
	flaggy.Int(&scale, "", "scale", "Pixel scale multiplier (overrides config)")
	flaggy.Int(&tps, "t", "tps", "Generations per second (overrides config)")
	flaggy.Int64(&seed, "", "seed", "RNG seed, 0 seeds from the clock (overrides config)")
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
	if scale > 0 {
		cfg.Display.Scale = scale
	}
	if tps > 0 {
		cfg.Display.TPS = tps
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
	u.Randomize(s)

	game := app.New(u, cfg.Display.Scale, s)
	ebiten.SetWindowTitle("wraplife")
	ebiten.SetTPS(cfg.Display.TPS)
	ebiten.SetWindowSize(cfg.Grid.Width*cfg.Display.Scale, cfg.Grid.Height*cfg.Display.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
