// Package life implements Conway's Game of Life on a toroidal grid.
package life

import (
	"fmt"
	"time"

	"wraplife/pkg/core"
)

// Cell is the state of a single grid position, one byte per cell.
type Cell uint8

// Recognized cell states.
const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Toggle flips the cell between Dead and Alive in place.
func (c *Cell) Toggle() {
	if *c == Dead {
		*c = Alive
	} else {
		*c = Dead
	}
}

const (
	defaultWidth  = 64
	defaultHeight = 64
)

// Universe owns the grid dimensions, the flat row-major cell buffer and the
// transition rule. It is meant to be driven serially by a single caller;
// none of its methods are safe for concurrent use.
type Universe struct {
	width  int
	height int
	cells  []Cell
}

// New returns the default 64×64 universe with every cell independently set
// Alive with probability one half.
func New() *Universe {
	u := NewSize(defaultWidth, defaultHeight)
	u.Randomize(time.Now().UnixNano())
	return u
}

// NewSize returns an all-Dead universe with the given dimensions. Both
// dimensions must be at least 1; a zero dimension leads to modulo-by-zero
// in neighbor counting and is not validated here.
func NewSize(width, height int) *Universe {
	return &Universe{width: width, height: height, cells: make([]Cell, width*height)}
}

// Randomize refills the current buffer with 0.5-probability Alive cells
// from a deterministic seed.
func (u *Universe) Randomize(seed int64) {
	rng := core.NewRNG(seed)
	for i := range u.cells {
		if rng.Bool() {
			u.cells[i] = Alive
		} else {
			u.cells[i] = Dead
		}
	}
}

// Width returns the number of columns.
func (u *Universe) Width() int { return u.width }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.height }

// Cells exposes the current cell buffer in row-major order. The slice is a
// live view for rendering; Tick and resizing replace it wholesale, so
// callers should re-query it after mutating the universe.
func (u *Universe) Cells() []Cell { return u.cells }

// Population returns the number of Alive cells.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// index converts (row, col) to a flat buffer index. Out-of-range
// coordinates panic; wrapping is only ever applied on the neighbor-count
// path, never for direct edits.
func (u *Universe) index(row, col int) int {
	if row < 0 || row >= u.height || col < 0 || col >= u.width {
		panic(fmt.Sprintf("life: cell (%d,%d) out of range for %dx%d universe", row, col, u.width, u.height))
	}
	return row*u.width + col
}

// neighborsAlive counts the Alive cells among the 8 toroidal neighbors of
// (row, col), excluding the cell itself.
func (u *Universe) neighborsAlive(row, col int) int {
	w, h := u.width, u.height
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr + h) % h
			c := (col + dc + w) % w
			count += int(u.cells[r*w+c])
		}
	}
	return count
}

// Tick advances the universe by one generation. The whole grid transitions
// atomically: the next generation is computed into a fresh buffer from
// current-generation state only, then swapped in, and the old buffer is
// discarded.
func (u *Universe) Tick() {
	next := make([]Cell, len(u.cells))
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			i := row*u.width + col
			n := u.neighborsAlive(row, col)
			alive := u.cells[i] == Alive
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				next[i] = Alive
			}
		}
	}
	u.cells = next
}
