package life

// Pattern is a named set of Alive coordinates relative to an origin,
// usable to seed a universe with a known shape.
type Pattern struct {
	Name   string
	Descr  string
	Coords [][2]int
}

var (
	// Glider translates diagonally by one cell every four generations.
	Glider = Pattern{
		Name:   "glider",
		Descr:  "5-cell spaceship, period-4 diagonal translation",
		Coords: [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	}

	// Blinker alternates between a horizontal and a vertical bar.
	Blinker = Pattern{
		Name:   "blinker",
		Descr:  "3-cell period-2 oscillator",
		Coords: [][2]int{{0, 0}, {0, 1}, {0, 2}},
	}

	// Block is the smallest still life.
	Block = Pattern{
		Name:   "block",
		Descr:  "2x2 still life",
		Coords: [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	}
)

// Patterns lists the built-in patterns.
func Patterns() []Pattern {
	return []Pattern{Glider, Blinker, Block}
}

// LookupPattern returns the built-in pattern with the given name.
func LookupPattern(name string) (Pattern, bool) {
	for _, p := range Patterns() {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

// SetPattern stamps the pattern's Alive cells with its origin at
// (row, col). Cells outside the pattern coordinates are left untouched;
// out-of-range coordinates fail like any other direct edit.
func (u *Universe) SetPattern(p Pattern, row, col int) {
	for _, rc := range p.Coords {
		u.cells[u.index(row+rc[0], col+rc[1])] = Alive
	}
}
