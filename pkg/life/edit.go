package life

// ToggleCell flips the single cell at (row, col). Out-of-range coordinates
// panic; callers must pre-validate.
func (u *Universe) ToggleCell(row, col int) {
	u.cells[u.index(row, col)].Toggle()
}

// Clear sets every cell to Dead. Dimensions are unchanged.
func (u *Universe) Clear() {
	for i := range u.cells {
		u.cells[i] = Dead
	}
}

// SetCells marks each (row, col) pair Alive. Out-of-range pairs fail the
// same way as every other direct edit.
func (u *Universe) SetCells(coords [][2]int) {
	for _, rc := range coords {
		u.cells[u.index(rc[0], rc[1])] = Alive
	}
}

// SetWidth replaces the width and reallocates the buffer to the new total
// size with every cell Dead. The previous pattern is deliberately not
// preserved.
func (u *Universe) SetWidth(width int) {
	u.width = width
	u.cells = make([]Cell, width*u.height)
}

// SetHeight replaces the height and reallocates the buffer to the new
// total size with every cell Dead, discarding the previous pattern.
func (u *Universe) SetHeight(height int) {
	u.height = height
	u.cells = make([]Cell, u.width*height)
}

// gliderStamp is the fixed 3×3 glider window, row-major from the top-left
// corner relative to the stamp center.
var gliderStamp = [3][3]Cell{
	{Dead, Alive, Dead},
	{Dead, Dead, Alive},
	{Alive, Alive, Alive},
}

// InsertGlider stamps the glider centered at (row, col), overwriting the
// whole 3×3 window including its Dead cells. Indexing is unwrapped, so
// callers must keep row-1, col-1, row+1 and col+1 in bounds.
func (u *Universe) InsertGlider(row, col int) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			u.cells[u.index(row+dr, col+dc)] = gliderStamp[dr+1][dc+1]
		}
	}
}
