package life

import "strings"

const (
	glyphDead  = '◻'
	glyphAlive = '◼'
)

// String renders the grid one row per line, Dead as ◻ and Alive as ◼,
// columns concatenated with no separator and each row terminated by a
// newline. The output is byte-for-byte stable.
func (u *Universe) String() string {
	var b strings.Builder
	b.Grow(u.height * (u.width*3 + 1)) // both glyphs are 3 bytes in UTF-8
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			if u.cells[row*u.width+col] == Alive {
				b.WriteRune(glyphAlive)
			} else {
				b.WriteRune(glyphDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
