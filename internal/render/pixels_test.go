package render

import (
	"image/color"
	"testing"

	"wraplife/pkg/life"
)

func TestFillCellsRGBA(t *testing.T) {
	cells := []life.Cell{life.Dead, life.Alive, life.Dead, life.Alive}
	buf := make([]byte, 4*len(cells))
	fillCellsRGBA(buf, cells, color.White, color.Black)

	for i, c := range cells {
		base := i * 4
		want := byte(0x00)
		if c == life.Alive {
			want = 0xff
		}
		for ch := 0; ch < 3; ch++ {
			if buf[base+ch] != want {
				t.Fatalf("cell %d channel %d = %#x, expected %#x", i, ch, buf[base+ch], want)
			}
		}
		if buf[base+3] != 0xff {
			t.Fatalf("cell %d alpha = %#x, expected opaque", i, buf[base+3])
		}
	}
}
