package life

import "testing"

func TestStringRendering(t *testing.T) {
	u := NewSize(3, 2)
	u.SetCells([][2]int{{0, 1}, {1, 0}})

	want := "◻◼◻\n◼◻◻\n"
	if got := u.String(); got != want {
		t.Fatalf("rendered %q, expected %q", got, want)
	}
}

func TestStringStableAcrossTicks(t *testing.T) {
	u := NewSize(8, 8)
	u.SetPattern(Block, 3, 3)
	before := u.String()
	u.Tick()
	u.Tick()
	if got := u.String(); got != before {
		t.Fatalf("still life rendering drifted:\n%s", got)
	}
}
