package life

import "testing"

func TestLookupPattern(t *testing.T) {
	for _, p := range Patterns() {
		got, ok := LookupPattern(p.Name)
		if !ok || got.Name != p.Name {
			t.Fatalf("pattern %q not found by name", p.Name)
		}
	}
	if _, ok := LookupPattern("gosper-gun"); ok {
		t.Fatal("unknown pattern name resolved")
	}
}

func TestBlinkerPatternOscillates(t *testing.T) {
	u := NewSize(7, 7)
	u.SetPattern(Blinker, 3, 2)
	start := u.String()

	u.Tick()
	if u.String() == start {
		t.Fatal("blinker did not change after one tick")
	}
	u.Tick()
	if u.String() != start {
		t.Fatal("blinker did not return to its phase after two ticks")
	}
}

func TestGliderPatternMatchesStamp(t *testing.T) {
	a := NewSize(8, 8)
	a.SetPattern(Glider, 1, 1)
	b := NewSize(8, 8)
	b.InsertGlider(2, 2)
	if a.String() != b.String() {
		t.Fatalf("pattern and stamp disagree:\n%s\nvs\n%s", a, b)
	}
}
