package perf

import (
	"testing"
	"time"
)

func TestCollectorBasicTiming(t *testing.T) {
	c := NewCollector(10)

	for i := 0; i < 5; i++ {
		c.StartTick()
		time.Sleep(200 * time.Microsecond)
		c.EndTick()
	}

	stats := c.Stats()
	if stats.Avg <= 0 {
		t.Error("expected positive average tick duration")
	}
	if stats.Min <= 0 || stats.Max < stats.Min {
		t.Errorf("inconsistent min/max: %v/%v", stats.Min, stats.Max)
	}
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestCollectorRollingWindow(t *testing.T) {
	c := NewCollector(5)

	// Overfill the window; older samples must be overwritten, not grown.
	for i := 0; i < 12; i++ {
		c.StartTick()
		c.EndTick()
	}

	if c.sampleCount != 5 {
		t.Fatalf("sample count %d, expected window size 5", c.sampleCount)
	}
	if c.Stats().Avg < 0 {
		t.Fatal("expected non-negative average after window wrap")
	}
}

func TestCollectorEmptyStats(t *testing.T) {
	c := NewCollector(10)
	stats := c.Stats()
	if stats.Avg != 0 || stats.Min != 0 || stats.Max != 0 || stats.TicksPerSecond != 0 {
		t.Errorf("expected zero stats for empty collector, got %+v", stats)
	}
}
