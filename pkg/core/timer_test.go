package core

import (
	"testing"
	"time"
)

func TestFixedStepFirstTickImmediate(t *testing.T) {
	fs := NewFixedStep(10)
	if !fs.ShouldStep() {
		t.Fatal("expected the first tick to fire immediately")
	}
}

func TestFixedStepPacing(t *testing.T) {
	fs := NewFixedStep(100) // 10ms per tick
	fs.ShouldStep()
	if fs.ShouldStep() {
		t.Fatal("tick fired again with no time elapsed")
	}
	time.Sleep(15 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("tick did not fire after a full step elapsed")
	}
}

func TestSetTPS(t *testing.T) {
	fs := NewFixedStep(10)
	fs.SetTPS(50)
	if fs.TPS() != 50 {
		t.Fatalf("TPS() = %d after SetTPS(50)", fs.TPS())
	}
	fs.SetTPS(0)
	if fs.TPS() != 10 {
		t.Fatalf("TPS() = %d after SetTPS(0), expected the fallback", fs.TPS())
	}
}
