// Package perf records tick timings around Universe.Tick. It is optional
// instrumentation for the hosts and is never part of the engine contract.
package perf

import (
	"log/slog"
	"time"
)

// Collector tracks tick durations over a rolling window.
type Collector struct {
	windowSize  int
	samples     []time.Duration
	writeIndex  int
	sampleCount int
	tickStart   time.Time
}

// NewCollector creates a collector averaging over windowSize ticks.
func NewCollector(windowSize int) *Collector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &Collector{
		windowSize: windowSize,
		samples:    make([]time.Duration, windowSize),
	}
}

// StartTick begins timing a tick.
func (c *Collector) StartTick() {
	c.tickStart = time.Now()
}

// EndTick finishes timing the current tick and records the sample.
func (c *Collector) EndTick() {
	c.samples[c.writeIndex] = time.Since(c.tickStart)
	c.writeIndex = (c.writeIndex + 1) % c.windowSize
	if c.sampleCount < c.windowSize {
		c.sampleCount++
	}
}

// Stats holds aggregated timing statistics over the window.
type Stats struct {
	Avg            time.Duration
	Min            time.Duration
	Max            time.Duration
	TicksPerSecond float64
}

// Stats computes aggregated statistics over the recorded samples.
func (c *Collector) Stats() Stats {
	if c.sampleCount == 0 {
		return Stats{}
	}

	var total, min, max time.Duration
	for i := 0; i < c.sampleCount; i++ {
		s := c.samples[i]
		total += s
		if i == 0 || s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}

	avg := total / time.Duration(c.sampleCount)
	var tps float64
	if avg > 0 {
		tps = float64(time.Second) / float64(avg)
	}
	return Stats{Avg: avg, Min: min, Max: max, TicksPerSecond: tps}
}

// LogValue implements slog.LogValuer for structured logging.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("avg_tick_us", s.Avg.Microseconds()),
		slog.Int64("min_tick_us", s.Min.Microseconds()),
		slog.Int64("max_tick_us", s.Max.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	)
}

// Log emits the stats through the default slog logger.
func (s Stats) Log() {
	slog.Info("tick timing", "stats", s)
}
