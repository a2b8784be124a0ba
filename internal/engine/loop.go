package engine

import "time"

// StepMs is the fixed simulation step: 60 simulation steps per second
// regardless of how often the display refreshes.
const StepMs = 1000.0 / 60.0

// maxCatchUpSteps caps how many steps one Tick may consume, so a long stall
// (debugger, suspended laptop) does not trigger a catch-up death spiral. The
// excess accumulator time is discarded.
const maxCatchUpSteps = 5

// Loop converts wall-clock time into fixed simulation steps. Elapsed time
// accumulates and whole steps are drained one at a time; the fractional
// remainder becomes the render interpolation factor.
type Loop struct {
	accumulator float64
	last        time.Time
	running     bool
}

// NewLoop creates a stopped loop.
func NewLoop() *Loop {
	return &Loop{}
}

// Start arms the loop at the given instant. The first Tick after Start
// measures from here.
func (l *Loop) Start(now time.Time) {
	l.last = now
	l.accumulator = 0
	l.running = true
}

// Stop disarms the loop. Ticks while stopped consume nothing, so no further
// simulation steps occur after Stop returns.
func (l *Loop) Stop() {
	l.running = false
	l.accumulator = 0
}

// Running reports whether the loop is armed.
func (l *Loop) Running() bool {
	return l.running
}

// Tick advances the clock to now and returns how many fixed steps are due
// plus the interpolation alpha in [0,1) for rendering between steps.
func (l *Loop) Tick(now time.Time) (steps int, alpha float64) {
	if !l.running {
		return 0, 0
	}

	delta := now.Sub(l.last).Seconds() * 1000
	l.last = now
	if delta < 0 {
		delta = 0
	}
	l.accumulator += delta

	for l.accumulator >= StepMs && steps < maxCatchUpSteps {
		l.accumulator -= StepMs
		steps++
	}
	if l.accumulator >= StepMs {
		// Still behind after the cap: drop the backlog
		l.accumulator = 0
	}

	return steps, l.accumulator / StepMs
}
