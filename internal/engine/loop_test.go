package engine

import (
	"testing"
	"time"
)

func ms(n float64) time.Duration {
	return time.Duration(n * float64(time.Millisecond))
}

func TestLoopConsumesFixedSteps(t *testing.T) {
	l := NewLoop()
	t0 := time.Unix(0, 0)
	l.Start(t0)

	// Exactly two steps' worth of wall time
	steps, _ := l.Tick(t0.Add(ms(2 * StepMs)))
	if steps != 2 {
		t.Errorf("steps = %d, expected 2", steps)
	}
}

func TestLoopAlphaIsFractionalRemainder(t *testing.T) {
	l := NewLoop()
	t0 := time.Unix(0, 0)
	l.Start(t0)

	steps, alpha := l.Tick(t0.Add(ms(1.5 * StepMs)))
	if steps != 1 {
		t.Fatalf("steps = %d, expected 1", steps)
	}
	if alpha < 0.45 || alpha > 0.55 {
		t.Errorf("alpha = %f, expected about 0.5", alpha)
	}
}

func TestLoopAccumulatesAcrossTicks(t *testing.T) {
	l := NewLoop()
	t0 := time.Unix(0, 0)
	l.Start(t0)

	// Two half-step ticks add up to one step
	steps, _ := l.Tick(t0.Add(ms(0.5 * StepMs)))
	if steps != 0 {
		t.Fatalf("first half-step produced %d steps", steps)
	}
	steps, _ = l.Tick(t0.Add(ms(1.0 * StepMs)))
	if steps != 1 {
		t.Errorf("second half-step produced %d steps, expected 1", steps)
	}
}

func TestLoopCapsCatchUp(t *testing.T) {
	l := NewLoop()
	t0 := time.Unix(0, 0)
	l.Start(t0)

	// A long stall must not produce an unbounded step burst
	steps, alpha := l.Tick(t0.Add(2 * time.Second))
	if steps != maxCatchUpSteps {
		t.Errorf("steps = %d, expected the catch-up cap %d", steps, maxCatchUpSteps)
	}
	if alpha != 0 {
		t.Errorf("alpha = %f, expected dropped backlog", alpha)
	}
}

func TestLoopStoppedConsumesNothing(t *testing.T) {
	l := NewLoop()
	t0 := time.Unix(0, 0)
	l.Start(t0)
	l.Stop()

	steps, alpha := l.Tick(t0.Add(time.Second))
	if steps != 0 || alpha != 0 {
		t.Errorf("stopped loop returned steps=%d alpha=%f", steps, alpha)
	}
	if l.Running() {
		t.Error("loop should report stopped")
	}
}

func TestLoopBackwardClockIsIgnored(t *testing.T) {
	l := NewLoop()
	t0 := time.Unix(100, 0)
	l.Start(t0)

	steps, _ := l.Tick(t0.Add(-time.Second))
	if steps != 0 {
		t.Errorf("backward clock produced %d steps", steps)
	}
}
