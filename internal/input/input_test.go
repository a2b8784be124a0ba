package input

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

// testClock is a manually advanced clock for deterministic debounce tests.
type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Unix(1000, 0)}
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestPressReleaseState(t *testing.T) {
	clk := newTestClock()
	c := NewController(clk.Now, quietLogger())

	c.Press(SourceKeyboard, ActionLeft)
	c.Press(SourceKeyboard, ActionJump)

	st := c.Snapshot()
	if !st.Left || !st.Jump {
		t.Error("pressed actions missing from snapshot")
	}
	if st.Right || st.Down {
		t.Error("unpressed actions present in snapshot")
	}

	c.Release(ActionLeft)
	if c.IsPressed(ActionLeft) {
		t.Error("released action still pressed")
	}
	if !c.IsPressed(ActionJump) {
		t.Error("unrelated release cleared another action")
	}
}

func TestDirectionalHelpers(t *testing.T) {
	tests := []struct {
		name  string
		state State
		h, v  float64
	}{
		{"neutral", State{}, 0, 0},
		{"left", State{Left: true}, -1, 0},
		{"right", State{Right: true}, 1, 0},
		{"both horizontal cancel", State{Left: true, Right: true}, 0, 0},
		{"up", State{Up: true}, 0, -1},
		{"down", State{Down: true}, 0, 1},
		{"both vertical cancel", State{Up: true, Down: true}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.state.Horizontal(); got != tc.h {
				t.Errorf("Horizontal() = %f, expected %f", got, tc.h)
			}
			if got := tc.state.Vertical(); got != tc.v {
				t.Errorf("Vertical() = %f, expected %f", got, tc.v)
			}
		})
	}
}

func TestTriggerJumpDebounce(t *testing.T) {
	clk := newTestClock()
	c := NewController(clk.Now, quietLogger())

	if !c.Trigger(ActionJump) {
		t.Fatal("first jump trigger should be accepted")
	}

	// Re-entrant trigger inside the debounce window is dropped
	clk.Advance(30 * time.Millisecond)
	if c.Trigger(ActionJump) {
		t.Error("trigger within debounce window should be rejected")
	}

	// After the window it fires again
	clk.Advance(TriggerDebounce)
	if !c.Trigger(ActionJump) {
		t.Error("trigger after debounce window should be accepted")
	}
}

func TestTriggerAutoRelease(t *testing.T) {
	clk := newTestClock()
	c := NewController(clk.Now, quietLogger())

	c.Trigger(ActionJump)
	if !c.IsPressed(ActionJump) {
		t.Fatal("jump should be pressed right after trigger")
	}

	// Still held inside the hold window
	clk.Advance(TriggerHold / 2)
	if !c.IsPressed(ActionJump) {
		t.Error("jump should remain pressed within the hold window")
	}

	// Auto-released afterwards: a tap, not a held key
	clk.Advance(TriggerHold)
	if c.IsPressed(ActionJump) {
		t.Error("jump should auto-release after the hold window")
	}
}

func TestRealPressOverridesAutoRelease(t *testing.T) {
	clk := newTestClock()
	c := NewController(clk.Now, quietLogger())

	c.Trigger(ActionJump)
	c.Press(SourceKeyboard, ActionJump) // Real key-down takes over

	clk.Advance(10 * TriggerHold)
	if !c.IsPressed(ActionJump) {
		t.Error("real press must not be auto-released")
	}
}

func TestTriggerPauseToggles(t *testing.T) {
	clk := newTestClock()
	c := NewController(clk.Now, quietLogger())

	c.Trigger(ActionPause)
	if !c.Paused() {
		t.Error("first pause trigger should set paused")
	}
	c.Trigger(ActionPause)
	if c.Paused() {
		t.Error("second pause trigger should clear paused")
	}

	c.Trigger(ActionStart)
	if !c.Started() {
		t.Error("start trigger should set started")
	}
}

func TestCallbacksFireInOrder(t *testing.T) {
	clk := newTestClock()
	c := NewController(clk.Now, quietLogger())

	var order []int
	c.On(ActionJump, func(Action) { order = append(order, 1) })
	c.On(ActionJump, func(Action) { order = append(order, 2) })

	c.Trigger(ActionJump)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("callback order = %v, expected [1 2]", order)
	}
}

func TestPanickingCallbackIsIsolated(t *testing.T) {
	clk := newTestClock()
	c := NewController(clk.Now, quietLogger())

	fired := false
	c.On(ActionJump, func(Action) { panic("bad listener") })
	c.On(ActionJump, func(Action) { fired = true })

	c.Trigger(ActionJump) // Must not panic out

	if !fired {
		t.Error("callback after a panicking one should still fire")
	}
	if !c.IsPressed(ActionJump) {
		t.Error("press state should survive a panicking callback")
	}
}

func TestSourceScoping(t *testing.T) {
	if SourceKeyboard.ElementScoped() || SourceMouse.ElementScoped() {
		t.Error("keyboard and mouse are passive window-level sources")
	}
	if !SourceTouch.ElementScoped() || !SourcePointer.ElementScoped() {
		t.Error("touch and pointer are element-scoped sources")
	}
}

func TestResetClearsStateKeepsCallbacks(t *testing.T) {
	clk := newTestClock()
	c := NewController(clk.Now, quietLogger())

	count := 0
	c.On(ActionJump, func(Action) { count++ })

	c.Press(SourceKeyboard, ActionLeft)
	c.Trigger(ActionPause)
	c.Reset()

	if c.IsPressed(ActionLeft) || c.Paused() {
		t.Error("Reset should clear pressed state and toggles")
	}

	c.Trigger(ActionJump)
	if count != 1 {
		t.Error("callbacks should survive Reset")
	}
}
