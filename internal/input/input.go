// Package input normalizes heterogeneous input families (keyboard, mouse,
// touch, pointer) and programmatic triggers into one boolean command state
// consumed by the engine once per simulation step. Per-action callbacks are
// invoked defensively so a misbehaving listener can never break the loop.
package input

import (
	"time"

	"github.com/charmbracelet/log"
)

// Action is a semantic game command, abstracted from physical input.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionJump
	ActionPause
	ActionStart
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionJump:
		return "jump"
	case ActionPause:
		return "pause"
	case ActionStart:
		return "start"
	default:
		return "none"
	}
}

// Source identifies which input family produced a press.
type Source int

const (
	SourceKeyboard Source = iota
	SourceMouse
	SourceTouch
	SourcePointer
	SourceProgram
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceMouse:
		return "mouse"
	case SourceTouch:
		return "touch"
	case SourcePointer:
		return "pointer"
	default:
		return "program"
	}
}

// ElementScoped reports whether the family attaches to the render surface
// itself and must suppress the host's default handling (page scroll/zoom).
// Keyboard and mouse listen passively at the window level.
func (s Source) ElementScoped() bool {
	return s == SourceTouch || s == SourcePointer
}

const (
	// TriggerDebounce suppresses duplicate programmatic jump triggers.
	TriggerDebounce = 100 * time.Millisecond
	// TriggerHold is how long a programmatic trigger stays pressed, so a
	// single call behaves like a tap rather than a held key.
	TriggerHold = 50 * time.Millisecond
)

// State is the command snapshot the engine reads each step.
type State struct {
	Left, Right bool
	Up, Down    bool
	Jump        bool
	Pause       bool
}

// Horizontal returns -1, 0, or 1 for the horizontal intent.
func (s State) Horizontal() float64 {
	switch {
	case s.Left && !s.Right:
		return -1
	case s.Right && !s.Left:
		return 1
	}
	return 0
}

// Vertical returns -1 (up), 0, or 1 (down) for the vertical intent.
func (s State) Vertical() float64 {
	switch {
	case s.Up && !s.Down:
		return -1
	case s.Down && !s.Up:
		return 1
	}
	return 0
}

// Controller unifies all input families into one command state. It is driven
// cooperatively from the host loop; the injected clock makes debounce and
// auto-release deterministic under test.
type Controller struct {
	clock     func() time.Time
	logger    *log.Logger
	pressed   map[Action]bool
	releaseAt map[Action]time.Time // Pending auto-releases from Trigger
	lastFire  map[Action]time.Time // Debounce bookkeeping
	callbacks map[Action][]func(Action)
	paused    bool
	started   bool
}

// NewController creates a controller. clock may be nil (wall clock); logger
// may be nil (default logger).
func NewController(clock func() time.Time, logger *log.Logger) *Controller {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		clock:     clock,
		logger:    logger,
		pressed:   make(map[Action]bool),
		releaseAt: make(map[Action]time.Time),
		lastFire:  make(map[Action]time.Time),
		callbacks: make(map[Action][]func(Action)),
	}
}

// Press marks an action held down by the given source and fires callbacks.
func (c *Controller) Press(src Source, a Action) {
	if a == ActionNone {
		return
	}
	delete(c.releaseAt, a) // A real press overrides any pending auto-release
	c.pressed[a] = true
	c.dispatch(a)
}

// Release clears a held action.
func (c *Controller) Release(a Action) {
	delete(c.pressed, a)
	delete(c.releaseAt, a)
}

// Trigger is the programmatic path for non-pointer callers (UI buttons,
// tests). Jump triggers are debounced and auto-release after TriggerHold;
// pause and start toggle their boolean state. Returns whether the trigger
// was accepted.
func (c *Controller) Trigger(a Action) bool {
	now := c.clock()

	switch a {
	case ActionJump:
		if last, ok := c.lastFire[a]; ok && now.Sub(last) < TriggerDebounce {
			return false
		}
		c.lastFire[a] = now
		c.pressed[a] = true
		c.releaseAt[a] = now.Add(TriggerHold)
		c.dispatch(a)
		return true

	case ActionPause:
		c.paused = !c.paused
		c.dispatch(a)
		return true

	case ActionStart:
		c.started = !c.started
		c.dispatch(a)
		return true

	case ActionNone:
		return false

	default:
		c.pressed[a] = true
		c.releaseAt[a] = now.Add(TriggerHold)
		c.dispatch(a)
		return true
	}
}

// IsPressed reports whether an action is currently held, expiring pending
// auto-releases first.
func (c *Controller) IsPressed(a Action) bool {
	c.expire()
	return c.pressed[a]
}

// Snapshot returns the full command state for one simulation step.
func (c *Controller) Snapshot() State {
	c.expire()
	return State{
		Left:  c.pressed[ActionLeft],
		Right: c.pressed[ActionRight],
		Up:    c.pressed[ActionUp],
		Down:  c.pressed[ActionDown],
		Jump:  c.pressed[ActionJump],
		Pause: c.paused,
	}
}

// expire releases programmatic presses whose hold window has passed.
func (c *Controller) expire() {
	if len(c.releaseAt) == 0 {
		return
	}
	now := c.clock()
	for a, at := range c.releaseAt {
		if !now.Before(at) {
			delete(c.releaseAt, a)
			delete(c.pressed, a)
		}
	}
}

// Paused returns the pause toggle state.
func (c *Controller) Paused() bool {
	return c.paused
}

// SetPaused forces the pause toggle, e.g. when the engine pauses itself.
func (c *Controller) SetPaused(v bool) {
	c.paused = v
}

// Started returns the start toggle state.
func (c *Controller) Started() bool {
	return c.started
}

// On registers a callback for an action. Multiple callbacks per action are
// supported and invoked in registration order.
func (c *Controller) On(a Action, fn func(Action)) {
	if fn == nil {
		return
	}
	c.callbacks[a] = append(c.callbacks[a], fn)
}

// Reset clears all pressed state and toggles; registered callbacks survive.
func (c *Controller) Reset() {
	c.pressed = make(map[Action]bool)
	c.releaseAt = make(map[Action]time.Time)
	c.lastFire = make(map[Action]time.Time)
	c.paused = false
	c.started = false
}

// dispatch invokes every callback for an action inside a recover guard.
func (c *Controller) dispatch(a Action) {
	for _, fn := range c.callbacks[a] {
		c.invoke(a, fn)
	}
}

func (c *Controller) invoke(a Action, fn func(Action)) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("input callback panicked", "action", a.String(), "panic", r)
		}
	}()
	fn(a)
}
