package physics

import (
	"math"
	"testing"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(20, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 20, 10, 10),
			expected: false,
		},
		{
			name:     "touching at vertical edge (zero area)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching at horizontal edge (zero area)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "touching at corner (zero area)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Symmetry must hold for every pair
			if got := Overlaps(tc.b, tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCollisionSide(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected Side
	}{
		{
			name:     "no overlap",
			a:        NewRect(0, 0, 4, 4),
			b:        NewRect(100, 100, 4, 4),
			expected: SideNone,
		},
		{
			name: "landing from above",
			// a overlaps b by 1 vertically and 6 horizontally
			a:        NewRect(2, 0, 8, 10),
			b:        NewRect(0, 9, 8, 10),
			expected: SideTop,
		},
		{
			name:     "hitting from below",
			a:        NewRect(2, 9, 8, 10),
			b:        NewRect(0, 0, 8, 10),
			expected: SideBottom,
		},
		{
			name: "side hit from the left",
			// a overlaps b by 1 horizontally and 6 vertically
			a:        NewRect(0, 2, 10, 8),
			b:        NewRect(9, 0, 10, 8),
			expected: SideLeft,
		},
		{
			name:     "side hit from the right",
			a:        NewRect(9, 2, 10, 8),
			b:        NewRect(0, 0, 10, 8),
			expected: SideRight,
		},
		{
			name: "exactly equal overlaps resolve vertically",
			// Both axes overlap by exactly 5
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: SideTop,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CollisionSide(tc.a, tc.b); got != tc.expected {
				t.Errorf("CollisionSide() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSeparate(t *testing.T) {
	// a sank 2 units into the top of b; separation should lift it out
	a := NewRect(2, 0, 8, 10)
	b := NewRect(0, 8, 20, 10)

	dx, dy := Separate(a, b)
	if dx != 0 {
		t.Errorf("Separate() dx = %f, expected 0", dx)
	}
	if dy != -2 {
		t.Errorf("Separate() dy = %f, expected -2", dy)
	}

	moved := NewRect(a.X+dx, a.Y+dy, a.W, a.H)
	if Overlaps(moved, b) {
		t.Error("boxes still overlap after separation")
	}
}

func TestApplyGravityBaselineStep(t *testing.T) {
	cfg := Config{Gravity: 0.6}

	// One baseline step adds exactly one gravity increment
	vy := cfg.ApplyGravity(0, 1000.0/60.0)
	if math.Abs(vy-0.6) > 1e-9 {
		t.Errorf("ApplyGravity(baseline) = %f, expected 0.6", vy)
	}

	// A half step adds half the increment
	vy = cfg.ApplyGravity(0, 1000.0/120.0)
	if math.Abs(vy-0.3) > 1e-9 {
		t.Errorf("ApplyGravity(half step) = %f, expected 0.3", vy)
	}

	// Accumulates on existing velocity
	vy = cfg.ApplyGravity(2.0, 1000.0/60.0)
	if math.Abs(vy-2.6) > 1e-9 {
		t.Errorf("ApplyGravity(stacked) = %f, expected 2.6", vy)
	}
}

func TestApplyFriction(t *testing.T) {
	cfg := Config{Friction: 0.5}

	vx := cfg.ApplyFriction(8.0, 1000.0/60.0)
	if math.Abs(vx-4.0) > 1e-9 {
		t.Errorf("ApplyFriction(one step) = %f, expected 4.0", vx)
	}

	// Two baseline steps worth of time squares the damping factor
	vx = cfg.ApplyFriction(8.0, 2*1000.0/60.0)
	if math.Abs(vx-2.0) > 1e-9 {
		t.Errorf("ApplyFriction(two steps) = %f, expected 2.0", vx)
	}
}

func TestGrounded(t *testing.T) {
	cfg := Config{GroundTolerance: 0.5}
	groundY := 20.0

	tests := []struct {
		name     string
		rect     Rect
		expected bool
	}{
		{"resting exactly on ground", NewRect(0, 10, 4, 10), true},
		{"within tolerance above", NewRect(0, 9.6, 4, 10), true},
		{"hovering above tolerance", NewRect(0, 8, 4, 10), false},
		{"mid-air", NewRect(0, 0, 4, 4), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cfg.Grounded(tc.rect, groundY); got != tc.expected {
				t.Errorf("Grounded() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRaycast(t *testing.T) {
	boxes := []Rect{
		NewRect(10, 0, 5, 20),
		NewRect(30, 0, 5, 20),
	}

	// Ray pointing right hits the nearest box first
	hit, ok := Raycast(0, 10, 1, 0, 100, boxes)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Target != 0 {
		t.Errorf("hit target = %d, expected 0", hit.Target)
	}
	if math.Abs(hit.Distance-10) > 1e-9 {
		t.Errorf("hit distance = %f, expected 10", hit.Distance)
	}
	if math.Abs(hit.X-10) > 1e-9 || math.Abs(hit.Y-10) > 1e-9 {
		t.Errorf("hit point = (%f, %f), expected (10, 10)", hit.X, hit.Y)
	}

	// Ray pointing away misses
	if _, ok := Raycast(0, 10, -1, 0, 100, boxes); ok {
		t.Error("ray pointing away should miss")
	}

	// Ray shorter than the distance misses
	if _, ok := Raycast(0, 10, 1, 0, 5, boxes); ok {
		t.Error("ray shorter than target distance should miss")
	}

	// Ray offset above the boxes misses
	if _, ok := Raycast(0, 30, 1, 0, 100, boxes); ok {
		t.Error("ray passing above boxes should miss")
	}
}

func TestRaycastOriginInsideBox(t *testing.T) {
	boxes := []Rect{NewRect(0, 0, 10, 10)}

	hit, ok := Raycast(5, 5, 1, 0, 100, boxes)
	if !ok {
		t.Fatal("ray starting inside a box should hit it")
	}
	if hit.Distance != 0 {
		t.Errorf("hit distance = %f, expected 0", hit.Distance)
	}
}
