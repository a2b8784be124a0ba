// Package physics provides stateless collision and integration helpers for
// the runner simulation. Functions operate on axis-aligned boxes in
// screen-space units and never mutate shared state; the engine applies the
// results.
package physics

import "math"

// baselineStepMs is the reference step used to normalize integration so that
// gravity feels identical under any fixed-step configuration.
const baselineStepMs = 1000.0 / 60.0

// Rect is an axis-aligned bounding box with float64 screen coordinates.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether two boxes overlap with positive area.
// Boxes touching only at an edge do not collide. The test is symmetric.
func Overlaps(a, b Rect) bool {
	return a.X < b.Right() && a.Right() > b.X &&
		a.Y < b.Bottom() && a.Bottom() > b.Y
}

// Side identifies which face of the second box the first box hit.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// CollisionSide classifies where a hit b by comparing overlap magnitudes on
// each axis: the smaller overlap determines the push-out side. When the
// overlaps are exactly equal the vertical axis wins.
func CollisionSide(a, b Rect) Side {
	if !Overlaps(a, b) {
		return SideNone
	}

	overlapX := math.Min(a.Right(), b.Right()) - math.Max(a.X, b.X)
	overlapY := math.Min(a.Bottom(), b.Bottom()) - math.Max(a.Y, b.Y)

	if overlapY <= overlapX {
		acy := a.Y + a.H/2
		bcy := b.Y + b.H/2
		if acy < bcy {
			return SideTop
		}
		return SideBottom
	}

	acx := a.X + a.W/2
	bcx := b.X + b.W/2
	if acx < bcx {
		return SideLeft
	}
	return SideRight
}

// Separate returns the translation that moves a out of b along the side
// reported by CollisionSide. A zero vector means no overlap.
func Separate(a, b Rect) (dx, dy float64) {
	switch CollisionSide(a, b) {
	case SideTop:
		return 0, b.Y - a.Bottom()
	case SideBottom:
		return 0, b.Bottom() - a.Y
	case SideLeft:
		return b.X - a.Right(), 0
	case SideRight:
		return b.Right() - a.X, 0
	}
	return 0, 0
}

// Config holds the integration constants for a simulation.
type Config struct {
	Gravity         float64 // Downward acceleration per baseline step
	Friction        float64 // Horizontal velocity damping factor per baseline step
	GroundTolerance float64 // Grounded-test band above the ground line
}

// DefaultConfig returns the constants tuned for the runner.
func DefaultConfig() Config {
	return Config{
		Gravity:         0.6,
		Friction:        0.85,
		GroundTolerance: 0.5,
	}
}

// ApplyGravity integrates gravity into a vertical velocity over dtMs
// milliseconds, normalized to the 60 Hz baseline.
func (c Config) ApplyGravity(vy, dtMs float64) float64 {
	return vy + c.Gravity*(dtMs/baselineStepMs)
}

// ApplyFriction damps a horizontal velocity over dtMs milliseconds.
func (c Config) ApplyFriction(vx, dtMs float64) float64 {
	steps := dtMs / baselineStepMs
	return vx * math.Pow(c.Friction, steps)
}

// Grounded reports whether a box rests on the ground line: its bottom edge
// lies within the tolerance band above groundY (or at most on it).
func (c Config) Grounded(r Rect, groundY float64) bool {
	bottom := r.Bottom()
	return bottom >= groundY-c.GroundTolerance && bottom <= groundY+c.GroundTolerance
}

// Hit is the result of a raycast.
type Hit struct {
	Distance float64 // Distance along the ray to the entry point
	X, Y     float64 // Entry point
	Target   int     // Index of the box that was hit
}

// Raycast casts a ray from (ox, oy) along the normalized direction (dx, dy)
// against a set of boxes, using the slab method. It returns the nearest hit
// within maxDist, or false if nothing was struck.
func Raycast(ox, oy, dx, dy, maxDist float64, boxes []Rect) (Hit, bool) {
	best := Hit{Distance: math.Inf(1), Target: -1}

	for i, b := range boxes {
		t, ok := rayBoxEntry(ox, oy, dx, dy, b)
		if !ok || t < 0 || t > maxDist {
			continue
		}
		if t < best.Distance {
			best = Hit{
				Distance: t,
				X:        ox + dx*t,
				Y:        oy + dy*t,
				Target:   i,
			}
		}
	}

	if best.Target < 0 {
		return Hit{}, false
	}
	return best, true
}

// rayBoxEntry returns the entry distance of a ray into a box.
func rayBoxEntry(ox, oy, dx, dy float64, b Rect) (float64, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 2; axis++ {
		var origin, dir, lo, hi float64
		if axis == 0 {
			origin, dir, lo, hi = ox, dx, b.X, b.Right()
		} else {
			origin, dir, lo, hi = oy, dy, b.Y, b.Bottom()
		}

		if dir == 0 {
			if origin < lo || origin > hi {
				return 0, false
			}
			continue
		}

		t1 := (lo - origin) / dir
		t2 := (hi - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		// Ray origin is inside the box
		return 0, true
	}
	return tMin, true
}
