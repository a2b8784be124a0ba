// Package particles implements the pooled visual-effect system of the
// runner. Particles live in their own fixed-capacity pool, separate from the
// gameplay entity pool, and the system degrades its effective capacity under
// low frame rates or weak hardware (see lod.go).
package particles

import (
	"math/rand"

	"github.com/pixelhop/runner-arcade/internal/caps"
)

// Color is the palette slot a particle is drawn with. The render layer maps
// these onto terminal colors.
type Color uint8

const (
	White Color = iota
	Yellow
	Orange
	Red
	Green
	Cyan
	Magenta
)

// Particle is one pooled effect sprite. Life counts down in seconds; alpha
// and size shrink with the remaining-life fraction.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64 // Remaining life in seconds
	MaxLife float64
	Size    float64
	Color   Color
	Active  bool
}

// LifeFraction returns remaining life as a fraction of max life, in [0,1].
func (p *Particle) LifeFraction() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	f := p.Life / p.MaxLife
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// RenderSize returns the current draw size, shrunk by the life fraction.
func (p *Particle) RenderSize() float64 {
	return p.Size * p.LifeFraction()
}

// System owns the particle pool and its LOD controller.
type System struct {
	pool       []Particle
	nominalCap int
	lod        *Controller
	gravity    float64 // Units per second², applied uniformly
	rng        *rand.Rand
}

// NewSystem creates a particle system with the given nominal capacity. The
// capability query seeds the LOD controller; pass caps.Static from tests.
func NewSystem(capacity int, gravity float64, seed int64, q caps.Query) *System {
	if capacity < 1 {
		capacity = 1
	}
	return &System{
		pool:       make([]Particle, capacity),
		nominalCap: capacity,
		lod:        NewController(q),
		gravity:    gravity,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Observe feeds one frame duration (ms) into the LOD frame-rate tracker.
// The engine calls this once per rendered frame.
func (s *System) Observe(frameMs float64) {
	s.lod.Observe(frameMs)
}

// EffectiveCapacity returns the current LOD-scaled particle budget.
func (s *System) EffectiveCapacity() int {
	n := int(float64(s.nominalCap) * s.lod.Fraction())
	if n < 1 {
		n = 1
	}
	return n
}

// Tier returns the current LOD tier.
func (s *System) Tier() Tier {
	return s.lod.Tier()
}

// Update ages every active particle by dtMs, applies gravity, expires dead
// ones, and enforces the effective capacity by evicting the shortest-lived
// extras in the same call.
func (s *System) Update(dtMs float64) {
	dt := dtMs / 1000.0
	for i := range s.pool {
		p := &s.pool[i]
		if !p.Active {
			continue
		}
		p.Life -= dt
		if p.Life <= 0 {
			p.Active = false
			continue
		}
		p.VY += s.gravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
	}

	s.enforceCapacity()
}

// enforceCapacity evicts active particles with the least remaining life
// until the active count fits the effective capacity.
func (s *System) enforceCapacity() {
	limit := s.EffectiveCapacity()
	excess := s.ActiveCount() - limit
	for excess > 0 {
		victim := -1
		least := 0.0
		for i := range s.pool {
			p := &s.pool[i]
			if !p.Active {
				continue
			}
			if victim < 0 || p.Life < least {
				victim = i
				least = p.Life
			}
		}
		if victim < 0 {
			return
		}
		s.pool[victim].Active = false
		excess--
	}
}

// ForEachActive visits active particles read-only render passes must not
// mutate through.
func (s *System) ForEachActive(fn func(*Particle)) {
	for i := range s.pool {
		if s.pool[i].Active {
			fn(&s.pool[i])
		}
	}
}

// ActiveCount returns the number of live particles.
func (s *System) ActiveCount() int {
	n := 0
	for i := range s.pool {
		if s.pool[i].Active {
			n++
		}
	}
	return n
}

// Clear deactivates every particle, e.g. on engine reset.
func (s *System) Clear() {
	for i := range s.pool {
		s.pool[i].Active = false
	}
}

// spawn claims an inactive slot, or gives up silently when the effective
// budget is spent. Pool exhaustion is never an error.
func (s *System) spawn() *Particle {
	if s.ActiveCount() >= s.EffectiveCapacity() {
		return nil
	}
	for i := range s.pool {
		if !s.pool[i].Active {
			p := &s.pool[i]
			*p = Particle{Active: true}
			return p
		}
	}
	return nil
}
