// Package entity defines the simulation objects of the runner and the
// fixed-capacity pools they are recycled through. Short-lived objects
// (obstacles, collectibles) are never constructed per spawn; they are
// acquired from a pool, repositioned, and released back when consumed or
// off-screen.
package entity

import (
	"sync/atomic"

	"github.com/pixelhop/runner-arcade/internal/physics"
)

// Kind tags what role an entity plays in the simulation.
type Kind int

const (
	KindPlayer Kind = iota
	KindObstacle
	KindCollectible
	KindParticle
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindObstacle:
		return "obstacle"
	case KindCollectible:
		return "collectible"
	case KindParticle:
		return "particle"
	default:
		return "unknown"
	}
}

// Obstacle subtypes: the two hazard shapes the runner must jump over.
const (
	ObstacleCactus = iota
	ObstacleRock
)

// Collectible subtypes with their point values.
const (
	CollectibleCoin = iota
	CollectibleGem
)

// CollectiblePoints returns the score value for a collectible subtype.
func CollectiblePoints(subtype int) int {
	if subtype == CollectibleGem {
		return 25
	}
	return 10
}

var nextID atomic.Int64

// Entity is the shared state of every simulation object. Inactive entities
// are skipped by update, collision, and render passes and are eligible for
// pool reuse.
type Entity struct {
	ID     int64
	Kind   Kind
	X, Y   float64 // Top-left corner in screen-space units
	W, H   float64
	VX, VY float64
	Active bool
}

// NewEntity creates an entity of the given kind with a fresh identifier.
func NewEntity(kind Kind) Entity {
	return Entity{
		ID:   nextID.Add(1),
		Kind: kind,
	}
}

// Bounds returns the entity's collision box.
func (e *Entity) Bounds() physics.Rect {
	return physics.NewRect(e.X, e.Y, e.W, e.H)
}

// Deactivate marks the entity for pool reuse.
func (e *Entity) Deactivate() {
	e.Active = false
}

// OffScreen reports whether the entity lies fully outside a width×height
// viewport.
func (e *Entity) OffScreen(width, height float64) bool {
	return e.X+e.W < 0 || e.X > width || e.Y+e.H < 0 || e.Y > height
}

// Pooled is the reusable record backing obstacles and collectibles. Subtype
// selects the hazard or reward variant; Phase drives per-entity animation.
type Pooled struct {
	Entity
	Subtype int
	Phase   float64
}

// Reset reinitializes the transient fields for a fresh spawn, keeping the
// identifier stable across reuses.
func (p *Pooled) Reset() {
	p.X, p.Y = 0, 0
	p.VX, p.VY = 0, 0
	p.Subtype = 0
	p.Phase = 0
}
