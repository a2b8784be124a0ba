package entity

import "github.com/pixelhop/runner-arcade/internal/physics"

// Player is the one entity with engine-scoped lifetime: created once on
// engine initialization and repositioned in place on reset, never recreated.
type Player struct {
	Entity
	JumpPower float64 // Upward impulse applied on jump (negative = up)
	GroundY   float64 // Y of the ground line the player stands on
	startX    float64
}

// NewPlayer creates the player standing on the ground line.
func NewPlayer(x, groundY, w, h, jumpPower float64) *Player {
	p := &Player{
		Entity:    NewEntity(KindPlayer),
		JumpPower: jumpPower,
		GroundY:   groundY,
		startX:    x,
	}
	p.W, p.H = w, h
	p.Active = true
	p.ResetPosition()
	return p
}

// ResetPosition returns the player to the starting spot on the ground with
// zero velocity. Identity and dimensions are preserved.
func (p *Player) ResetPosition() {
	p.X = p.startX
	p.Y = p.GroundY - p.H
	p.VX, p.VY = 0, 0
	p.Active = true
}

// OnGround reports whether the player currently rests on the ground line.
func (p *Player) OnGround(cfg physics.Config) bool {
	return cfg.Grounded(p.Bounds(), p.GroundY)
}

// Jump applies the jump impulse if the player is grounded. Returns whether
// the jump happened.
func (p *Player) Jump(cfg physics.Config) bool {
	if !p.OnGround(cfg) {
		return false
	}
	p.VY = p.JumpPower
	return true
}

// Land clamps the player onto the ground line after a fall.
func (p *Player) Land() {
	p.Y = p.GroundY - p.H
	p.VY = 0
}

// SetGroundY moves the ground reference, e.g. after a terminal resize, and
// re-grounds the player if it would end up below the new line.
func (p *Player) SetGroundY(groundY float64) {
	p.GroundY = groundY
	if p.Y+p.H > groundY {
		p.Land()
	}
}
