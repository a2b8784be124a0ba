package particles

import "math"

// Emission presets. Each effect has its own particle count, palette, and
// velocity distribution; counts are requests, silently trimmed by the
// effective capacity.

// EmitJump emits a small burst of dust kicked upward from the player's feet.
func (s *System) EmitJump(x, y float64) {
	const count = 6
	for i := 0; i < count; i++ {
		p := s.spawn()
		if p == nil {
			return
		}
		p.X = x + s.rng.Float64()*2 - 1
		p.Y = y
		p.VX = s.rng.Float64()*8 - 4
		p.VY = -(4 + s.rng.Float64()*6)
		p.MaxLife = 0.35 + s.rng.Float64()*0.2
		p.Life = p.MaxLife
		p.Size = 1
		p.Color = White
	}
}

// EmitCollect emits a radial sparkle burst at a collected item.
func (s *System) EmitCollect(x, y float64) {
	const count = 10
	palette := []Color{Yellow, White, Cyan}
	for i := 0; i < count; i++ {
		p := s.spawn()
		if p == nil {
			return
		}
		angle := float64(i) / count * 2 * math.Pi
		speed := 6 + s.rng.Float64()*6
		p.X = x
		p.Y = y
		p.VX = math.Cos(angle) * speed
		p.VY = math.Sin(angle) * speed
		p.MaxLife = 0.5 + s.rng.Float64()*0.3
		p.Life = p.MaxLife
		p.Size = 1
		p.Color = palette[i%len(palette)]
	}
}

// EmitGameOver emits a large radial debris burst where the player crashed.
func (s *System) EmitGameOver(x, y float64) {
	const count = 24
	palette := []Color{Red, Orange, Yellow}
	for i := 0; i < count; i++ {
		p := s.spawn()
		if p == nil {
			return
		}
		angle := s.rng.Float64() * 2 * math.Pi
		speed := 4 + s.rng.Float64()*12
		p.X = x
		p.Y = y
		p.VX = math.Cos(angle) * speed
		p.VY = math.Sin(angle)*speed - 3
		p.MaxLife = 0.7 + s.rng.Float64()*0.5
		p.Life = p.MaxLife
		p.Size = 1.5
		p.Color = palette[i%len(palette)]
	}
}
