package entity

// Pool is a fixed-capacity arena of reusable Pooled records. Acquire returns
// the first inactive slot; at capacity it returns nil and the caller skips
// the spawn. The pool never shrinks and never exceeds its capacity, so
// steady-state play performs no allocation.
type Pool struct {
	slots    []*Pooled
	factory  func() *Pooled
	capacity int
}

// NewPool creates a pool backed by factory, pre-warming prewarm slots up
// front. capacity is the hard ceiling on live slots.
func NewPool(factory func() *Pooled, prewarm, capacity int) *Pool {
	if capacity < 1 {
		capacity = 1
	}
	if prewarm > capacity {
		prewarm = capacity
	}

	p := &Pool{
		slots:    make([]*Pooled, 0, capacity),
		factory:  factory,
		capacity: capacity,
	}
	for i := 0; i < prewarm; i++ {
		p.slots = append(p.slots, factory())
	}
	return p
}

// Acquire returns an inactive slot reset for reuse, growing up to capacity
// if all pre-warmed slots are live. Returns nil when the pool is exhausted.
func (p *Pool) Acquire() *Pooled {
	for _, s := range p.slots {
		if !s.Active {
			s.Reset()
			s.Active = true
			return s
		}
	}

	if len(p.slots) < p.capacity {
		s := p.factory()
		s.Reset()
		s.Active = true
		p.slots = append(p.slots, s)
		return s
	}

	return nil
}

// Release deactivates a slot without deallocating it.
func (p *Pool) Release(e *Pooled) {
	if e != nil {
		e.Deactivate()
	}
}

// UpdateAll advances every active slot by one dtMs step: position integrates
// velocity scaled by the game speed, and the animation phase accumulates
// elapsed seconds.
func (p *Pool) UpdateAll(dtMs, speed float64) {
	step := dtMs / (1000.0 / 60.0)
	for _, s := range p.slots {
		if !s.Active {
			continue
		}
		s.X += s.VX * speed * step
		s.Y += s.VY * step
		s.Phase += dtMs / 1000.0
	}
}

// ForEachActive visits every active slot in stable order.
func (p *Pool) ForEachActive(fn func(*Pooled)) {
	for _, s := range p.slots {
		if s.Active {
			fn(s)
		}
	}
}

// CleanupOffScreen releases every active slot lying fully outside the
// width×height viewport and returns how many were released.
func (p *Pool) CleanupOffScreen(width, height float64) int {
	released := 0
	for _, s := range p.slots {
		if s.Active && s.OffScreen(width, height) {
			s.Deactivate()
			released++
		}
	}
	return released
}

// ReleaseAll deactivates every slot, e.g. on engine reset.
func (p *Pool) ReleaseAll() {
	for _, s := range p.slots {
		s.Deactivate()
	}
}

// ActiveCount returns the number of live slots.
func (p *Pool) ActiveCount() int {
	n := 0
	for _, s := range p.slots {
		if s.Active {
			n++
		}
	}
	return n
}

// Capacity returns the hard slot ceiling.
func (p *Pool) Capacity() int {
	return p.capacity
}
