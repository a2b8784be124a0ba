package particles

import "github.com/pixelhop/runner-arcade/internal/caps"

// Tier is the level-of-detail bucket the particle system operates in.
type Tier int

const (
	TierFull    Tier = iota // 100% of nominal capacity
	TierReduced             // 60%
	TierMinimal             // 25%
)

// String returns a human-readable tier name.
func (t Tier) String() string {
	switch t {
	case TierFull:
		return "full"
	case TierReduced:
		return "reduced"
	case TierMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// Fraction returns the capacity fraction for the tier.
func (t Tier) Fraction() float64 {
	switch t {
	case TierReduced:
		return 0.60
	case TierMinimal:
		return 0.25
	default:
		return 1.0
	}
}

const (
	// fpsWindow is how many frame samples the rolling average covers.
	fpsWindow = 30
	// reducedFPS and minimalFPS are the thresholds the rolling FPS must stay
	// above to hold a tier.
	reducedFPS = 45.0
	minimalFPS = 28.0
	// lowConcurrency is the CPU count at or below which the host is treated
	// as too weak for full effects.
	lowConcurrency = 2
)

// Controller tracks a rolling frame rate and derives the active LOD tier.
// Hardware limits (few CPUs, reduced-motion preference) cap the tier
// regardless of the measured frame rate.
type Controller struct {
	samples [fpsWindow]float64 // frame durations, ms
	count   int
	next    int
	sum     float64
	ceiling Tier
}

// NewController creates a controller with its ceiling derived from the host
// capabilities.
func NewController(q caps.Query) *Controller {
	c := &Controller{ceiling: TierFull}
	if q != nil {
		if q.ReducedMotion() {
			c.ceiling = TierMinimal
		} else if q.HardwareConcurrency() <= lowConcurrency {
			c.ceiling = TierReduced
		}
	}
	return c
}

// Observe records one frame duration in milliseconds.
func (c *Controller) Observe(frameMs float64) {
	if frameMs <= 0 {
		return
	}
	if c.count == fpsWindow {
		c.sum -= c.samples[c.next]
	} else {
		c.count++
	}
	c.samples[c.next] = frameMs
	c.sum += frameMs
	c.next = (c.next + 1) % fpsWindow
}

// FPS returns the rolling average frame rate, or 0 with no samples yet.
func (c *Controller) FPS() float64 {
	if c.count == 0 || c.sum <= 0 {
		return 0
	}
	avgMs := c.sum / float64(c.count)
	return 1000.0 / avgMs
}

// Tier returns the current LOD tier: the frame-rate tier capped by the
// hardware ceiling.
func (c *Controller) Tier() Tier {
	t := TierFull
	if c.count > 0 {
		fps := c.FPS()
		switch {
		case fps < minimalFPS:
			t = TierMinimal
		case fps < reducedFPS:
			t = TierReduced
		}
	}
	if c.ceiling > t {
		t = c.ceiling
	}
	return t
}

// Fraction returns the capacity fraction of the current tier.
func (c *Controller) Fraction() float64 {
	return c.Tier().Fraction()
}
