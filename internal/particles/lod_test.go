package particles

import (
	"testing"

	"github.com/pixelhop/runner-arcade/internal/caps"
)

func observeFrames(c *Controller, frameMs float64, n int) {
	for i := 0; i < n; i++ {
		c.Observe(frameMs)
	}
}

func TestControllerTiersByFrameRate(t *testing.T) {
	tests := []struct {
		name     string
		frameMs  float64
		expected Tier
	}{
		{"60fps holds full detail", 1000.0 / 60.0, TierFull},
		{"50fps holds full detail", 20, TierFull},
		{"35fps drops to reduced", 1000.0 / 35.0, TierReduced},
		{"20fps drops to minimal", 50, TierMinimal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewController(caps.Static{CPUs: 8})
			observeFrames(c, tc.frameMs, fpsWindow)
			if got := c.Tier(); got != tc.expected {
				t.Errorf("Tier at %.1fms frames = %v, expected %v", tc.frameMs, got, tc.expected)
			}
		})
	}
}

func TestControllerNoSamplesIsFull(t *testing.T) {
	c := NewController(caps.Static{CPUs: 8})
	if got := c.Tier(); got != TierFull {
		t.Errorf("Tier with no samples = %v, expected TierFull", got)
	}
	if got := c.FPS(); got != 0 {
		t.Errorf("FPS with no samples = %f, expected 0", got)
	}
}

func TestControllerHardwareCeilings(t *testing.T) {
	// Dual-core host never exceeds reduced detail even at 60fps
	c := NewController(caps.Static{CPUs: 2})
	observeFrames(c, 1000.0/60.0, fpsWindow)
	if got := c.Tier(); got != TierReduced {
		t.Errorf("dual-core tier = %v, expected TierReduced", got)
	}

	// Reduced-motion preference pins minimal detail
	c = NewController(caps.Static{CPUs: 16, Reduced: true})
	observeFrames(c, 1000.0/60.0, fpsWindow)
	if got := c.Tier(); got != TierMinimal {
		t.Errorf("reduced-motion tier = %v, expected TierMinimal", got)
	}
}

func TestControllerRollingWindowRecovers(t *testing.T) {
	c := NewController(caps.Static{CPUs: 8})

	// A stretch of bad frames...
	observeFrames(c, 50, fpsWindow)
	if got := c.Tier(); got != TierMinimal {
		t.Fatalf("tier after slow frames = %v, expected TierMinimal", got)
	}

	// ...followed by a full window of good frames restores full detail
	observeFrames(c, 1000.0/60.0, fpsWindow)
	if got := c.Tier(); got != TierFull {
		t.Errorf("tier after recovery = %v, expected TierFull", got)
	}
}

func TestLowFrameRateShrinksCapacityAndEvicts(t *testing.T) {
	s := NewSystem(40, 0, 1, fastHost())

	// Fill at full detail
	s.EmitGameOver(10, 10) // 24 particles
	if got := s.ActiveCount(); got != 24 {
		t.Fatalf("ActiveCount = %d, expected 24", got)
	}

	// Sustained 20fps frames push the system to the minimal tier (25% of 40
	// = 10); the same update must evict the excess immediately.
	for i := 0; i < fpsWindow; i++ {
		s.Observe(50)
	}
	s.Update(1000.0 / 60.0)

	if got := s.EffectiveCapacity(); got != 10 {
		t.Errorf("EffectiveCapacity = %d, expected 10", got)
	}
	if got := s.ActiveCount(); got > 10 {
		t.Errorf("ActiveCount after LOD drop = %d, expected at most 10", got)
	}
}

func TestTierFractions(t *testing.T) {
	if TierFull.Fraction() != 1.0 {
		t.Error("full tier fraction should be 1.0")
	}
	if TierReduced.Fraction() != 0.60 {
		t.Error("reduced tier fraction should be 0.60")
	}
	if TierMinimal.Fraction() != 0.25 {
		t.Error("minimal tier fraction should be 0.25")
	}
}
