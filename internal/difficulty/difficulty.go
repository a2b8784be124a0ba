// Package difficulty computes the smoothed pacing scalar for the runner.
// The scalar lives in [0,1] and is derived from elapsed play time and score;
// gameplay multipliers (spawn rate, speed) are linear interpolations of
// configured ranges by the scalar and are never stored independently.
package difficulty

import "math"

// Range is a [Min, Max] interval a multiplier is interpolated over.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Lerp interpolates the range by t in [0,1].
func (r Range) Lerp(t float64) float64 {
	return r.Min + (r.Max-r.Min)*clamp01(t)
}

// Params configures the difficulty curve.
type Params struct {
	// TimeConstant is the τ of the saturating time term 1-e^(-t/τ), seconds.
	TimeConstant float64 `yaml:"time_constant"`
	// ScoreCap is the score at which the score term saturates.
	ScoreCap float64 `yaml:"score_cap"`
	// TimeWeight and ScoreWeight blend the two terms.
	TimeWeight  float64 `yaml:"time_weight"`
	ScoreWeight float64 `yaml:"score_weight"`
	// Smoothing is the exponential smoothing factor applied per call.
	Smoothing float64 `yaml:"smoothing"`
	// SpeedRange and SpawnRange bound the derived multipliers.
	SpeedRange Range `yaml:"speed_range"`
	SpawnRange Range `yaml:"spawn_range"`
}

// DefaultParams returns the tuning used by the stock runner.
func DefaultParams() Params {
	return Params{
		TimeConstant: 90,
		ScoreCap:     1000,
		TimeWeight:   0.6,
		ScoreWeight:  0.4,
		Smoothing:    0.1,
		SpeedRange:   Range{Min: 1.0, Max: 2.5},
		SpawnRange:   Range{Min: 1.0, Max: 3.0},
	}
}

// Curve holds the smoothed difficulty state. The zero value is unusable;
// construct with NewCurve.
type Curve struct {
	params   Params
	value    float64
	override *float64
}

// NewCurve creates a curve starting at zero difficulty.
func NewCurve(p Params) *Curve {
	if p.Smoothing <= 0 || p.Smoothing > 1 {
		p.Smoothing = 0.1
	}
	return &Curve{params: p}
}

// Compute advances the smoothed scalar from elapsed play time (seconds) and
// score, returning the new value in [0,1]. Negative inputs contribute
// nothing; extreme inputs saturate at 1. When an override is set the
// computation is bypassed and the pinned value returned.
func (c *Curve) Compute(elapsedSeconds, score float64) float64 {
	if c.override != nil {
		c.value = *c.override
		return c.value
	}

	target := c.target(elapsedSeconds, score)

	// Smoothstep ease removes perceptible ramp corners.
	eased := target * target * (3 - 2*target)

	c.value += c.params.Smoothing * (eased - c.value)
	c.value = clamp01(c.value)
	return c.value
}

// target blends the saturating time term with the clamped score term.
func (c *Curve) target(elapsedSeconds, score float64) float64 {
	timeTerm := 0.0
	if elapsedSeconds > 0 && c.params.TimeConstant > 0 {
		timeTerm = 1 - math.Exp(-elapsedSeconds/c.params.TimeConstant)
	}

	scoreTerm := 0.0
	if score > 0 && c.params.ScoreCap > 0 {
		scoreTerm = clamp01(score / c.params.ScoreCap)
	}

	wSum := c.params.TimeWeight + c.params.ScoreWeight
	if wSum <= 0 {
		return 0
	}
	return clamp01((c.params.TimeWeight*timeTerm + c.params.ScoreWeight*scoreTerm) / wSum)
}

// Value returns the current scalar without advancing it.
func (c *Curve) Value() float64 {
	if c.override != nil {
		return *c.override
	}
	return c.value
}

// SetOverride pins the scalar to v (clamped to [0,1]) for deterministic
// testing and debugging.
func (c *Curve) SetOverride(v float64) {
	pinned := clamp01(v)
	c.override = &pinned
}

// ClearOverride resumes normal computation from the pinned value.
func (c *Curve) ClearOverride() {
	if c.override != nil {
		c.value = *c.override
		c.override = nil
	}
}

// Reset returns the curve to zero difficulty, keeping any override.
func (c *Curve) Reset() {
	c.value = 0
}

// SpeedMultiplier derives the game-speed multiplier from the current scalar.
func (c *Curve) SpeedMultiplier() float64 {
	return c.params.SpeedRange.Lerp(c.Value())
}

// SpawnMultiplier derives the spawn-rate multiplier from the current scalar.
func (c *Curve) SpawnMultiplier() float64 {
	return c.params.SpawnRange.Lerp(c.Value())
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
