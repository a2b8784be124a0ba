package config

// Preset names a packaged difficulty profile selectable from the CLI.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	// PresetFixed disables all pacing escalation: constant speed and spawn
	// rate for the whole run. Useful for practice and benchmarking.
	PresetFixed Preset = "fixed"
)

// ParsePreset maps a CLI string onto a preset; unknown names mean normal.
func ParsePreset(s string) Preset {
	switch Preset(s) {
	case PresetEasy, PresetHard, PresetFixed:
		return Preset(s)
	default:
		return PresetNormal
	}
}

// Apply adjusts the profile for a preset. Normal leaves the loaded profile
// untouched.
func (c *RunnerConfig) Apply(p Preset) {
	switch p {
	case PresetEasy:
		c.Spawning.ObstacleChance *= 0.7
		c.Spawning.MaxSpeed = 2.0
		c.Difficulty.TimeConstant = 150
		c.Difficulty.SpawnRange.Max = 2.0

	case PresetHard:
		c.Spawning.ObstacleChance *= 1.4
		c.Spawning.SpeedIncrement *= 1.5
		c.Spawning.MaxSpeed = 3.0
		c.Difficulty.TimeConstant = 60
		c.Difficulty.SpawnRange.Max = 3.5

	case PresetFixed:
		c.Spawning.SpeedIncrement = 0
		c.Difficulty.SpeedRange.Max = c.Difficulty.SpeedRange.Min
		c.Difficulty.SpawnRange.Max = c.Difficulty.SpawnRange.Min
	}
}
