// Package config provides YAML-based configuration loading for the runner,
// with an embedded default profile and named difficulty presets.
package config

import (
	"github.com/pixelhop/runner-arcade/internal/difficulty"
	"github.com/pixelhop/runner-arcade/internal/engine"
	"github.com/pixelhop/runner-arcade/internal/physics"
	"github.com/pixelhop/runner-arcade/internal/render"
)

// RunnerConfig contains the full tuning profile for a run.
type RunnerConfig struct {
	Physics    PhysicsConfig     `yaml:"physics"`
	Player     PlayerConfig      `yaml:"player"`
	Spawning   SpawnConfig       `yaml:"spawning"`
	Difficulty difficulty.Params `yaml:"difficulty"`
	Particles  ParticlesConfig   `yaml:"particles"`
	Audio      AudioConfig       `yaml:"audio"`
	Render     RenderConfig      `yaml:"render"`
}

// PhysicsConfig defines the integration constants.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	Friction        float64 `yaml:"friction"`
	GroundTolerance float64 `yaml:"ground_tolerance"`
	JumpImpulse     float64 `yaml:"jump_impulse"`
}

// PlayerConfig defines the player placement.
type PlayerConfig struct {
	GroundOffset int `yaml:"ground_offset"`
}

// SpawnConfig defines speed escalation and spawn probabilities.
type SpawnConfig struct {
	BaseSpeed         float64 `yaml:"base_speed"`
	SpeedIncrement    float64 `yaml:"speed_increment"`
	MaxSpeed          float64 `yaml:"max_speed"`
	ObstacleChance    float64 `yaml:"obstacle_chance"`
	CollectibleChance float64 `yaml:"collectible_chance"`
	ObstaclePool      int     `yaml:"obstacle_pool"`
	CollectiblePool   int     `yaml:"collectible_pool"`
}

// ParticlesConfig defines the effect budget.
type ParticlesConfig struct {
	Capacity int     `yaml:"capacity"`
	Gravity  float64 `yaml:"gravity"`
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// RenderConfig defines the optional render features.
type RenderConfig struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowHitboxes bool `yaml:"show_hitboxes"`
	DoubleBuffer bool `yaml:"double_buffer"`
}

// Default returns the stock runner profile, matching the embedded YAML.
func Default() RunnerConfig {
	return RunnerConfig{
		Physics: PhysicsConfig{
			Gravity:         0.6,
			Friction:        0.85,
			GroundTolerance: 0.5,
			JumpImpulse:     -2.6,
		},
		Player: PlayerConfig{
			GroundOffset: 3,
		},
		Spawning: SpawnConfig{
			BaseSpeed:         1.0,
			SpeedIncrement:    0.15,
			MaxSpeed:          2.5,
			ObstacleChance:    0.02,
			CollectibleChance: 0.008,
			ObstaclePool:      12,
			CollectiblePool:   8,
		},
		Difficulty: difficulty.DefaultParams(),
		Particles: ParticlesConfig{
			Capacity: 120,
			Gravity:  14,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Render: RenderConfig{
			DoubleBuffer: true,
		},
	}
}

// Engine maps the profile onto an engine configuration for a width×height
// viewport. Seed, headless mode, and callbacks stay at their engine defaults
// for the caller to override.
func (c RunnerConfig) Engine(width, height int) engine.Config {
	ec := engine.DefaultConfig(width, height)

	ec.GroundOffset = c.Player.GroundOffset
	ec.Physics = physics.Config{
		Gravity:         c.Physics.Gravity,
		Friction:        c.Physics.Friction,
		GroundTolerance: c.Physics.GroundTolerance,
	}
	ec.JumpPower = c.Physics.JumpImpulse
	ec.BaseSpeed = c.Spawning.BaseSpeed
	ec.SpeedIncrement = c.Spawning.SpeedIncrement
	ec.MaxSpeed = c.Spawning.MaxSpeed
	ec.SpawnChance = c.Spawning.ObstacleChance
	ec.CollectChance = c.Spawning.CollectibleChance
	ec.ObstaclePool = c.Spawning.ObstaclePool
	ec.CollectiblePool = c.Spawning.CollectiblePool
	ec.Difficulty = c.Difficulty
	ec.ParticleCap = c.Particles.Capacity
	ec.ParticleGravity = c.Particles.Gravity
	ec.AudioEnabled = c.Audio.Enabled
	ec.Volume = c.Audio.Volume
	ec.Render = render.Flags{
		ShowFPS:      c.Render.ShowFPS,
		ShowHitboxes: c.Render.ShowHitboxes,
		DoubleBuffer: c.Render.DoubleBuffer,
	}
	return ec
}
