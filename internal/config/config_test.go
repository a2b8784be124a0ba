package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesCode(t *testing.T) {
	var fromYAML RunnerConfig
	if err := yaml.Unmarshal(defaultRunnerYAML, &fromYAML); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	want := Default()
	if fromYAML.Physics != want.Physics {
		t.Errorf("physics mismatch: yaml %+v, code %+v", fromYAML.Physics, want.Physics)
	}
	if fromYAML.Spawning != want.Spawning {
		t.Errorf("spawning mismatch: yaml %+v, code %+v", fromYAML.Spawning, want.Spawning)
	}
	if fromYAML.Difficulty != want.Difficulty {
		t.Errorf("difficulty mismatch: yaml %+v, code %+v", fromYAML.Difficulty, want.Difficulty)
	}
	if fromYAML.Audio != want.Audio {
		t.Errorf("audio mismatch: yaml %+v, code %+v", fromYAML.Audio, want.Audio)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	body := []byte("spawning:\n  base_speed: 1.7\naudio:\n  enabled: false\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Spawning.BaseSpeed != 1.7 {
		t.Errorf("base_speed = %f, expected 1.7", cfg.Spawning.BaseSpeed)
	}
	if cfg.Audio.Enabled {
		t.Error("audio should be disabled by the custom file")
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("a missing explicit config path should be an error")
	}
}

func TestLoadMalformedCustomPathFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("spawning: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("a malformed explicit config should be an error")
	}
}

func TestEngineMapping(t *testing.T) {
	cfg := Default()
	cfg.Spawning.BaseSpeed = 1.3
	cfg.Render.ShowFPS = true

	ec := cfg.Engine(100, 30)

	if ec.Width != 100 || ec.Height != 30 {
		t.Errorf("viewport = %dx%d", ec.Width, ec.Height)
	}
	if ec.BaseSpeed != 1.3 {
		t.Errorf("base speed = %f, expected 1.3", ec.BaseSpeed)
	}
	if ec.JumpPower != cfg.Physics.JumpImpulse {
		t.Error("jump impulse not mapped")
	}
	if !ec.Render.ShowFPS {
		t.Error("render flags not mapped")
	}
}

func TestPresets(t *testing.T) {
	base := Default()

	easy := Default()
	easy.Apply(PresetEasy)
	if easy.Spawning.ObstacleChance >= base.Spawning.ObstacleChance {
		t.Error("easy should spawn fewer obstacles")
	}

	hard := Default()
	hard.Apply(PresetHard)
	if hard.Spawning.ObstacleChance <= base.Spawning.ObstacleChance {
		t.Error("hard should spawn more obstacles")
	}
	if hard.Spawning.MaxSpeed <= base.Spawning.MaxSpeed {
		t.Error("hard should raise the speed cap")
	}

	fixed := Default()
	fixed.Apply(PresetFixed)
	if fixed.Spawning.SpeedIncrement != 0 {
		t.Error("fixed should disable the speed escalation")
	}
	if fixed.Difficulty.SpawnRange.Min != fixed.Difficulty.SpawnRange.Max {
		t.Error("fixed should collapse the spawn range")
	}

	normal := Default()
	normal.Apply(PresetNormal)
	if normal != base {
		t.Error("normal must leave the profile untouched")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want Preset
	}{
		{"easy", PresetEasy},
		{"hard", PresetHard},
		{"fixed", PresetFixed},
		{"normal", PresetNormal},
		{"", PresetNormal},
		{"nightmare", PresetNormal},
	}
	for _, tt := range tests {
		if got := ParsePreset(tt.in); got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
