package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultYAML returns the embedded default profile, e.g. for the
// config-dump command.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
