// Package caps abstracts host capability queries so that subsystems which
// adapt to the machine (particle LOD, render effects) can be tested with
// deterministic fakes.
package caps

import (
	"os"
	"runtime"
)

// Query reports host capabilities relevant to effect scaling.
type Query interface {
	// HardwareConcurrency returns the number of logical CPUs available.
	HardwareConcurrency() int

	// ReducedMotion reports whether the user asked for reduced visual motion.
	ReducedMotion() bool
}

// Host queries the actual machine.
type Host struct{}

// HardwareConcurrency returns runtime.NumCPU().
func (Host) HardwareConcurrency() int {
	return runtime.NumCPU()
}

// ReducedMotion honors the RUNNER_REDUCED_MOTION environment variable.
func (Host) ReducedMotion() bool {
	v := os.Getenv("RUNNER_REDUCED_MOTION")
	return v == "1" || v == "true"
}

// Static is a fixed-answer Query for tests.
type Static struct {
	CPUs    int
	Reduced bool
}

func (s Static) HardwareConcurrency() int { return s.CPUs }

func (s Static) ReducedMotion() bool { return s.Reduced }
