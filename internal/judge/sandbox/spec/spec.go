// Package spec defines the execution specification and resource limits.
package spec

import (
	"time"

	"slither/internal/judge/sandbox/profile"
)

// ResourceLimit describes the limits applied to one run. Memory is only reported
// against, never enforced.
type ResourceLimit struct {
	WallTimeMs int64
	MemoryMB   float64
}

// WallTime returns the wall-clock limit; zero means no timeout.
func (l ResourceLimit) WallTime() time.Duration {
	if l.WallTimeMs <= 0 {
		return 0
	}
	return time.Duration(l.WallTimeMs) * time.Millisecond
}

// RunSpec is the unified execution specification for one task.
type RunSpec struct {
	Task profile.TaskType
	// Cmd is a command line; it runs through the shell when it uses shell syntax.
	Cmd     string
	Stdin   string
	WorkDir string
	Env     []string
	Limits  ResourceLimit
}
