// Package result defines sandbox execution results.
package result

import "time"

// RunStatus classifies how a process ended.
type RunStatus string

const (
	// StatusExited means the process exited with status 0.
	StatusExited RunStatus = "Exited"
	// StatusFailed means the process exited with a nonzero status or was killed by a signal.
	StatusFailed RunStatus = "Failed"
	// StatusTimedOut means the process was killed after exceeding its wall time limit.
	StatusTimedOut RunStatus = "TimedOut"
)

// RunResult captures raw sandbox execution data. MemoryKB is sampled for every status.
type RunResult struct {
	Status    RunStatus
	ExitCode  int
	Elapsed   time.Duration
	CPUTimeMs int64
	MemoryKB  int64
	Stdout    string
	Stderr    string
	Truncated bool
}

// Success reports whether the process exited with status 0.
func (r RunResult) Success() bool {
	return r.Status == StatusExited
}
