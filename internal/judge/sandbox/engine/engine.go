package engine

import (
	"context"

	"slither/internal/judge/sandbox/result"
	"slither/internal/judge/sandbox/spec"
)

// Engine executes a RunSpec as a local child process.
//
// Run returns an error only when the process could not be started (or ctx was
// canceled); timeouts and nonzero exits are reported through the RunResult status.
type Engine interface {
	Run(ctx context.Context, runSpec spec.RunSpec) (result.RunResult, error)
}
