// Package sandbox provides status reporting hooks for judge progress.
package sandbox

import (
	"context"

	"slither/internal/judge/model"
)

// StatusUpdate carries the results collection after one transition.
type StatusUpdate struct {
	Testset string
	Results *model.Results
	// Changed is the position in Results of the result that just transitioned, or -1.
	Changed   int
	DoneTests int
	Final     bool
}

// StatusReporter receives every update of a run in order.
type StatusReporter interface {
	ReportStatus(ctx context.Context, update StatusUpdate) error
}

// NopReporter ignores updates.
type NopReporter struct{}

func (NopReporter) ReportStatus(context.Context, StatusUpdate) error { return nil }
