package contextkey

import "context"

// key is a private type to avoid context key collisions across packages.
type key string

const (
	RunID   key = "run_id"
	Testset key = "testset"
	TestID  key = "test"
)

// WithRun attaches the run id and testset name used to correlate log lines of one run.
func WithRun(ctx context.Context, runID, testset string) context.Context {
	ctx = context.WithValue(ctx, RunID, runID)
	return context.WithValue(ctx, Testset, testset)
}

// WithTest attaches the index of the test currently being judged.
func WithTest(ctx context.Context, index int) context.Context {
	return context.WithValue(ctx, TestID, index)
}
