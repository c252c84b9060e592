// Package runner turns testset scripts into sandbox tasks.
package runner

import (
	"context"
	"strings"

	"slither/internal/judge/sandbox/engine"
	"slither/internal/judge/sandbox/observer"
	"slither/internal/judge/sandbox/profile"
	"slither/internal/judge/sandbox/result"
	"slither/internal/judge/sandbox/spec"
	appErr "slither/pkg/errors"
	"slither/pkg/utils/logger"

	"go.uber.org/zap"
)

// CompileRequest describes one compilation task.
type CompileRequest struct {
	Testset string
	Cmd     string
	WorkDir string
}

// RunRequest describes one execution task.
type RunRequest struct {
	Testset   string
	TestIndex int
	Cmd       string
	Input     string
	WorkDir   string
	Limits    spec.ResourceLimit
}

// CleanupRequest describes the post-run cleanup task.
type CleanupRequest struct {
	Testset string
	Cmd     string
	WorkDir string
}

// Runner orchestrates compile, run and cleanup workflows.
type Runner struct {
	engine   engine.Engine
	recorder observer.MetricsRecorder
}

// NewRunner creates a runner on top of an engine.
func NewRunner(eng engine.Engine, recorder observer.MetricsRecorder) *Runner {
	if recorder == nil {
		recorder = observer.Nop{}
	}
	return &Runner{engine: eng, recorder: recorder}
}

// Compile runs the build command once with no time limit. An empty command is a no-op.
// A nonzero exit returns CompilationError carrying the captured stderr.
func (r *Runner) Compile(ctx context.Context, req CompileRequest) (result.RunResult, error) {
	if strings.TrimSpace(req.Cmd) == "" {
		return result.RunResult{Status: result.StatusExited}, nil
	}
	res, err := r.engine.Run(ctx, spec.RunSpec{
		Task:    profile.TaskTypeCompile,
		Cmd:     req.Cmd,
		WorkDir: req.WorkDir,
	})
	if err != nil {
		return res, err
	}
	r.recorder.ObserveCompile(ctx, req.Testset, res.Success(), res.Elapsed.Milliseconds(), res.MemoryKB)
	if !res.Success() {
		return res, appErr.New(appErr.CompilationError).
			WithMessage(compileMessage(res)).
			WithDetail("exit_code", res.ExitCode).
			WithDetail("stderr", res.Stderr)
	}
	return res, nil
}

// Run executes the candidate program against one input.
func (r *Runner) Run(ctx context.Context, req RunRequest) (result.RunResult, error) {
	return r.engine.Run(ctx, spec.RunSpec{
		Task:    profile.TaskTypeRun,
		Cmd:     req.Cmd,
		Stdin:   req.Input,
		WorkDir: req.WorkDir,
		Limits:  req.Limits,
	})
}

// Cleanup runs the cleanup command. Failures are returned as CleanupFailed for the
// caller to log; they never change verdicts.
func (r *Runner) Cleanup(ctx context.Context, req CleanupRequest) error {
	if strings.TrimSpace(req.Cmd) == "" {
		return nil
	}
	res, err := r.engine.Run(ctx, spec.RunSpec{
		Task:    profile.TaskTypeCleanup,
		Cmd:     req.Cmd,
		WorkDir: req.WorkDir,
	})
	if err != nil {
		return appErr.Wrapf(err, appErr.CleanupFailed, "cleanup of %s failed to start", req.Testset)
	}
	if !res.Success() {
		logger.Debug(ctx, "cleanup stderr", zap.String("stderr", res.Stderr))
		return appErr.Newf(appErr.CleanupFailed, "cleanup of %s exited with status %d", req.Testset, res.ExitCode)
	}
	return nil
}

func compileMessage(res result.RunResult) string {
	msg := strings.TrimRight(res.Stderr, "\n")
	if msg == "" {
		msg = strings.TrimRight(res.Stdout, "\n")
	}
	if msg == "" {
		return appErr.CompilationError.Message()
	}
	return appErr.CompilationError.Message() + ": " + msg
}
