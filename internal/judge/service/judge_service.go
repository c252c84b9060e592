package service

import (
	"context"
	"errors"
	"fmt"

	"slither/internal/judge/checker"
	"slither/internal/judge/model"
	"slither/internal/judge/sandbox"
	"slither/internal/judge/sandbox/observer"
	"slither/internal/judge/sandbox/runner"
	"slither/internal/judge/sandbox/spec"
	appErr "slither/pkg/errors"
	"slither/pkg/utils/contextkey"
	"slither/pkg/utils/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TestcaseSource loads stored test files.
type TestcaseSource interface {
	Read(testset string, index int) (model.TestCase, error)
}

// Service runs a testset against the candidate program.
type Service struct {
	runner       *runner.Runner
	tests        TestcaseSource
	reporter     sandbox.StatusReporter
	recorder     observer.MetricsRecorder
	workDir      string
	memoryLimits memoryClassifier
}

// Config holds service dependencies and settings.
type Config struct {
	Runner   *runner.Runner
	Tests    TestcaseSource
	Reporter sandbox.StatusReporter
	Recorder observer.MetricsRecorder
	// WorkDir is where compile, run and cleanup commands execute.
	WorkDir string
	// MemoryPatterns are case-insensitive stderr fragments that indicate an out-of-memory crash.
	// Nil selects the built-in list.
	MemoryPatterns []string
}

// Request names one run: a testset and the indices to judge, in order.
type Request struct {
	Name    string
	Testset model.Testset
	Indices []int
}

// NewService creates a new judge service.
func NewService(cfg Config) (*Service, error) {
	if cfg.Runner == nil {
		return nil, fmt.Errorf("runner is required")
	}
	if cfg.Tests == nil {
		return nil, fmt.Errorf("testcase source is required")
	}
	if cfg.Reporter == nil {
		cfg.Reporter = sandbox.NopReporter{}
	}
	if cfg.Recorder == nil {
		cfg.Recorder = observer.Nop{}
	}
	patterns := cfg.MemoryPatterns
	if patterns == nil {
		patterns = DefaultMemoryPatterns
	}
	return &Service{
		runner:       cfg.Runner,
		tests:        cfg.Tests,
		reporter:     cfg.Reporter,
		recorder:     cfg.Recorder,
		workDir:      cfg.WorkDir,
		memoryLimits: newMemoryClassifier(patterns),
	}, nil
}

// Run compiles the program, judges every requested index sequentially and runs cleanup.
//
// A compile failure returns no results. A spawn failure of the run command or a
// cancelled ctx stops the batch and returns the partial results with the error;
// cleanup and the final report still happen. Verdicts are never errors.
func (s *Service) Run(ctx context.Context, req Request) (*model.Results, error) {
	if req.Name == "" {
		return nil, appErr.ValidationError("testset", "required")
	}
	ctx = contextkey.WithRun(ctx, uuid.NewString(), req.Name)
	ts := req.Testset

	policy, err := checker.Resolve(ts.Checker, ts.DebugDelimiter())
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "compiling", zap.Int("tests", len(req.Indices)))
	if _, err := s.runner.Compile(ctx, runner.CompileRequest{
		Testset: req.Name,
		Cmd:     ts.Scripts.Compile,
		WorkDir: s.workDir,
	}); err != nil {
		logger.Warn(ctx, "compile failed", zap.Error(err))
		return nil, err
	}

	results := model.NewResults(req.Indices)
	s.report(ctx, req.Name, results, -1, false)

	runErr := s.judgeAll(ctx, req, policy, results)

	// cleanup still runs after an interrupt
	if err := s.runner.Cleanup(context.WithoutCancel(ctx), runner.CleanupRequest{
		Testset: req.Name,
		Cmd:     ts.Scripts.Cleanup,
		WorkDir: s.workDir,
	}); err != nil {
		logger.Warn(ctx, "cleanup failed", zap.Error(err))
	}

	s.report(ctx, req.Name, results, -1, true)
	logger.Info(ctx, "run finished",
		zap.Int("passed", results.Passed()),
		zap.Int("total", results.Len()),
		zap.Bool("aborted", runErr != nil),
	)
	return results, runErr
}

func (s *Service) judgeAll(ctx context.Context, req Request, policy checker.Policy, results *model.Results) error {
	for pos, item := range results.Items {
		if err := ctx.Err(); err != nil {
			return err
		}
		testCtx := contextkey.WithTest(ctx, item.Index)
		if err := item.Start(); err != nil {
			return err
		}
		s.report(testCtx, req.Name, results, pos, false)

		tc, err := s.tests.Read(req.Name, item.Index)
		if err != nil {
			logger.Warn(testCtx, "test skipped", zap.Error(err))
			item.Skip(err)
			s.report(testCtx, req.Name, results, pos, false)
			continue
		}

		res, err := s.runner.Run(testCtx, runner.RunRequest{
			Testset:   req.Name,
			TestIndex: item.Index,
			Cmd:       req.Testset.Scripts.Run,
			Input:     tc.Input,
			WorkDir:   s.workDir,
			Limits: spec.ResourceLimit{
				WallTimeMs: req.Testset.Limits.Time,
				MemoryMB:   req.Testset.Limits.Memory,
			},
		})
		if err != nil {
			item.Skip(err)
			s.report(testCtx, req.Name, results, pos, false)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			logger.Error(testCtx, "run command failed to start", zap.Error(err))
			if appErr.Is(err, appErr.SpawnFailed) {
				return err
			}
			return appErr.Wrap(err, appErr.SpawnFailed)
		}

		state, outcome := s.classify(req.Testset, policy, tc, res)
		if err := item.Finish(state, outcome); err != nil {
			return err
		}
		usage := outcome.Resources()
		s.recorder.ObserveRun(testCtx, req.Name, state.String(), usage.Time.Milliseconds(), usage.MemoryKB, int64(len(res.Stdout)))
		logger.Info(testCtx, "test judged",
			zap.String("verdict", state.String()),
			zap.Duration("time", usage.Time),
			zap.Int64("memory_kb", usage.MemoryKB),
		)
		s.report(testCtx, req.Name, results, pos, false)
	}
	return nil
}

func (s *Service) report(ctx context.Context, name string, results *model.Results, changed int, final bool) {
	done := 0
	for _, item := range results.Items {
		if item.Resolved() {
			done++
		}
	}
	update := sandbox.StatusUpdate{
		Testset:   name,
		Results:   results,
		Changed:   changed,
		DoneTests: done,
		Final:     final,
	}
	if err := s.reporter.ReportStatus(ctx, update); err != nil {
		logger.Warn(ctx, "report status failed", zap.Error(err))
	}
}
