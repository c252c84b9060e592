package service

import (
	"strings"

	"slither/internal/judge/checker"
	"slither/internal/judge/model"
	"slither/internal/judge/sandbox/result"
)

// DefaultMemoryPatterns are stderr fragments printed by common runtimes when an allocation fails.
var DefaultMemoryPatterns = []string{
	"out of memory",
	"outofmemory",
	"memoryerror",
	"bad_alloc",
	"cannot allocate memory",
}

type memoryClassifier struct {
	patterns []string
}

func newMemoryClassifier(patterns []string) memoryClassifier {
	lowered := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			lowered = append(lowered, p)
		}
	}
	return memoryClassifier{patterns: lowered}
}

// exceeded reports whether a failed run ran out of memory, either by its own
// account on stderr or by a peak RSS over the configured limit.
func (m memoryClassifier) exceeded(res result.RunResult, limitMB float64) bool {
	if limitMB > 0 && float64(res.MemoryKB) > limitMB*1024 {
		return true
	}
	stderr := strings.ToLower(res.Stderr)
	for _, p := range m.patterns {
		if strings.Contains(stderr, p) {
			return true
		}
	}
	return false
}

func (s *Service) classify(ts model.Testset, policy checker.Policy, tc model.TestCase, res result.RunResult) (model.State, model.Outcome) {
	usage := model.Usage{Time: res.Elapsed, MemoryKB: res.MemoryKB}

	switch res.Status {
	case result.StatusTimedOut:
		if limit := ts.TimeLimit(); limit > 0 {
			usage.Time = limit
		}
		return model.StateTimeLimitExceeded, model.Stopped{Usage: usage, Expected: tc.Output, Actual: res.Stdout}
	case result.StatusFailed:
		if s.memoryLimits.exceeded(res, ts.Limits.Memory) {
			return model.StateMemoryLimitExceeded, model.Stopped{Usage: usage, Expected: tc.Output, Actual: res.Stdout}
		}
		return model.StateRuntimeError, model.Crashed{Usage: usage, Expected: tc.Output, Actual: res.Stdout, Stderr: res.Stderr}
	}

	verdict := policy.Check(tc.Output, res.Stdout)
	state := model.StateWrongAnswer
	if verdict.OK {
		state = model.StateOK
	}
	return state, model.Complete{
		Usage:           usage,
		Expected:        tc.Output,
		Actual:          res.Stdout,
		DisplayExpected: verdict.DisplayExpected,
		DisplayActual:   verdict.DisplayActual,
	}
}
