//go:build !unix

package engine

import (
	"context"

	"slither/internal/judge/sandbox/result"
	"slither/internal/judge/sandbox/spec"
	appErr "slither/pkg/errors"
)

type stubEngine struct{}

func NewEngine(cfg Config) (Engine, error) {
	return &stubEngine{}, nil
}

func (s *stubEngine) Run(ctx context.Context, runSpec spec.RunSpec) (result.RunResult, error) {
	return result.RunResult{}, appErr.New(appErr.SpawnFailed).WithMessage("process engine is only supported on unix")
}
