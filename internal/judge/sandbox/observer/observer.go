// Package observer defines logging and metrics hooks for sandbox execution.
package observer

import (
	"context"

	"slither/pkg/utils/logger"

	"go.uber.org/zap"
)

// MetricsRecorder records sandbox metrics.
type MetricsRecorder interface {
	ObserveCompile(ctx context.Context, testset string, ok bool, timeMs int64, memoryKB int64)
	ObserveRun(ctx context.Context, testset string, verdict string, timeMs int64, memoryKB int64, outputBytes int64)
}

// LogRecorder writes every observation to the debug log.
type LogRecorder struct{}

func (LogRecorder) ObserveCompile(ctx context.Context, testset string, ok bool, timeMs int64, memoryKB int64) {
	logger.Debug(ctx, "compile finished",
		zap.String("testset", testset),
		zap.Bool("ok", ok),
		zap.Int64("time_ms", timeMs),
		zap.Int64("memory_kb", memoryKB),
	)
}

func (LogRecorder) ObserveRun(ctx context.Context, testset string, verdict string, timeMs int64, memoryKB int64, outputBytes int64) {
	logger.Debug(ctx, "test judged",
		zap.String("testset", testset),
		zap.String("verdict", verdict),
		zap.Int64("time_ms", timeMs),
		zap.Int64("memory_kb", memoryKB),
		zap.Int64("output_bytes", outputBytes),
	)
}

// Nop discards observations.
type Nop struct{}

func (Nop) ObserveCompile(context.Context, string, bool, int64, int64) {}
func (Nop) ObserveRun(context.Context, string, string, int64, int64, int64) {}
