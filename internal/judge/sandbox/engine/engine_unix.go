//go:build unix

package engine

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"slither/internal/judge/sandbox/result"
	"slither/internal/judge/sandbox/spec"
	appErr "slither/pkg/errors"
	"slither/pkg/utils/logger"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

type localEngine struct {
	cfg Config
}

// NewEngine creates a process engine that runs children in their own process group.
func NewEngine(cfg Config) (Engine, error) {
	cfg.applyDefaults()
	return &localEngine{cfg: cfg}, nil
}

func (e *localEngine) Run(ctx context.Context, runSpec spec.RunSpec) (result.RunResult, error) {
	argv, err := parseCommand(e.cfg.Shell, runSpec.Cmd)
	if err != nil {
		return result.RunResult{}, appErr.Wrapf(err, appErr.SpawnFailed, "invalid %s command %q", runSpec.Task, runSpec.Cmd)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = runSpec.WorkDir
	if len(runSpec.Env) > 0 {
		cmd.Env = append(os.Environ(), runSpec.Env...)
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Stdin = strings.NewReader(runSpec.Stdin)
	cmd.WaitDelay = e.cfg.WaitDelay

	stdout := newLimitedBuffer(e.cfg.StdoutStderrMaxBytes)
	stderr := newLimitedBuffer(e.cfg.StdoutStderrMaxBytes)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return result.RunResult{}, appErr.Wrapf(err, appErr.SpawnFailed, "start %s command %q: %v", runSpec.Task, runSpec.Cmd, err)
	}

	var timedOut atomic.Bool
	done := make(chan struct{})
	go func() {
		var wallTimer <-chan time.Time
		if limit := runSpec.Limits.WallTime(); limit > 0 {
			timer := time.NewTimer(limit)
			defer timer.Stop()
			wallTimer = timer.C
		}
		select {
		case <-ctx.Done():
			killProcessGroup(cmd.Process.Pid)
		case <-wallTimer:
			timedOut.Store(true)
			killProcessGroup(cmd.Process.Pid)
		case <-done:
		}
	}()

	waitErr := cmd.Wait()
	close(done)
	elapsed := time.Since(start)

	runResult := result.RunResult{
		ExitCode:  exitCodeFromErr(waitErr, cmd.ProcessState),
		Elapsed:   elapsed,
		CPUTimeMs: cpuTimeMs(cmd.ProcessState),
		MemoryKB:  memoryPeakKB(cmd.ProcessState),
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		Truncated: stdout.Truncated() || stderr.Truncated(),
	}

	if waitErr != nil && errors.Is(waitErr, exec.ErrWaitDelay) {
		logger.Warn(ctx, "output pipes still open after exit", zap.String("task", string(runSpec.Task)))
	}

	switch {
	case timedOut.Load():
		runResult.Status = result.StatusTimedOut
		runResult.Elapsed = runSpec.Limits.WallTime()
	case ctx.Err() != nil:
		return runResult, ctx.Err()
	case cmd.ProcessState != nil && cmd.ProcessState.Success():
		runResult.Status = result.StatusExited
	default:
		runResult.Status = result.StatusFailed
	}
	return runResult, nil
}

func exitCodeFromErr(err error, state *os.ProcessState) int {
	if state != nil {
		return state.ExitCode()
	}
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func killProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	_ = unix.Kill(-pid, unix.SIGKILL)
}

func cpuTimeMs(state *os.ProcessState) int64 {
	if state == nil {
		return 0
	}
	return (state.UserTime() + state.SystemTime()).Milliseconds()
}

// memoryPeakKB reads the peak resident set size from the wait4 rusage, which also
// covers descendants the child waited for.
func memoryPeakKB(state *os.ProcessState) int64 {
	if state == nil {
		return 0
	}
	if usage, ok := state.SysUsage().(*syscall.Rusage); ok {
		return maxRSSKB(usage)
	}
	return 0
}
