package command

import (
	"context"
	"errors"
	"fmt"

	"slither/internal/inspector"
	"slither/internal/judge/sandbox/observer"
	"slither/internal/judge/sandbox/runner"
	"slither/internal/judge/service"
	appErr "slither/pkg/errors"
	"slither/pkg/utils/logger"
	"slither/pkg/utils/palette"

	"go.uber.org/zap"
)

// ErrTestsFailed reports that the run finished but not every test was OK.
var ErrTestsFailed = errors.New("not all tests passed")

func runTest(ctx context.Context, app *App, args []string) error {
	fs := newFlagSet("test", app.Stderr)
	testList := fs.String("tests", "", "which tests to run, e.g. 1,3,5-8")
	noBrowse := fs.Bool("no-browse", false, "skip the interactive result browser")
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return appErr.BadRequest("Missing test set name.")
	}
	name := positional[0]

	ts, err := app.Configs.Testset(name)
	if err != nil {
		return err
	}

	var indices []int
	if *testList != "" {
		if indices, err = ParseTestList(*testList); err != nil {
			return err
		}
	} else {
		if indices, err = app.Tests.Indices(name); err != nil {
			return err
		}
	}
	if len(indices) == 0 {
		return appErr.Newf(appErr.TestCaseNotFound, "No tests found for testset %s. Add one with slither addtest %s.", name, name)
	}

	eng, err := app.engine()
	if err != nil {
		return err
	}
	svc, err := service.NewService(service.Config{
		Runner:         runner.NewRunner(eng, observer.LogRecorder{}),
		Tests:          app.Tests,
		Reporter:       inspector.NewLiveRenderer(app.Stdout, app.Interactive),
		Recorder:       observer.LogRecorder{},
		WorkDir:        app.Root,
		MemoryPatterns: app.Settings.Judge.MemoryPatterns,
	})
	if err != nil {
		return appErr.Internal(err)
	}

	results, runErr := svc.Run(ctx, service.Request{Name: name, Testset: ts, Indices: indices})
	if results == nil {
		return runErr
	}
	for _, item := range results.Items {
		if item.Err != nil && !errors.Is(item.Err, runErr) {
			fmt.Fprintln(app.Stderr, palette.Red.Sprint(item.Err.Error()))
		}
	}
	if runErr != nil {
		return runErr
	}
	fmt.Fprintln(app.Stdout, inspector.Summary(results))

	if app.Interactive && !*noBrowse {
		browser := inspector.NewBrowser(app.terminal(), results, app.Settings.Inspector.MaxLines)
		if err := browser.Run(ctx); err != nil {
			logger.Warn(ctx, "result browser failed", zap.Error(err))
			return err
		}
	}
	if !results.AllPassed() {
		return ErrTestsFailed
	}
	return nil
}
