package command

import (
	"context"
	"flag"
	"fmt"
	"io"

	appErr "slither/pkg/errors"
	"slither/pkg/utils/palette"
)

func runAddTest(ctx context.Context, app *App, args []string) error {
	fs := newFlagSet("addtest", app.Stderr)
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return appErr.BadRequest("Missing test set name.")
	}
	name := positional[0]
	if _, err := app.Configs.Testset(name); err != nil {
		return err
	}

	index := app.Tests.NextIndex(name)
	if err := app.Tests.Create(name, index); err != nil {
		return err
	}
	if err := editTest(ctx, app, name, index); err != nil {
		return appErr.Wrapf(err, appErr.GetCode(err), "Failed to add test to testset: %v", err)
	}
	fmt.Fprintln(app.Stdout, palette.Green.Sprintf("Successfully added test %d to testset %s.", index, name)+" 🐍")
	return nil
}

func runEditTest(ctx context.Context, app *App, args []string) error {
	name, index, err := testArgs(app, "edittest", args, nil)
	if err != nil {
		return err
	}
	return editTest(ctx, app, name, index)
}

func runCatTest(ctx context.Context, app *App, args []string) error {
	var onlyIn, onlyOut bool
	name, index, err := testArgs(app, "cattest", args, func(fs *flag.FlagSet) {
		fs.BoolVar(&onlyIn, "in", false, "only show input")
		fs.BoolVar(&onlyOut, "out", false, "only show expected output")
	})
	if err != nil {
		return err
	}
	if onlyIn && onlyOut {
		return appErr.BadRequest("Only one of -in and -out may be specified.")
	}

	switch {
	case onlyIn:
		input, err := app.Tests.ReadInput(name, index)
		if err != nil {
			return err
		}
		_, err = io.WriteString(app.Stdout, input)
		return err
	case onlyOut:
		output, err := app.Tests.ReadOutput(name, index)
		if err != nil {
			return err
		}
		_, err = io.WriteString(app.Stdout, output)
		return err
	}

	tc, err := app.Tests.Read(name, index)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(app.Stdout, "%s\n%s\n\n%s\n",
		tc.Input,
		palette.Bold.Sprint(palette.Cyan.Sprint("Input ⤴  ---------- Output ⤵ ")),
		tc.Output,
	)
	return err
}

// testArgs parses "<set> <number>" and checks that the test exists.
func testArgs(app *App, name string, args []string, define func(fs *flag.FlagSet)) (string, int, error) {
	fs := newFlagSet(name, app.Stderr)
	if define != nil {
		define(fs)
	}
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return "", 0, err
	}
	if len(positional) != 2 {
		return "", 0, appErr.BadRequest("Missing test set name or test number.")
	}
	set := positional[0]
	index, err := parseIndex(positional[1])
	if err != nil {
		return "", 0, err
	}
	if _, err := app.Configs.Testset(set); err != nil {
		return "", 0, err
	}
	if !app.Tests.Exists(set, index) {
		return "", 0, appErr.Newf(appErr.TestCaseNotFound, "No test with that number was found for testset %s.", set)
	}
	return set, index, nil
}

func editTest(ctx context.Context, app *App, name string, index int) error {
	in, out := app.Tests.Paths(name, index)
	edit := app.editor()
	if err := edit(ctx, in); err != nil {
		return err
	}
	return edit(ctx, out)
}
