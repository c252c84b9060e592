package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"slither/internal/cli/command"
	"slither/internal/cli/config"
	"slither/internal/cli/prompt"
	appErr "slither/pkg/errors"
	"slither/pkg/utils/logger"
	"slither/pkg/utils/palette"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("slither", flag.ContinueOnError)
	flags.SetOutput(stderr)
	settingsPath := flags.String("settings", config.DefaultSettingsPath, "Path to settings file")
	logLevel := flags.String("log-level", "", "Override log level (debug, info, warn, error)")
	registry := command.Registry()
	flags.Usage = func() { printUsage(stderr, registry) }
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() == 0 {
		printUsage(stderr, registry)
		return 2
	}

	root, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(stderr, palette.Red.Sprintf("Error: %v", err))
		return 1
	}
	path := *settingsPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	settings, err := config.Load(path)
	if err != nil {
		return report(stderr, err)
	}
	if *logLevel != "" {
		settings.Log.Level = *logLevel
	}
	if err := logger.Init(settings.Log); err != nil {
		fmt.Fprintln(stderr, palette.Red.Sprintf("init logger failed: %v", err))
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	name := flags.Arg(0)
	cmd, ok := registry[name]
	if !ok {
		fmt.Fprintln(stderr, palette.Red.Sprintf("Unknown command %q.", name))
		printUsage(stderr, registry)
		return 2
	}

	app := command.NewApp(root, settings)
	app.Stdout = stdout
	app.Stderr = stderr
	// Children run in their own process group, so a terminal interrupt reaches only
	// slither; cancelling ctx kills the running child and lets cleanup run.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := cmd.Run(ctx, app, flags.Args()[1:]); err != nil {
		logger.Debug(ctx, "command failed", zap.String("command", name), zap.Error(err))
		return report(stderr, err)
	}
	return 0
}

// report prints one colored line for err and returns the exit status.
func report(w io.Writer, err error) int {
	switch {
	case errors.Is(err, command.ErrTestsFailed):
		return 1
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, command.ErrUsage):
		return 2
	case errors.Is(err, prompt.ErrAborted):
		return 130
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(w, palette.Yellow.Sprint("Interrupted."))
		return 130
	}
	fmt.Fprintln(w, palette.Red.Sprint(err.Error()))
	return appErr.GetCode(err).ExitCode()
}

func printUsage(w io.Writer, registry map[string]command.Command) {
	fmt.Fprintln(w, "Usage: slither [-settings path] [-log-level level] <command> [args]")
	fmt.Fprintln(w)
	for _, name := range command.Names(registry) {
		cmd := registry[name]
		fmt.Fprintf(w, "  %-42s %s\n", cmd.Usage, cmd.Summary)
	}
}
