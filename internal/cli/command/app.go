package command

import (
	"context"
	"io"
	"os"

	"slither/internal/cli/config"
	"slither/internal/cli/prompt"
	"slither/internal/inspector"
	"slither/internal/judge/repository"
	"slither/internal/judge/sandbox/engine"
)

// App carries the workspace and the streams subcommands operate on.
type App struct {
	Root     string
	Settings config.Config
	Stdin    io.ReadCloser
	Stdout   io.Writer
	Stderr   io.Writer
	// Interactive enables in-place rendering and the result browser.
	Interactive bool

	Configs *repository.ConfigRepository
	Tests   *repository.TestcaseRepository

	// Optional collaborators; nil selects the terminal-backed defaults.
	Editor   func(ctx context.Context, path string) error
	Asker    prompt.Asker
	Engine   engine.Engine
	Terminal inspector.Terminal
}

// NewApp creates an App for the workspace rooted at root, bound to the process's standard streams.
func NewApp(root string, settings config.Config) *App {
	return &App{
		Root:        root,
		Settings:    settings,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Interactive: inspector.IsInteractive(),
		Configs:     repository.NewConfigRepository(root),
		Tests:       repository.NewTestcaseRepository(root),
	}
}

func (a *App) editor() func(ctx context.Context, path string) error {
	if a.Editor != nil {
		return a.Editor
	}
	return func(ctx context.Context, path string) error {
		return openEditor(ctx, a.Root, path)
	}
}

func (a *App) engine() (engine.Engine, error) {
	if a.Engine != nil {
		return a.Engine, nil
	}
	return engine.NewEngine(engine.Config{})
}

func (a *App) terminal() inspector.Terminal {
	if a.Terminal != nil {
		return a.Terminal
	}
	return inspector.NewStdTerminal()
}
