package command

import (
	"context"
	"fmt"

	"slither/pkg/utils/palette"
)

func runInit(ctx context.Context, app *App, args []string) error {
	fs := newFlagSet("init", app.Stderr)
	force := fs.Bool("f", false, "reset an existing configuration")
	if _, err := parseInterspersed(fs, args); err != nil {
		return err
	}
	if err := app.Configs.Init(*force); err != nil {
		return err
	}
	fmt.Fprintln(app.Stdout, palette.Green.Sprint("Initialized Slither in this directory.")+" 🐍")
	return nil
}
