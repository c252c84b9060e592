package command

import (
	"context"
	"fmt"

	"slither/internal/cli/prompt"
	"slither/pkg/utils/logger"
	"slither/pkg/utils/palette"

	"go.uber.org/zap"
)

func runAddSet(ctx context.Context, app *App, args []string) error {
	// Fail before asking anything when there is no workspace.
	if _, err := app.Configs.Load(); err != nil {
		return err
	}

	asker := app.Asker
	if asker == nil {
		rl, err := prompt.NewReadlineAsker(app.Stdin, app.Stdout)
		if err != nil {
			return err
		}
		defer rl.Close()
		asker = rl
	}

	name, ts, err := prompt.AskTestset(asker)
	if err != nil {
		return err
	}
	if err := app.Configs.AddTestset(name, ts); err != nil {
		return err
	}
	logger.Info(ctx, "testset added", zap.String("testset", name), zap.String("checker", ts.Checker.Type))
	fmt.Fprintln(app.Stdout, palette.Green.Sprintf("Added test set %s to Slither.", name)+" 🐍")
	return nil
}
