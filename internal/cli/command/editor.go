package command

import (
	"context"
	"os"
	"os/exec"

	appErr "slither/pkg/errors"

	"github.com/google/shlex"
)

const defaultEditor = "vi"

// openEditor runs $EDITOR on path with the terminal attached.
func openEditor(ctx context.Context, dir, path string) error {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = defaultEditor
	}
	argv, err := shlex.Split(editor)
	if err != nil || len(argv) == 0 {
		return appErr.Newf(appErr.InvalidParams, "cannot parse editor command %q", editor)
	}
	cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return appErr.Wrapf(err, appErr.SpawnFailed, "editor %q failed: %v", argv[0], err)
	}
	return nil
}
