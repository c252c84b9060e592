package engine

import (
	"strings"

	appErr "slither/pkg/errors"

	"github.com/google/shlex"
)

// shellMeta lists characters that only a shell can interpret.
const shellMeta = "|&;<>()$`*?~\n"

// parseCommand splits a command line into argv. Lines using pipes, redirection,
// globs or substitutions are handed to the shell unchanged.
func parseCommand(shell, line string) ([]string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, appErr.ValidationError("command", "required")
	}
	if strings.ContainsAny(line, shellMeta) {
		return []string{shell, "-c", line}, nil
	}
	argv, err := shlex.Split(line)
	if err != nil {
		return nil, appErr.Wrapf(err, appErr.InvalidParams, "parse command %q failed", line)
	}
	if len(argv) == 0 {
		return nil, appErr.ValidationError("command", "required")
	}
	return argv, nil
}
