// Package prompt asks the interactive questions of testset creation.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	appErr "slither/pkg/errors"

	"github.com/chzyer/readline"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("prompt aborted")

// Asker reads one answer per question.
type Asker interface {
	// Ask returns the answer, or def when the answer is empty.
	Ask(question, def string) (string, error)
	// Choose returns the position of the selected choice.
	Choose(question string, choices []string) (int, error)
}

// ReadlineAsker asks questions on a readline instance.
type ReadlineAsker struct {
	rl  *readline.Instance
	out io.Writer
}

// NewReadlineAsker creates an asker on the given streams.
func NewReadlineAsker(in io.ReadCloser, out io.Writer) (*ReadlineAsker, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:                  in,
		Stdout:                 out,
		HistoryLimit:           -1,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
	})
	if err != nil {
		return nil, appErr.Wrapf(err, appErr.TerminalError, "init prompt failed")
	}
	return &ReadlineAsker{rl: rl, out: out}, nil
}

// Close releases the terminal.
func (a *ReadlineAsker) Close() error {
	return a.rl.Close()
}

func (a *ReadlineAsker) Ask(question, def string) (string, error) {
	label := question
	if def != "" {
		label += " (" + def + ")"
	}
	a.rl.SetPrompt(label + ": ")
	line, err := a.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", appErr.Wrapf(err, appErr.TerminalError, "read answer failed")
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

func (a *ReadlineAsker) Choose(question string, choices []string) (int, error) {
	for i, c := range choices {
		fmt.Fprintf(a.out, "  %d) %s\n", i+1, c)
	}
	for {
		answer, err := a.Ask(question, "1")
		if err != nil {
			return 0, err
		}
		if idx, ok := matchChoice(answer, choices); ok {
			return idx, nil
		}
		fmt.Fprintf(a.out, "Pick a number between 1 and %d.\n", len(choices))
	}
}

// matchChoice accepts a 1-based number or a case-insensitive choice label.
func matchChoice(answer string, choices []string) (int, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(choices) {
			return n - 1, true
		}
		return 0, false
	}
	for i, c := range choices {
		if strings.EqualFold(answer, c) {
			return i, true
		}
	}
	return 0, false
}
