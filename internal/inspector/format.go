// Package inspector renders judge results to the terminal: a live status view while
// tests run and an interactive browser afterwards.
package inspector

import (
	"fmt"
	"strconv"
	"strings"

	"slither/internal/judge/model"
	"slither/pkg/utils/palette"

	"github.com/fatih/color"
)

type badge struct {
	icon  string
	color *color.Color
}

var badges = map[model.State]badge{
	model.StateWaiting:             {"•", palette.Gray},
	model.StateRunning:             {"•", palette.White},
	model.StateOK:                  {"✓", palette.Green},
	model.StateWrongAnswer:         {"✗", palette.Red},
	model.StateTimeLimitExceeded:   {"!", palette.Yellow},
	model.StateMemoryLimitExceeded: {"!", palette.Yellow},
	model.StateRuntimeError:        {"✗", palette.Yellow},
}

func badgeOf(r *model.Result) badge {
	if r.Err != nil {
		return badge{"?", palette.Red}
	}
	if b, ok := badges[r.State]; ok {
		return b
	}
	return badge{"?", palette.Gray}
}

// StatusLine renders the one-line state of a result.
func StatusLine(r *model.Result) string {
	b := badgeOf(r)
	line := b.color.Sprint(b.icon) + " " + strconv.Itoa(r.Index)
	switch {
	case r.Err != nil:
		line += " " + palette.Gray.Sprint("[ Skipped ]")
	case r.State == model.StateRunning:
		line += " " + palette.Gray.Sprint("[ Running ]")
	case r.State.Terminal() && r.Outcome != nil:
		line += " " + palette.Gray.Sprint(usageText(r.Outcome.Resources()))
	}
	return line
}

func usageText(u model.Usage) string {
	return fmt.Sprintf("[ %d ms / %.3f MB ]", u.Time.Milliseconds(), u.MemoryMB())
}

// Summary renders the passed/total line printed after a run.
func Summary(results *model.Results) string {
	text := fmt.Sprintf("%d/%d tests passed", results.Passed(), results.Len())
	if results.AllPassed() {
		return palette.Green.Sprint(text)
	}
	return palette.Red.Sprint(text)
}

// numberLines renders raw text with gray right-aligned line numbers and no diff coloring.
func numberLines(raw string) []string {
	lines := rows(raw)
	width := len(strconv.Itoa(len(lines)))
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = palette.Gray.Sprint(palette.LeftPad(strconv.Itoa(i+1), width)) + " " + line
	}
	return out
}

func rows(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
