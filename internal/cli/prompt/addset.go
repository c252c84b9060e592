package prompt

import (
	"strconv"
	"strings"

	"slither/internal/judge/model"
	appErr "slither/pkg/errors"
)

// AskTestset runs the testset creation questionnaire and returns the name and the
// testset with placeholders resolved.
func AskTestset(a Asker) (string, model.Testset, error) {
	name, err := a.Ask("Name", "")
	if err != nil {
		return "", model.Testset{}, err
	}
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", model.Testset{}, appErr.ValidationError("name", "must be a non-empty file name")
	}

	labels := make([]string, len(Templates))
	for i, t := range Templates {
		labels[i] = t.Name
	}
	idx, err := a.Choose("Template", labels)
	if err != nil {
		return "", model.Testset{}, err
	}
	tpl := Templates[idx]

	var ts model.Testset
	if ts.Limits.Time, err = askInt(a, "Timeout (ms)", tpl.Limits.Time); err != nil {
		return "", model.Testset{}, err
	}
	if ts.Limits.Memory, err = askFloat(a, "Memory Limit (MB)", tpl.Limits.Memory); err != nil {
		return "", model.Testset{}, err
	}
	if ts.IO.Input, err = a.Ask("Input", "stdin"); err != nil {
		return "", model.Testset{}, err
	}
	if ts.IO.Output, err = a.Ask("Output", "stdout"); err != nil {
		return "", model.Testset{}, err
	}
	if ts.Scripts.Compile, err = a.Ask("Compile Command", tpl.Scripts.Compile); err != nil {
		return "", model.Testset{}, err
	}
	if ts.Scripts.Run, err = a.Ask("Run Command", tpl.Scripts.Run); err != nil {
		return "", model.Testset{}, err
	}
	if ts.Scripts.Run == "" {
		return "", model.Testset{}, appErr.ValidationError("run command", "required")
	}
	if ts.Scripts.Cleanup, err = a.Ask("Cleanup Command", tpl.Scripts.Cleanup); err != nil {
		return "", model.Testset{}, err
	}

	checkerLabels := make([]string, len(checkerChoices))
	for i, c := range checkerChoices {
		checkerLabels[i] = c.label
	}
	idx, err = a.Choose("Checker", checkerLabels)
	if err != nil {
		return "", model.Testset{}, err
	}
	ts.Checker = checkerChoices[idx].spec

	if ts.Debug, err = a.Ask("Debug Output Delimiter", model.DefaultDebugDelimiter); err != nil {
		return "", model.Testset{}, err
	}
	return name, ResolveName(ts, name), nil
}

func askInt(a Asker, question string, def int64) (int64, error) {
	answer, err := a.Ask(question, formatDefault(float64(def)))
	if err != nil {
		return 0, err
	}
	if answer == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(answer, 10, 64)
	if err != nil || n < 0 {
		return 0, appErr.ValidationError(strings.ToLower(question), "must be a non-negative integer")
	}
	return n, nil
}

func askFloat(a Asker, question string, def float64) (float64, error) {
	answer, err := a.Ask(question, formatDefault(def))
	if err != nil {
		return 0, err
	}
	if answer == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(answer, 64)
	if err != nil || f < 0 {
		return 0, appErr.ValidationError(strings.ToLower(question), "must be a non-negative number")
	}
	return f, nil
}

func formatDefault(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
