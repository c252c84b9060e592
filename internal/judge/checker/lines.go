package checker

import (
	"strings"

	"slither/pkg/utils/palette"
)

// linesChecker requires every aligned line pair to match exactly, ignoring only
// leading and trailing whitespace.
type linesChecker struct{}

func (linesChecker) Check(opts Options, expected, actual string) Verdict {
	return align(opts, expected, actual, compareExact)
}

func compareExact(_ Options, expected, actual string) (bool, string, string) {
	c := palette.Red
	ok := strings.TrimSpace(expected) == strings.TrimSpace(actual)
	if ok {
		c = palette.Green
	}
	return ok, c.Sprint(" " + expected), c.Sprint(" " + actual)
}
