package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	appErr "slither/pkg/errors"
)

// Handler executes one subcommand with its remaining arguments.
type Handler func(ctx context.Context, app *App, args []string) error

// Command defines a CLI subcommand binding.
type Command struct {
	Name    string
	Usage   string
	Summary string
	Run     Handler
}

// maxRangeSpan bounds how many indices one "a-b" range may expand to.
const maxRangeSpan = 10000

// ParseInt parses a decimal int, ignoring surrounding whitespace.
func ParseInt(value string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 32)
	return int(n), err
}

// ParseStringList splits a comma-separated list and drops empty items.
func ParseStringList(value string) []string {
	raw := strings.Split(value, ",")
	result := make([]string, 0, len(raw))
	for _, item := range raw {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

// ParseTestList parses a list of positive test indices such as "1,3,5-8".
// Ranges are inclusive and expand in ascending order; the list order is kept and
// repeated indices are dropped.
func ParseTestList(value string) ([]int, error) {
	items := ParseStringList(value)
	if len(items) == 0 {
		return nil, appErr.ValidationError("tests", "empty test list")
	}
	result := make([]int, 0, len(items))
	seen := make(map[int]bool)
	add := func(n int) {
		if !seen[n] {
			seen[n] = true
			result = append(result, n)
		}
	}
	for _, item := range items {
		lo, hi, isRange := strings.Cut(item, "-")
		if !isRange {
			n, err := parseIndex(item)
			if err != nil {
				return nil, err
			}
			add(n)
			continue
		}
		a, err := parseIndex(lo)
		if err != nil {
			return nil, err
		}
		b, err := parseIndex(hi)
		if err != nil {
			return nil, err
		}
		if a > b {
			return nil, appErr.ValidationError("tests", fmt.Sprintf("range %s is reversed", item))
		}
		if b-a >= maxRangeSpan {
			return nil, appErr.ValidationError("tests", fmt.Sprintf("range %s spans more than %d tests", item, maxRangeSpan))
		}
		for i := a; i <= b; i++ {
			add(i)
		}
	}
	return result, nil
}

func parseIndex(value string) (int, error) {
	n, err := ParseInt(value)
	if err != nil || n <= 0 {
		return 0, appErr.ValidationError("tests", fmt.Sprintf("%q is not a positive test number", strings.TrimSpace(value)))
	}
	return n, nil
}
