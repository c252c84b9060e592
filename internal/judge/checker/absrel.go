package checker

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"slither/pkg/utils/palette"

	"github.com/fatih/color"
)

// absRelChecker compares lines token by token as floating point numbers within an
// absolute-or-relative tolerance of 10^-Amount.
type absRelChecker struct{}

type tier int

const (
	tierTight tier = iota
	tierLoose
	tierFail
)

func (t tier) color() *color.Color {
	switch t {
	case tierTight:
		return palette.Green
	case tierLoose:
		return palette.Yellow
	default:
		return palette.Red
	}
}

func (absRelChecker) Check(opts Options, expected, actual string) Verdict {
	tolerance := math.Pow(10, -float64(opts.Amount))
	return align(opts, expected, actual, func(_ Options, e, a string) (bool, string, string) {
		return compareTokens(tolerance, e, a)
	})
}

func compareTokens(tolerance float64, expected, actual string) (bool, string, string) {
	expectedTokens := tokenize(expected)
	actualTokens := tokenize(actual)

	if countWords(expectedTokens) != countWords(actualTokens) {
		return false, palette.Red.Sprint(" " + expected), palette.Red.Sprint(" " + actual)
	}

	var shownExpected, shownActual strings.Builder
	shownExpected.WriteString(" ")
	shownActual.WriteString(" ")

	ok := true
	ei, ai := 0, 0
	for ei < len(expectedTokens) || ai < len(actualTokens) {
		if ei < len(expectedTokens) && expectedTokens[ei].space {
			shownExpected.WriteString(expectedTokens[ei].text)
			ei++
			continue
		}
		if ai < len(actualTokens) && actualTokens[ai].space {
			shownActual.WriteString(actualTokens[ai].text)
			ai++
			continue
		}
		t := compareNumbers(parseNumber(expectedTokens[ei].text), parseNumber(actualTokens[ai].text), tolerance)
		if t == tierFail {
			ok = false
		}
		shownExpected.WriteString(t.color().Sprint(expectedTokens[ei].text))
		shownActual.WriteString(t.color().Sprint(actualTokens[ai].text))
		ei++
		ai++
	}
	return ok, shownExpected.String(), shownActual.String()
}

func compareNumbers(expected, actual, tolerance float64) tier {
	if math.IsNaN(expected) || math.IsNaN(actual) {
		return tierFail
	}
	diff := math.Abs(expected - actual)
	if diff <= math.Max(0.1*tolerance, 0.1*tolerance*expected) {
		return tierTight
	}
	if diff <= math.Max(tolerance, tolerance*expected) {
		return tierLoose
	}
	return tierFail
}

// parseNumber returns NaN for anything that is not a number so it never compares equal.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

type token struct {
	text  string
	space bool
}

// tokenize splits s into alternating runs of whitespace and non-whitespace.
func tokenize(s string) []token {
	var tokens []token
	start := 0
	inSpace := false
	for i, r := range s {
		space := unicode.IsSpace(r)
		if i == 0 {
			inSpace = space
			continue
		}
		if space != inSpace {
			tokens = append(tokens, token{text: s[start:i], space: inSpace})
			start = i
			inSpace = space
		}
	}
	if start < len(s) {
		tokens = append(tokens, token{text: s[start:], space: inSpace})
	}
	return tokens
}

func countWords(tokens []token) int {
	n := 0
	for _, t := range tokens {
		if !t.space {
			n++
		}
	}
	return n
}
