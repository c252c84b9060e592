package checker

import (
	"strconv"
	"strings"

	"slither/pkg/utils/palette"
)

// compareLine compares one aligned pair and returns the rendered text of each side
// (without line numbers).
type compareLine func(opts Options, expected, actual string) (ok bool, shownExpected, shownActual string)

// align walks both streams, skipping debug lines of the actual stream, comparing the
// remaining lines pairwise and marking unmatched extras as failures. It never stops at
// the first mismatch so the whole diff is rendered.
func align(opts Options, expected, actual string, cmp compareLine) Verdict {
	expectedLines := splitLines(expected)
	actualLines := splitLines(actual)

	width := len(strconv.Itoa(max(len(expectedLines), len(actualLines))))

	var displayExpected, displayActual strings.Builder
	ok := true
	i, j := 0, 0
	for i < len(expectedLines) || j < len(actualLines) {
		if j < len(actualLines) && isDebugLine(actualLines[j], opts.DebugDelimiter) {
			displayExpected.WriteString("\n")
			displayActual.WriteString(palette.Gray.Sprint(lineNumber(j, width) + " " + actualLines[j]))
			displayActual.WriteString("\n")
			j++
			continue
		}

		switch {
		case i < len(expectedLines) && j < len(actualLines):
			lineOK, shownExpected, shownActual := cmp(opts, expectedLines[i], actualLines[j])
			if !lineOK {
				ok = false
			}
			writeRow(&displayExpected, i, width, shownExpected)
			writeRow(&displayActual, j, width, shownActual)
			i++
			j++
		case i < len(expectedLines):
			ok = false
			writeRow(&displayExpected, i, width, palette.Red.Sprint(" "+expectedLines[i]))
			i++
		default:
			ok = false
			writeRow(&displayActual, j, width, palette.Red.Sprint(" "+actualLines[j]))
			j++
		}
	}

	return Verdict{
		OK:              ok,
		DisplayExpected: displayExpected.String(),
		DisplayActual:   displayActual.String(),
	}
}

func writeRow(b *strings.Builder, idx, width int, shown string) {
	b.WriteString(palette.Gray.Sprint(lineNumber(idx, width)))
	b.WriteString(shown)
	b.WriteString("\n")
}

func lineNumber(idx, width int) string {
	return palette.LeftPad(strconv.Itoa(idx+1), width)
}

// splitLines splits on newlines and drops trailing empty lines.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func isDebugLine(line, delimiter string) bool {
	return delimiter != "" && strings.HasPrefix(line, delimiter)
}
