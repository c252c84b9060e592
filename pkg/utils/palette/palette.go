// Package palette holds the terminal colors shared by the checker, the inspector and the CLI.
package palette

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

var (
	Gray   = forced(color.FgHiBlack)
	Red    = forced(color.FgRed)
	Green  = forced(color.FgGreen)
	Yellow = forced(color.FgYellow)
	Cyan   = forced(color.FgCyan)
	White  = forced(color.FgWhite)
	Bold   = forced(color.Bold)
)

// forced colors are emitted even when stdout is not a terminal; display text is
// produced once and may be rendered later or compared in tests.
func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

const (
	HideCursor  = "\x1b[?25l"
	ShowCursor  = "\x1b[?25h"
	ClearScreen = "\x1b[2J\x1b[H"
	ClearLine   = "\x1b[2K"
	Reset       = "\x1b[0m"
)

// Up moves the cursor n lines up.
func Up(n int) string {
	if n <= 0 {
		return ""
	}
	return "\x1b[" + strconv.Itoa(n) + "A"
}

// tabWidth is the distance between tab stops when tabs are expanded.
const tabWidth = 8

var cells = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// VisibleWidth counts the terminal cells s occupies, skipping escape sequences,
// counting wide runes as two cells and tabs up to the next tab stop.
func VisibleWidth(s string) int {
	width := 0
	for i := 0; i < len(s); {
		if n := escapeLen(s[i:]); n > 0 {
			i += n
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		width += runeCells(r, width)
	}
	return width
}

// ExpandTabs replaces every tab with spaces up to the next tab stop.
func ExpandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for i := 0; i < len(s); {
		if n := escapeLen(s[i:]); n > 0 {
			b.WriteString(s[i : i+n])
			i += n
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		w := runeCells(r, col)
		if r == '\t' {
			b.WriteString(strings.Repeat(" ", w))
		} else {
			b.WriteString(s[i : i+size])
		}
		col += w
		i += size
	}
	return b.String()
}

// Truncate expands tabs and cuts s to at most width cells, keeping every escape
// sequence so colors stay balanced, and resets attributes if anything was cut.
// A wide rune that would straddle the limit is dropped.
func Truncate(s string, width int) string {
	s = ExpandTabs(s)
	if VisibleWidth(s) <= width {
		return s
	}
	var b strings.Builder
	visible := 0
	for i := 0; i < len(s); {
		if n := escapeLen(s[i:]); n > 0 {
			b.WriteString(s[i : i+n])
			i += n
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		w := runeCells(r, visible)
		if visible+w <= width {
			b.WriteString(s[i : i+size])
			visible += w
		} else {
			visible = width + 1
		}
		i += size
	}
	b.WriteString(Reset)
	return b.String()
}

// Pad right-pads s with spaces to width cells.
func Pad(s string, width int) string {
	if w := VisibleWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func runeCells(r rune, col int) int {
	if r == '\t' {
		return tabWidth - col%tabWidth
	}
	return cells.RuneWidth(r)
}

// LeftPad right-aligns s in a field of width runes.
func LeftPad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

// escapeLen returns the length of a CSI sequence at the start of s, or 0.
func escapeLen(s string) int {
	if len(s) < 2 || s[0] != 0x1b || s[1] != '[' {
		return 0
	}
	for i := 2; i < len(s); i++ {
		c := s[i]
		if c >= 0x40 && c <= 0x7e {
			return i + 1
		}
	}
	return len(s)
}
