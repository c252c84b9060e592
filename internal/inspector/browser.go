package inspector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"slither/internal/judge/model"
	appErr "slither/pkg/errors"
	"slither/pkg/utils/palette"
)

const (
	// DefaultMaxLines caps each output column.
	DefaultMaxLines = 20
	defaultWidth    = 80
	minColumnWidth  = 10
	columnSeparator = " │ "
)

// Browser lets the user step through finished results.
type Browser struct {
	term     Terminal
	results  *model.Results
	maxLines int
	selected int
}

// NewBrowser creates a browser over results; maxLines <= 0 selects DefaultMaxLines.
func NewBrowser(t Terminal, results *model.Results, maxLines int) *Browser {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	return &Browser{term: t, results: results, maxLines: maxLines}
}

// Selected returns the position of the selected result.
func (b *Browser) Selected() int {
	return b.selected
}

// Next moves the selection forward, wrapping to the first result.
func (b *Browser) Next() {
	if n := b.results.Len(); n > 0 {
		b.selected = (b.selected + 1) % n
	}
}

// Prev moves the selection backward, wrapping to the last result.
func (b *Browser) Prev() {
	if n := b.results.Len(); n > 0 {
		b.selected = (b.selected - 1 + n) % n
	}
}

// Run owns the terminal in raw mode until the user quits. The terminal mode is
// restored on every exit path, including termination signals.
func (b *Browser) Run(ctx context.Context) error {
	if b.results.Len() == 0 {
		return nil
	}
	if err := b.term.MakeRaw(); err != nil {
		return appErr.Wrapf(err, appErr.TerminalError, "enter raw mode failed: %v", err)
	}
	stop := restoreOnSignal(b.term)
	defer func() {
		stop()
		_, _ = io.WriteString(b.term, palette.Reset+palette.ShowCursor+"\r\n")
		_ = b.term.Restore()
	}()

	if err := b.draw(); err != nil {
		return err
	}
	buf := make([]byte, 32)
	for {
		n, err := b.term.Read(buf)
		if n > 0 {
			for _, k := range decodeKeys(buf[:n]) {
				switch k {
				case keyNext:
					b.Next()
				case keyPrev:
					b.Prev()
				case keyQuit:
					return nil
				}
			}
			if drawErr := b.draw(); drawErr != nil {
				return drawErr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return appErr.Wrapf(err, appErr.TerminalError, "read input failed")
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (b *Browser) draw() error {
	width, _, err := b.term.Size()
	if err != nil || width <= 0 {
		width = defaultWidth
	}
	if _, err := io.WriteString(b.term, b.Render(width)); err != nil {
		return appErr.Wrapf(err, appErr.TerminalError, "draw failed")
	}
	return nil
}

// Render returns the full screen for the current selection at the given width.
func (b *Browser) Render(width int) string {
	var lines []string
	lines = append(lines, b.renderList(width), "")

	item := b.results.Items[b.selected]
	lines = append(lines, b.renderBanner(item, width)...)
	lines = append(lines, "")

	colWidth := (width - len([]rune(columnSeparator))) / 2
	if colWidth < minColumnWidth {
		colWidth = minColumnWidth
	}
	lines = append(lines, b.renderColumns(item, colWidth)...)
	lines = append(lines, "", palette.Gray.Sprint(palette.Truncate("←/→ h/l move · q quit", width)))

	return palette.ClearScreen + palette.HideCursor + strings.Join(lines, palette.Reset+"\r\n") + palette.Reset
}

func (b *Browser) renderList(width int) string {
	parts := make([]string, 0, b.results.Len())
	for i, item := range b.results.Items {
		bd := badgeOf(item)
		label := bd.color.Sprint(bd.icon) + " " + strconv.Itoa(item.Index)
		if i == b.selected {
			label = palette.Bold.Sprint("[") + label + palette.Bold.Sprint("]")
		} else {
			label = " " + label + " "
		}
		parts = append(parts, label)
	}
	return palette.Truncate(strings.Join(parts, " "), width)
}

func (b *Browser) renderBanner(item *model.Result, width int) []string {
	title := fmt.Sprintf("Test %d: ", item.Index)
	if item.Err != nil {
		return []string{
			palette.Bold.Sprint(title) + palette.Red.Sprint("SKIPPED"),
			palette.Truncate(palette.Red.Sprint(item.Err.Error()), width),
		}
	}

	bd := badgeOf(item)
	banner := palette.Bold.Sprint(title) + bd.color.Sprint(item.State.String())
	if item.Outcome != nil {
		banner += " " + palette.Gray.Sprint(usageText(item.Outcome.Resources()))
	}
	lines := []string{palette.Truncate(banner, width)}

	if crashed, ok := item.Outcome.(model.Crashed); ok {
		stderr := rows(crashed.Stderr)
		for i, line := range stderr {
			if i == b.maxLines {
				lines = append(lines, palette.Gray.Sprintf("… %d more lines", len(stderr)-b.maxLines))
				break
			}
			lines = append(lines, palette.Truncate(palette.Red.Sprint(line), width))
		}
	}
	return lines
}

func (b *Browser) renderColumns(item *model.Result, colWidth int) []string {
	var left, right []string
	switch outcome := item.Outcome.(type) {
	case model.Complete:
		left, right = rows(outcome.DisplayExpected), rows(outcome.DisplayActual)
	case nil:
		return nil
	default:
		expected, actual := outcome.Raw()
		left, right = numberLines(expected), numberLines(actual)
	}
	left, right = b.capLines(left), b.capLines(right)

	out := []string{palette.Pad(palette.Bold.Sprint("Expected"), colWidth) + columnSeparator + palette.Bold.Sprint("Actual")}
	n := len(left)
	if len(right) > n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		var l, r string
		if i < len(left) {
			l = palette.Truncate(left[i], colWidth)
		}
		if i < len(right) {
			r = palette.Truncate(right[i], colWidth)
		}
		out = append(out, palette.Pad(l, colWidth)+palette.Reset+columnSeparator+r)
	}
	return out
}

func (b *Browser) capLines(lines []string) []string {
	if len(lines) <= b.maxLines {
		return lines
	}
	capped := append([]string(nil), lines[:b.maxLines]...)
	return append(capped, palette.Gray.Sprintf("… %d more lines", len(lines)-b.maxLines))
}
