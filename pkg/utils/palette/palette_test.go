package palette

import (
	"strings"
	"testing"
)

func TestVisibleWidthIgnoresEscapes(t *testing.T) {
	s := Red.Sprint("abc") + "✓"
	if got := VisibleWidth(s); got != 4 {
		t.Fatalf("VisibleWidth = %d, want 4", got)
	}
}

func TestTruncateKeepsEscapes(t *testing.T) {
	s := "\x1b[31mhello\x1b[0m world"
	got := Truncate(s, 3)
	if VisibleWidth(got) != 3 {
		t.Fatalf("truncated width = %d", VisibleWidth(got))
	}
	if !strings.HasPrefix(got, "\x1b[31mhel") || !strings.HasSuffix(got, Reset) {
		t.Fatalf("unexpected truncation %q", got)
	}
	if Truncate("short", 10) != "short" {
		t.Fatal("short strings must be returned unchanged")
	}
}

func TestPadding(t *testing.T) {
	if got := Pad(Green.Sprint("ab"), 4); VisibleWidth(got) != 4 || !strings.HasSuffix(got, "  ") {
		t.Fatalf("Pad = %q", got)
	}
	if got := LeftPad("7", 3); got != "  7" {
		t.Fatalf("LeftPad = %q", got)
	}
}

func TestCursorMoves(t *testing.T) {
	if Up(0) != "" || Up(3) != "\x1b[3A" {
		t.Fatal("unexpected cursor sequences")
	}
}

func TestColorsAreForced(t *testing.T) {
	if got := Red.Sprint("x"); !strings.Contains(got, "\x1b[31m") {
		t.Fatalf("color not emitted: %q", got)
	}
}

func TestWidthCountsCells(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"日本", 4},
		{"a日b", 4},
		{"a\tb", 9},
		{"abcdefgh\tx", 17},
		{Red.Sprint("日") + "x", 3},
	}
	for _, tc := range cases {
		if got := VisibleWidth(tc.in); got != tc.want {
			t.Fatalf("VisibleWidth(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestExpandTabs(t *testing.T) {
	if got := ExpandTabs("a\tb"); got != "a       b" {
		t.Fatalf("ExpandTabs = %q", got)
	}
	if got := ExpandTabs(Green.Sprint("ab") + "\tc"); VisibleWidth(got) != 9 || strings.Contains(got, "\t") {
		t.Fatalf("ExpandTabs with escapes = %q", got)
	}
}

func TestTruncateByCells(t *testing.T) {
	got := Truncate("a\tb\tc\td", 7)
	if strings.Contains(got, "\t") || VisibleWidth(got) > 7 {
		t.Fatalf("tabs not expanded before cutting: %q (%d cells)", got, VisibleWidth(got))
	}
	got = Truncate("日本語", 5)
	if VisibleWidth(got) != 4 || !strings.HasPrefix(got, "日本") {
		t.Fatalf("wide rune straddled the limit: %q", got)
	}
	if got := Truncate("a\tb", 20); got != "a       b" {
		t.Fatalf("short tabbed text must still be expanded: %q", got)
	}
}
