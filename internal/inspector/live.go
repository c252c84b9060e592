package inspector

import (
	"context"
	"io"
	"strings"

	"slither/internal/judge/sandbox"
	"slither/pkg/utils/palette"
)

// LiveRenderer redraws one status line per result after every transition.
type LiveRenderer struct {
	out     io.Writer
	inPlace bool
}

// NewLiveRenderer creates a renderer. When inPlace is false (output is not a
// terminal) only the final state is written, without cursor movement.
func NewLiveRenderer(out io.Writer, inPlace bool) *LiveRenderer {
	return &LiveRenderer{out: out, inPlace: inPlace}
}

// ReportStatus implements sandbox.StatusReporter.
func (l *LiveRenderer) ReportStatus(ctx context.Context, update sandbox.StatusUpdate) error {
	if update.Results == nil || update.Results.Len() == 0 {
		return nil
	}
	if !l.inPlace && !update.Final {
		return nil
	}

	var b strings.Builder
	if l.inPlace {
		b.WriteString(palette.HideCursor)
	}
	for _, item := range update.Results.Items {
		if l.inPlace {
			b.WriteString(palette.ClearLine)
		}
		b.WriteString(StatusLine(item))
		b.WriteString(palette.Reset)
		b.WriteString("\n")
	}
	if l.inPlace {
		if update.Final {
			b.WriteString(palette.ShowCursor)
		} else {
			b.WriteString(palette.Up(update.Results.Len()))
		}
	}
	_, err := io.WriteString(l.out, b.String())
	return err
}
