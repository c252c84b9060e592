package inspector

import (
	"io"
	"os"
	"sync"

	appErr "slither/pkg/errors"

	"golang.org/x/term"
)

// Terminal is the raw-mode capable terminal the browser owns while it runs.
type Terminal interface {
	io.Reader
	io.Writer
	MakeRaw() error
	// Restore returns to the mode saved by MakeRaw; it is safe to call more than once.
	Restore() error
	Size() (width, height int, err error)
}

// StdTerminal drives the process's standard input and output.
type StdTerminal struct {
	in  *os.File
	out *os.File

	mu    sync.Mutex
	state *term.State
}

// NewStdTerminal wraps os.Stdin and os.Stdout.
func NewStdTerminal() *StdTerminal {
	return &StdTerminal{in: os.Stdin, out: os.Stdout}
}

// IsInteractive reports whether both standard streams are terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func (t *StdTerminal) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

func (t *StdTerminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

func (t *StdTerminal) MakeRaw() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return appErr.New(appErr.TerminalError).WithMessage("standard input is not a terminal")
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return appErr.Wrapf(err, appErr.TerminalError, "enter raw mode failed")
	}
	t.state = state
	return nil
}

func (t *StdTerminal) Restore() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.state)
	t.state = nil
	if err != nil {
		return appErr.Wrapf(err, appErr.TerminalError, "restore terminal failed")
	}
	return nil
}

func (t *StdTerminal) Size() (int, int, error) {
	return term.GetSize(int(t.out.Fd()))
}
