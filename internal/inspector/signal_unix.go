//go:build unix

package inspector

import (
	"io"
	"os"
	"os/signal"

	"slither/pkg/utils/palette"

	"golang.org/x/sys/unix"
)

// restoreOnSignal restores the terminal when the process is told to stop while the
// browser is active, then exits with status 128+signal.
func restoreOnSignal(t Terminal) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, unix.SIGINT, unix.SIGTERM, unix.SIGHUP)
	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigCh:
			_ = t.Restore()
			_, _ = io.WriteString(t, palette.ShowCursor)
			code := 130
			if s, ok := sig.(unix.Signal); ok {
				code = 128 + int(s)
			}
			os.Exit(code)
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
