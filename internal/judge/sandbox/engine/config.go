package engine

import "time"

const (
	defaultStdoutStderrMaxBytes int64 = 64 << 20
	defaultShell                      = "/bin/sh"
	defaultWaitDelay                  = 500 * time.Millisecond
)

// Config controls sandbox engine behavior.
type Config struct {
	// StdoutStderrMaxBytes caps how much of each stream is kept.
	StdoutStderrMaxBytes int64
	// Shell runs commands that use shell syntax.
	Shell string
	// WaitDelay bounds how long Wait keeps draining pipes after the process is gone.
	WaitDelay time.Duration
}

func (c *Config) applyDefaults() {
	if c.StdoutStderrMaxBytes <= 0 {
		c.StdoutStderrMaxBytes = defaultStdoutStderrMaxBytes
	}
	if c.Shell == "" {
		c.Shell = defaultShell
	}
	if c.WaitDelay <= 0 {
		c.WaitDelay = defaultWaitDelay
	}
}
