//go:build unix && !darwin

package engine

import "syscall"

func maxRSSKB(usage *syscall.Rusage) int64 {
	return int64(usage.Maxrss)
}
