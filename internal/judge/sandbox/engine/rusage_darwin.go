package engine

import "syscall"

// Darwin reports ru_maxrss in bytes.
func maxRSSKB(usage *syscall.Rusage) int64 {
	return int64(usage.Maxrss) / 1024
}
