//go:build linux

// File: affinity/tid_linux.go
// Package affinity: Linux thread identification.
// License: Apache-2.0

package affinity

import "golang.org/x/sys/unix"

func currentThreadID() uint64 {
	return uint64(unix.Gettid())
}
