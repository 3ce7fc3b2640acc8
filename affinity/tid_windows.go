//go:build windows

// File: affinity/tid_windows.go
// Package affinity: Windows thread identification.
// License: Apache-2.0

package affinity

import "golang.org/x/sys/windows"

func currentThreadID() uint64 {
	return uint64(windows.GetCurrentThreadId())
}
