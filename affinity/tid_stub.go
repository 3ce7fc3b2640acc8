//go:build !linux && !windows

// File: affinity/tid_stub.go
// Package affinity: fallback for platforms without thread identification.
// License: Apache-2.0
//
// Returns 0, which ThreadGuard.Check treats as "always owning thread".

package affinity

func currentThreadID() uint64 {
	return 0
}
