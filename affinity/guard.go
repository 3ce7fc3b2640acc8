// File: affinity/guard.go
// Package affinity provides OS-thread ownership checks.
// License: Apache-2.0
//
// Event queues inherit a single-owner-thread contract from the
// platforms they model: most queue operations are only well defined on
// the thread that created the queue. ThreadGuard makes that contract
// checkable. It is opt-in; queues built without a guard keep the
// permissive behavior.

package affinity

import (
	"runtime"

	"github.com/evpump/evpump/api"
)

// ThreadGuard remembers the OS thread it was captured on.
type ThreadGuard struct {
	tid uint64
}

// Capture pins the calling goroutine to its current OS thread and
// returns a guard bound to that thread. The goroutine stays pinned for
// its lifetime; call Capture once on the owning goroutine, typically
// the one driving the pump.
func Capture() *ThreadGuard {
	runtime.LockOSThread()
	return &ThreadGuard{tid: currentThreadID()}
}

// Check returns nil when called on the owning thread and
// api.ErrWrongThread otherwise. On platforms without thread
// identification Check always passes.
func (g *ThreadGuard) Check() error {
	if g == nil || g.tid == 0 {
		return nil
	}
	if currentThreadID() != g.tid {
		return api.ErrWrongThread
	}
	return nil
}
