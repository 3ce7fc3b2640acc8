package queue_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evpump/evpump/affinity"
	"github.com/evpump/evpump/api"
	"github.com/evpump/evpump/event"
	"github.com/evpump/evpump/queue"
)

func stageMixed(t *testing.T) *event.Batch {
	t.Helper()
	b := event.NewBatch(8)
	require.NoError(t, b.PushEvent(event.User{Code: 1}))
	require.NoError(t, b.PushEvent(event.Keyboard{Scancode: 10, Down: true}))
	require.NoError(t, b.PushEvent(event.User{Code: 2}))
	require.NoError(t, b.PushEvent(event.Keyboard{Scancode: 20, Down: true}))
	require.NoError(t, b.PushEvent(event.User{Code: 3}))
	return b
}

func TestPeepAdd(t *testing.T) {
	q := queue.New()
	defer q.Close()

	n, err := q.Peep(stageMixed(t), queue.PeepAdd, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, 5, q.Len())
}

func TestPeepAddRespectsFilter(t *testing.T) {
	q := queue.New()
	defer q.Close()

	q.SetFilter(func(ev api.Event) bool {
		_, isUser := ev.(event.User)
		return isUser
	})

	n, err := q.Peep(stageMixed(t), queue.PeepAdd, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 3, q.Len())
}

func TestPeepPeekDoesNotConsume(t *testing.T) {
	q := queue.New()
	defer q.Close()
	_, err := q.Peep(stageMixed(t), queue.PeepAdd, 0, 0)
	require.NoError(t, err)

	out := event.NewBatch(2)
	n, err := q.Peep(out, queue.PeepPeek, event.TypeUser, event.TypeLast)
	require.NoError(t, err)
	require.Equal(t, 2, n) // stops at batch capacity
	require.Equal(t, 5, q.Len())

	codes := []int32{}
	out.Fold(func(i int, rec *event.Record) error {
		codes = append(codes, event.Decode(*rec).(event.User).Code)
		return nil
	})
	require.Equal(t, []int32{1, 2}, codes)
}

func TestPeepGetConsumesInRange(t *testing.T) {
	q := queue.New()
	defer q.Close()
	_, err := q.Peep(stageMixed(t), queue.PeepAdd, 0, 0)
	require.NoError(t, err)

	out := event.NewBatch(8)
	n, err := q.Peep(out, queue.PeepGet, event.TypeUser, event.TypeLast)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 2, q.Len())

	// Survivors stay in FIFO order.
	first, _ := q.Poll()
	second, _ := q.Poll()
	require.Equal(t, uint32(10), first.(event.Keyboard).Scancode)
	require.Equal(t, uint32(20), second.(event.Keyboard).Scancode)
}

func TestPeepNilBatch(t *testing.T) {
	q := queue.New()
	defer q.Close()

	_, err := q.Peep(nil, queue.PeepPeek, 0, event.TypeLast)
	require.ErrorIs(t, err, api.ErrInvalidArgument)
}

func TestPeepClosedQueue(t *testing.T) {
	q := queue.New()
	q.Close()

	out := event.NewBatch(1)
	_, err := q.Peep(out, queue.PeepGet, 0, event.TypeLast)
	require.ErrorIs(t, err, api.ErrQueueClosed)
}

// TestThreadGuard exercises the opt-in owner-thread contract. Platforms
// without thread identification treat every thread as the owner.
func TestThreadGuard(t *testing.T) {
	enforced := runtime.GOOS == "linux" || runtime.GOOS == "windows"

	var q *queue.Queue
	ready := make(chan struct{})
	finish := make(chan struct{})
	ownerDone := make(chan struct{})

	// Build queue and guard on a pinned goroutine so the owning thread
	// stays stable for the duration of the test.
	go func() {
		defer close(ownerDone)
		g := affinity.Capture()
		q = queue.New(queue.WithThreadGuard(g))

		ok, err := q.Push(event.User{Code: 1})
		if err != nil || !ok {
			t.Errorf("owner push failed: ok=%v err=%v", ok, err)
		}
		close(ready)

		// Hold the owning thread until the off-thread checks finish.
		<-finish
	}()
	defer func() {
		close(finish)
		<-ownerDone
	}()

	<-ready
	// This goroutine runs on a different OS thread than the pinned
	// owner with overwhelming likelihood once we pin it too.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	_, err := q.Push(event.User{Code: 2})
	if enforced {
		require.ErrorIs(t, err, api.ErrWrongThread)
		_, werr := q.Wait()
		require.ErrorIs(t, werr, api.ErrWrongThread)
	} else {
		require.NoError(t, err)
	}
}
