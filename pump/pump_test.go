package pump_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/evpump/evpump/api"
	"github.com/evpump/evpump/event"
	"github.com/evpump/evpump/pump"
	"github.com/evpump/evpump/queue"
)

func TestRunTerminatesOnQuit(t *testing.T) {
	q := queue.New()
	defer q.Close()

	q.Push(event.Keyboard{Scancode: 1, Down: true})
	q.Push(event.Quit{})
	q.Push(event.Keyboard{Scancode: 2, Down: true})

	p := pump.New(q, pump.WithInterval(time.Millisecond))
	var tags []event.Type
	err := p.Run(func(ev api.Event) {
		tags = append(tags, ev.EventType())
	})
	require.NoError(t, err)

	// The quit event is delivered, then iteration ends permanently:
	// the event queued after quit is never yielded.
	require.Equal(t, []event.Type{event.TypeKeyDown, event.TypeQuit}, tags)
	require.Equal(t, 1, q.Len())
	require.False(t, p.Running())
}

func TestRunYieldsInQueueOrder(t *testing.T) {
	q := queue.New()
	defer q.Close()

	for i := 0; i < 10; i++ {
		q.Push(event.User{Code: int32(i)})
	}
	q.Push(event.Quit{})

	var codes []int32
	p := pump.New(q, pump.WithInterval(time.Millisecond))
	require.NoError(t, p.Run(func(ev api.Event) {
		if u, isUser := ev.(event.User); isUser {
			codes = append(codes, u.Code)
		}
	}))
	require.Equal(t, []int32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, codes)
}

func TestIdleHookRunsBetweenDrains(t *testing.T) {
	q := queue.New()
	defer q.Close()

	var idles atomic.Int32
	p := pump.New(q,
		pump.WithInterval(2*time.Millisecond),
		pump.WithIdle(func() { idles.Add(1) }),
	)

	done := make(chan error, 1)
	go func() { done <- p.Run(func(api.Event) {}) }()

	// Let several ticks elapse on an empty queue, then quit.
	time.Sleep(20 * time.Millisecond)
	q.Push(event.Quit{})
	require.NoError(t, <-done)
	require.GreaterOrEqual(t, idles.Load(), int32(2))
}

func TestStop(t *testing.T) {
	q := queue.New()
	defer q.Close()

	p := pump.New(q, pump.WithInterval(time.Millisecond))
	done := make(chan error, 1)
	go func() { done <- p.Run(func(api.Event) {}) }()

	time.Sleep(10 * time.Millisecond)
	p.Stop()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("pump did not stop")
	}

	// Stop on an idle pump is a no-op.
	p.Stop()
}

func TestRunIsRestartable(t *testing.T) {
	q := queue.New()
	defer q.Close()

	p := pump.New(q, pump.WithInterval(time.Millisecond))

	q.Push(event.Quit{})
	require.NoError(t, p.Run(func(api.Event) {}))

	// A second Run picks up a fresh schedule and a fresh sentinel.
	q.Push(event.User{Code: 1})
	q.Push(event.Quit{})
	seen := 0
	require.NoError(t, p.Run(func(api.Event) { seen++ }))
	require.Equal(t, 2, seen)
}

func TestConcurrentRunRejected(t *testing.T) {
	q := queue.New()
	defer q.Close()

	p := pump.New(q, pump.WithInterval(time.Millisecond))
	done := make(chan error, 1)
	go func() { done <- p.Run(func(api.Event) {}) }()

	require.Eventually(t, p.Running, time.Second, time.Millisecond)
	require.ErrorIs(t, p.Run(func(api.Event) {}), api.ErrAlreadyRunning)

	q.Push(event.Quit{})
	require.NoError(t, <-done)
}

func TestRunReportsClosedQueue(t *testing.T) {
	q := queue.New()

	p := pump.New(q, pump.WithInterval(time.Millisecond))
	done := make(chan error, 1)
	go func() { done <- p.Run(func(api.Event) {}) }()

	time.Sleep(5 * time.Millisecond)
	q.Close()

	select {
	case err := <-done:
		require.ErrorIs(t, err, api.ErrQueueClosed)
	case <-time.After(time.Second):
		t.Fatal("pump did not observe queue close")
	}
}
