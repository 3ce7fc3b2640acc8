package queue_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/evpump/evpump/api"
	"github.com/evpump/evpump/event"
	"github.com/evpump/evpump/queue"
)

// TestPushPollIdentity checks the identity round trip through the
// queue for the quit, keyboard, and user variants.
func TestPushPollIdentity(t *testing.T) {
	q := queue.New()
	defer q.Close()

	pushed := []api.Event{
		event.Quit{Common: event.Common{Type: event.TypeQuit, Timestamp: 100}},
		event.Keyboard{
			Common:   event.Common{Type: event.TypeKeyDown, Timestamp: 200},
			WindowID: 1,
			Scancode: 44,
			Key:      32,
			Down:     true,
		},
		event.User{
			Common: event.Common{Type: event.TypeUser + 5, Timestamp: 300},
			Code:   -7,
			Data1:  1,
			Data2:  2,
		},
	}
	for _, ev := range pushed {
		ok, err := q.Push(ev)
		require.NoError(t, err)
		require.True(t, ok)
	}

	for _, want := range pushed {
		got, ok := q.Poll()
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	_, ok := q.Poll()
	require.False(t, ok)
}

func TestPollEmptyIsFalseNotError(t *testing.T) {
	q := queue.New()
	defer q.Close()

	ev, ok := q.Poll()
	require.False(t, ok)
	require.Nil(t, ev)
}

func TestPushStampsZeroTimestamp(t *testing.T) {
	q := queue.New()
	defer q.Close()

	before := uint64(time.Now().UnixNano())
	ok, err := q.Push(event.Keyboard{Down: true})
	require.NoError(t, err)
	require.True(t, ok)

	ev, ok := q.Poll()
	require.True(t, ok)
	require.GreaterOrEqual(t, ev.When(), before)
}

func TestQueueFull(t *testing.T) {
	q := queue.New(queue.WithCapacity(2))
	defer q.Close()

	for i := 0; i < 2; i++ {
		ok, err := q.Push(event.User{Code: int32(i)})
		require.NoError(t, err)
		require.True(t, ok)
	}

	ok, err := q.Push(event.User{Code: 99})
	require.ErrorIs(t, err, api.ErrQueueFull)
	require.False(t, ok)
	require.Equal(t, 2, q.Len())

	// Draining one record makes room again.
	_, polled := q.Poll()
	require.True(t, polled)
	ok, err = q.Push(event.User{Code: 100})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestWaitWokenByPush(t *testing.T) {
	q := queue.New()
	defer q.Close()

	go func() {
		time.Sleep(20 * time.Millisecond)
		q.Push(event.User{Code: 42})
	}()

	ev, err := q.Wait()
	require.NoError(t, err)
	require.Equal(t, int32(42), ev.(event.User).Code)
}

func TestWaitUnblockedByClose(t *testing.T) {
	q := queue.New()

	go func() {
		time.Sleep(20 * time.Millisecond)
		q.Close()
	}()

	_, err := q.Wait()
	require.ErrorIs(t, err, api.ErrQueueClosed)
}

func TestWaitTimeoutExpiry(t *testing.T) {
	q := queue.New()
	defer q.Close()

	start := time.Now()
	ev, ok, err := q.WaitTimeout(30 * time.Millisecond)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, ev)
	require.GreaterOrEqual(t, time.Since(start), 25*time.Millisecond)
}

func TestWaitTimeoutDelivery(t *testing.T) {
	q := queue.New()
	defer q.Close()

	go func() {
		time.Sleep(10 * time.Millisecond)
		q.Push(event.Quit{})
	}()

	ev, ok, err := q.WaitTimeout(time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	require.IsType(t, event.Quit{}, ev)
}

func TestCloseIdempotentAndTerminal(t *testing.T) {
	q := queue.New()
	q.Push(event.Quit{})

	require.NoError(t, q.Close())
	require.NoError(t, q.Close())
	require.True(t, q.Closed())

	// Queued records are discarded and pushes fail.
	_, ok := q.Poll()
	require.False(t, ok)
	ok, err := q.Push(event.Quit{})
	require.False(t, ok)
	require.ErrorIs(t, err, api.ErrQueueClosed)
}

func TestStats(t *testing.T) {
	q := queue.New()
	defer q.Close()

	for i := 0; i < 3; i++ {
		q.Push(event.User{Code: int32(i)})
	}
	q.Poll()

	s := q.Stats()
	require.Equal(t, uint64(3), s.Pushed)
	require.Equal(t, uint64(1), s.Polled)
	require.Equal(t, 2, s.Depth)
	require.Equal(t, 3, s.PeakDepth)
}

func TestHasAndFlush(t *testing.T) {
	q := queue.New()
	defer q.Close()

	q.Push(event.Keyboard{Down: true})
	q.Push(event.MouseMotion{X: 1})
	q.Push(event.Keyboard{Down: false})

	require.True(t, q.Has(event.TypeKeyDown))
	require.True(t, q.HasRange(event.TypeKeyDown, event.TypeKeyUp))
	require.False(t, q.Has(event.TypeQuit))

	q.FlushRange(event.TypeKeyDown, event.TypeKeyUp)
	require.False(t, q.HasRange(event.TypeKeyDown, event.TypeKeyUp))
	require.Equal(t, 1, q.Len())
	require.Equal(t, uint64(2), q.Stats().Flushed)

	// FIFO order of survivors is preserved.
	ev, ok := q.Poll()
	require.True(t, ok)
	require.IsType(t, event.MouseMotion{}, ev)
}
