// File: facade/facade_test.go
// License: Apache-2.0

package facade_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/evpump/evpump/api"
	"github.com/evpump/evpump/event"
	"github.com/evpump/evpump/facade"
)

func mustPush(t *testing.T, sys *facade.EventSystem, ev api.Event) {
	t.Helper()
	accepted, err := sys.Queue().Push(ev)
	require.NoError(t, err)
	require.True(t, accepted)
}

func TestNewDefaults(t *testing.T) {
	sys, err := facade.New(nil)
	require.NoError(t, err)
	defer sys.Close()

	require.NotNil(t, sys.Queue())
	require.NotNil(t, sys.Pump())
	require.NotNil(t, sys.Control())
	require.Equal(t, 0, sys.Queue().Len())
}

func TestRunCollectsEvents(t *testing.T) {
	sys, err := facade.New(&facade.Config{
		QueueCapacity: 64,
		PumpInterval:  time.Millisecond,
	})
	require.NoError(t, err)
	defer sys.Close()

	mustPush(t, sys, event.User{Code: 7})
	mustPush(t, sys, event.Quit{})

	var codes []int32
	require.NoError(t, sys.Run(func(ev api.Event) {
		if u, isUser := ev.(event.User); isUser {
			codes = append(codes, u.Code)
		}
	}))
	require.Equal(t, []int32{7}, codes)
}

func TestPublishStats(t *testing.T) {
	sys, err := facade.New(&facade.Config{
		QueueCapacity: 64,
		PumpInterval:  time.Millisecond,
		EnableMetrics: true,
	})
	require.NoError(t, err)
	defer sys.Close()

	mustPush(t, sys, event.User{Code: 1})
	mustPush(t, sys, event.User{Code: 2})
	sys.PublishStats()

	stats := sys.Control().Stats()
	require.Equal(t, uint64(2), stats["queue.pushed"])
	require.Equal(t, 2, stats["queue.depth"])
}

func TestDebugProbes(t *testing.T) {
	sys, err := facade.New(&facade.Config{
		QueueCapacity: 64,
		PumpInterval:  time.Millisecond,
		EnableDebug:   true,
	})
	require.NoError(t, err)
	defer sys.Close()

	mustPush(t, sys, event.User{Code: 1})

	stats := sys.Control().Stats()
	require.Equal(t, 1, stats["debug.queue.depth"])
	require.Equal(t, false, stats["debug.pump.running"])
}

func TestConfigFile(t *testing.T) {
	sys, err := facade.New(&facade.Config{
		QueueCapacity: 64,
		PumpInterval:  time.Millisecond,
		ConfigFile:    "no/such/file.yaml",
	})
	require.Error(t, err)
	require.Nil(t, sys)
}

func TestCloseTerminatesRun(t *testing.T) {
	sys, err := facade.New(&facade.Config{
		QueueCapacity: 64,
		PumpInterval:  time.Millisecond,
	})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- sys.Run(func(api.Event) {}) }()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, sys.Close())

	select {
	case runErr := <-done:
		// Stop may win the race against the queue close notice.
		if runErr != nil {
			require.ErrorIs(t, runErr, api.ErrQueueClosed)
		}
	case <-time.After(time.Second):
		t.Fatal("run did not terminate after close")
	}
}
