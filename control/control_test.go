// control/control_test.go
//
// Tests for config store, metrics registry, and debug probes.

package control

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigStoreMergeAndGet(t *testing.T) {
	cs := NewConfigStore()

	cs.SetConfig(map[string]any{"queue.capacity": 1024, "pump.interval": "10ms"})
	cs.SetConfig(map[string]any{"queue.capacity": 2048})

	v, ok := cs.Get("queue.capacity")
	require.True(t, ok)
	require.Equal(t, 2048, v)

	v, ok = cs.Get("pump.interval")
	require.True(t, ok)
	require.Equal(t, "10ms", v)

	_, ok = cs.Get("missing")
	require.False(t, ok)

	snap := cs.GetSnapshot()
	require.Len(t, snap, 2)

	// The snapshot is a copy; mutating it must not leak into the store.
	snap["queue.capacity"] = 1
	v, _ = cs.Get("queue.capacity")
	require.Equal(t, 2048, v)
}

func TestConfigStoreReloadListeners(t *testing.T) {
	cs := NewConfigStore()

	calls := 0
	cs.OnReload(func() { calls++ })
	cs.OnReload(func() { calls++ })

	// Listeners run synchronously, so the count is visible immediately.
	cs.SetConfig(map[string]any{"a": 1})
	require.Equal(t, 2, calls)

	cs.SetConfig(map[string]any{"b": 2})
	require.Equal(t, 4, calls)
}

func TestConfigStoreLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evpump.yaml")
	require.NoError(t, os.WriteFile(path, []byte("queue:\n  capacity: 512\nname: viewer\n"), 0o644))

	cs := NewConfigStore()
	reloads := 0
	cs.OnReload(func() { reloads++ })

	require.NoError(t, cs.LoadFile(path))
	require.Equal(t, 1, reloads)

	v, ok := cs.Get("name")
	require.True(t, ok)
	require.Equal(t, "viewer", v)

	nested, ok := cs.Get("queue")
	require.True(t, ok)
	require.Equal(t, map[string]any{"capacity": 512}, nested)
}

func TestConfigStoreLoadFileErrors(t *testing.T) {
	cs := NewConfigStore()
	require.Error(t, cs.LoadFile(filepath.Join(t.TempDir(), "nope.yaml")))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(":\n\t- not yaml"), 0o644))
	require.Error(t, cs.LoadFile(bad))
}

func TestMetricsRegistry(t *testing.T) {
	mr := NewMetricsRegistry()
	require.True(t, mr.Updated().IsZero())

	mr.Set("queue.depth", 7)
	mr.Add("events.pushed", 3)
	mr.Add("events.pushed", 5)

	snap := mr.GetSnapshot()
	require.Equal(t, 7, snap["queue.depth"])
	require.Equal(t, uint64(8), snap["events.pushed"])
	require.False(t, mr.Updated().IsZero())

	// Add over a non-counter value resets it to the delta.
	mr.Add("queue.depth", 2)
	snap = mr.GetSnapshot()
	require.Equal(t, uint64(2), snap["queue.depth"])
}

func TestDebugProbes(t *testing.T) {
	dp := NewDebugProbes()
	dp.RegisterProbe("answer", func() any { return 42 })

	state := dp.DumpState()
	require.Equal(t, 42, state["answer"])

	RegisterRuntimeProbes(dp)
	state = dp.DumpState()
	require.Contains(t, state, "runtime.goroutines")
	require.Contains(t, state, "runtime.cpus")
}
