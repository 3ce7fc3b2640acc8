// Package adapters
//
// Control adapter implementing api.Control using control package primitives.

package adapters

import (
	"github.com/evpump/evpump/api"
	"github.com/evpump/evpump/control"
)

// ControlAdapter bundles the configuration store, the metrics
// registry, and the debug probes behind the api.Control interface.
type ControlAdapter struct {
	config  *control.ConfigStore
	metrics *control.MetricsRegistry
	debug   *control.DebugProbes
}

// Compile-time interface check.
var _ api.Control = (*ControlAdapter)(nil)

// NewControlAdapter builds a control plane with runtime probes
// preinstalled.
func NewControlAdapter() *ControlAdapter {
	c := &ControlAdapter{
		config:  control.NewConfigStore(),
		metrics: control.NewMetricsRegistry(),
		debug:   control.NewDebugProbes(),
	}
	control.RegisterRuntimeProbes(c.debug)
	return c
}

// GetConfig returns a snapshot of the current configuration.
func (c *ControlAdapter) GetConfig() map[string]any {
	return c.config.GetSnapshot()
}

// SetConfig merges cfg and notifies reload listeners.
func (c *ControlAdapter) SetConfig(cfg map[string]any) error {
	c.config.SetConfig(cfg)
	return nil
}

// LoadConfigFile merges a YAML config file into the store.
func (c *ControlAdapter) LoadConfigFile(path string) error {
	return c.config.LoadFile(path)
}

// Stats merges current metrics with debug probe output. Probe entries
// are prefixed with "debug." to keep the namespaces apart.
func (c *ControlAdapter) Stats() map[string]any {
	combined := c.metrics.GetSnapshot()
	for name, value := range c.debug.DumpState() {
		combined["debug."+name] = value
	}
	return combined
}

// OnReload registers fn to run after every config change.
func (c *ControlAdapter) OnReload(fn func()) {
	c.config.OnReload(fn)
}

// SetMetric publishes one metric value.
func (c *ControlAdapter) SetMetric(key string, value any) {
	c.metrics.Set(key, value)
}

// RegisterDebugProbe installs a named inspection hook.
func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	c.debug.RegisterProbe(name, fn)
}
