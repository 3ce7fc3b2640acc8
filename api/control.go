// File: api/control.go
// Package api defines the Control interface.
// License: Apache-2.0

package api

// Control is the runtime control plane of an event system: dynamic
// configuration with reload notification, metric publication, and
// debug probes.
type Control interface {
	// GetConfig returns a snapshot of the current configuration.
	GetConfig() map[string]any
	// SetConfig merges cfg into the configuration and notifies
	// reload listeners.
	SetConfig(cfg map[string]any) error
	// LoadConfigFile merges a YAML config file into the configuration.
	LoadConfigFile(path string) error
	// Stats returns current metrics merged with debug probe output.
	Stats() map[string]any
	// SetMetric publishes one metric value.
	SetMetric(key string, value any)
	// OnReload registers fn to run after every config change.
	OnReload(fn func())
	// RegisterDebugProbe installs a named inspection hook exposed
	// through Stats.
	RegisterDebugProbe(name string, fn func() any)
}
