// Package control
//
// Runtime configuration, metrics, and debug introspection layer for the
// event subsystem.
//
// Provides concurrent-safe state handling primitives including:
//   - Immutable snapshot config reads and atomic updates
//   - YAML config file loading merged into the live store
//   - Reload observers notified on config changes
//   - A counter/gauge metrics registry fed by queue stats
//   - Debug hooks and probe registration
package control
