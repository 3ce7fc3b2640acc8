// File: facade/facade.go
// Unified facade layer for the evpump library.
// License: Apache-2.0
//
// EventSystem aggregates the queue, the pump, and the control plane
// behind a single struct built from one immutable Config. The facade is
// convenience only: every component remains usable on its own.

package facade

import (
	"fmt"
	"time"

	"github.com/evpump/evpump/adapters"
	"github.com/evpump/evpump/affinity"
	"github.com/evpump/evpump/api"
	"github.com/evpump/evpump/pump"
	"github.com/evpump/evpump/queue"
)

// Config holds parameters immutable per run.
type Config struct {
	QueueCapacity   int           // Maximum queued records
	PumpInterval    time.Duration // Pump tick period
	EnableMetrics   bool          // Publish queue stats into the control plane
	EnableDebug     bool          // Register debug probes
	MainThreadGuard bool          // Enforce single-owner-thread queue access
	ConfigFile      string        // Optional YAML config merged at startup
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		QueueCapacity: queue.DefaultCapacity,
		PumpInterval:  pump.DefaultInterval,
		EnableMetrics: true,
		EnableDebug:   true,
	}
}

// EventSystem is the main facade type.
type EventSystem struct {
	queue   *queue.Queue
	pump    *pump.Pump
	control *adapters.ControlAdapter
	guard   *affinity.ThreadGuard
	config  *Config
}

// New constructs an EventSystem with the given configuration.
// A nil cfg selects DefaultConfig. When MainThreadGuard is set, the
// calling goroutine becomes the queue's owning thread and is pinned to
// it.
func New(cfg *Config) (*EventSystem, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s := &EventSystem{config: cfg}

	s.control = adapters.NewControlAdapter()
	if cfg.ConfigFile != "" {
		if err := s.control.LoadConfigFile(cfg.ConfigFile); err != nil {
			return nil, fmt.Errorf("facade: %w", err)
		}
	}

	opts := []queue.Option{queue.WithCapacity(cfg.QueueCapacity)}
	if cfg.MainThreadGuard {
		s.guard = affinity.Capture()
		opts = append(opts, queue.WithThreadGuard(s.guard))
	}
	s.queue = queue.New(opts...)
	pumpOpts := []pump.Option{pump.WithInterval(cfg.PumpInterval)}
	if cfg.EnableMetrics {
		pumpOpts = append(pumpOpts, pump.WithIdle(s.PublishStats))
	}
	s.pump = pump.New(s.queue, pumpOpts...)

	if cfg.EnableDebug {
		s.control.RegisterDebugProbe("queue.depth", func() any {
			return s.queue.Len()
		})
		s.control.RegisterDebugProbe("pump.running", func() any {
			return s.pump.Running()
		})
	}
	return s, nil
}

// Queue returns the underlying event queue.
func (s *EventSystem) Queue() *queue.Queue { return s.queue }

// Pump returns the frame-paced loop bound to the queue.
func (s *EventSystem) Pump() *pump.Pump { return s.pump }

// Control returns the control plane interface.
func (s *EventSystem) Control() api.Control { return s.control }

// Run drives the pump with handler. When metrics are enabled queue
// stats are published once per tick from the pump's idle hook.
func (s *EventSystem) Run(handler func(ev api.Event)) error {
	return s.pump.Run(handler)
}

// PublishStats copies the queue's counters into the control metrics.
func (s *EventSystem) PublishStats() {
	st := s.queue.Stats()
	s.control.SetMetric("queue.pushed", st.Pushed)
	s.control.SetMetric("queue.polled", st.Polled)
	s.control.SetMetric("queue.filtered", st.Filtered)
	s.control.SetMetric("queue.dropped", st.Dropped)
	s.control.SetMetric("queue.flushed", st.Flushed)
	s.control.SetMetric("queue.depth", st.Depth)
	s.control.SetMetric("queue.peak_depth", st.PeakDepth)
}

// Close stops the pump and closes the queue.
func (s *EventSystem) Close() error {
	s.pump.Stop()
	return s.queue.Close()
}
