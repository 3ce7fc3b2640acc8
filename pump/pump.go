// File: pump/pump.go
// Package pump implements the frame-paced cooperative event loop.
// License: Apache-2.0
//
// The pump drains every queued event, invokes an idle hook once, then
// sleeps until an absolute next-wake deadline and repeats. Tracking the
// deadline instead of sleeping a fixed interval keeps the tick rate
// steady when handlers take time; after an overrun the schedule
// realigns to the present rather than bursting to catch up.

package pump

import (
	"sync"
	"time"

	"github.com/evpump/evpump/api"
	"github.com/evpump/evpump/event"
	"github.com/evpump/evpump/queue"
)

// DefaultInterval is the pump tick period unless overridden with
// WithInterval.
const DefaultInterval = 10 * time.Millisecond

// Pump drives a queue on a single goroutine. Run is restartable: each
// call starts a fresh schedule.
type Pump struct {
	q        *queue.Queue
	interval time.Duration
	onIdle   func()

	mu      sync.Mutex
	stopCh  chan struct{}
	running bool
}

// Option configures a Pump at construction.
type Option func(*Pump)

// WithInterval sets the tick period.
func WithInterval(d time.Duration) Option {
	return func(p *Pump) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithIdle registers fn to run once per tick after the queue has been
// drained.
func WithIdle(fn func()) Option {
	return func(p *Pump) { p.onIdle = fn }
}

// New constructs a pump over q.
func New(q *queue.Queue, opts ...Option) *Pump {
	p := &Pump{q: q, interval: DefaultInterval}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run loops until a quit-tagged event is yielded, the queue closes, or
// Stop is called. Every drained event is passed to handler in queue
// order; the quit event itself is delivered before Run returns. Run
// returns nil on quit or Stop and api.ErrQueueClosed when the queue
// closes mid-run. Only one Run may be active at a time; a concurrent
// call fails with api.ErrAlreadyRunning.
//
// Run never spawns goroutines: handler and the idle hook execute on the
// calling goroutine, and the only suspension point is the inter-tick
// sleep.
func (p *Pump) Run(handler func(ev api.Event)) error {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return api.ErrAlreadyRunning
	}
	p.running = true
	p.stopCh = make(chan struct{})
	stop := p.stopCh
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.running = false
		p.stopCh = nil
		p.mu.Unlock()
	}()

	next := time.Now().Add(p.interval)
	for {
		select {
		case <-stop:
			return nil
		default:
		}

		// Drain everything currently queued.
		for {
			ev, ok := p.q.Poll()
			if !ok {
				break
			}
			handler(ev)
			if ev.EventType() == event.TypeQuit {
				return nil
			}
		}
		if p.q.Closed() {
			return api.ErrQueueClosed
		}

		if p.onIdle != nil {
			p.onIdle()
		}

		delay := time.Until(next)
		if delay > 0 {
			select {
			case <-stop:
				return nil
			case <-time.After(delay):
			}
			next = next.Add(p.interval)
		} else {
			// Overran the tick; realign instead of bursting.
			next = time.Now().Add(p.interval)
		}
	}
}

// Stop requests a cooperative stop of the active Run between yields.
// It never interrupts a handler invocation in progress. Stop on an
// idle pump is a no-op.
func (p *Pump) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running && p.stopCh != nil {
		close(p.stopCh)
		p.stopCh = nil
	}
}

// Running reports whether a Run loop is active.
func (p *Pump) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}
