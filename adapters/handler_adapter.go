// File: adapters/handler_adapter.go
// Package adapters
//
// HandlerFunc glue and extensible middleware for event handlers.

package adapters

import (
	"log"

	"github.com/evpump/evpump/api"
)

// HandlerFunc converts a function into an api.Handler.
type HandlerFunc func(ev api.Event) error

// Handle calls the underlying function.
func (f HandlerFunc) Handle(ev api.Event) error {
	return f(ev)
}

// Middleware wraps a handler with cross-cutting behavior.
type Middleware func(api.Handler) api.Handler

// MiddlewareHandler applies a middleware chain around a base handler.
// Middleware added first sits outermost.
type MiddlewareHandler struct {
	base  api.Handler
	chain []Middleware
}

// NewMiddlewareHandler creates a MiddlewareHandler around base.
func NewMiddlewareHandler(base api.Handler) *MiddlewareHandler {
	return &MiddlewareHandler{base: base}
}

// Use appends mw to the chain.
func (m *MiddlewareHandler) Use(mw Middleware) *MiddlewareHandler {
	m.chain = append(m.chain, mw)
	return m
}

// Handle runs ev through the chain into the base handler.
func (m *MiddlewareHandler) Handle(ev api.Event) error {
	h := m.base
	for i := len(m.chain) - 1; i >= 0; i-- {
		h = m.chain[i](h)
	}
	return h.Handle(ev)
}

// LoggingMiddleware logs each event's tag and any handler error.
func LoggingMiddleware(next api.Handler) api.Handler {
	return HandlerFunc(func(ev api.Event) error {
		log.Printf("[handler] event 0x%x (%T)", uint32(ev.EventType()), ev)
		err := next.Handle(ev)
		if err != nil {
			log.Printf("[handler] error: %v", err)
		}
		return err
	})
}

// RecoveryMiddleware recovers from panics in the handler.
func RecoveryMiddleware(next api.Handler) api.Handler {
	return HandlerFunc(func(ev api.Event) error {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[handler] panic recovered: %v", r)
			}
		}()
		return next.Handle(ev)
	})
}
