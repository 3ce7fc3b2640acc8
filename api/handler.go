// File: api/handler.go
// Package api defines Handler interface.
// License: Apache-2.0

package api

// Handler processes decoded events.
type Handler interface {
	Handle(ev Event) error
}
