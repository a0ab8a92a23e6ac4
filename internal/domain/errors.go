package domain

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEventFull is returned when an event has no remaining capacity.
	ErrEventFull = errors.New("event fully booked")
	// ErrTransient is returned by the booking fault injector to simulate
	// an upstream failure. Callers should suggest a retry.
	ErrTransient = errors.New("transient failure")
)
