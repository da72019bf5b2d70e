package event

import "errors"

var (
	// ErrBusClosed is returned when emitting to a bus that has been stopped.
	ErrBusClosed = errors.New("event bus is closed")

	// ErrBufferFull is returned when an async bus cannot accept more events.
	ErrBufferFull = errors.New("event buffer is full")
)
