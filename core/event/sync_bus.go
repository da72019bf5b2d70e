package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Handler processes a single delivered event.
type Handler func(ctx context.Context, evt Event) error

// SyncBus delivers events to subscribers inline, in the caller's goroutine.
// Subscribers for one event name run in subscription order; a failing or
// panicking subscriber never prevents the remaining ones from running.
//
// Characteristics:
//   - Direct function call (no goroutines, no channels)
//   - Deterministic delivery order
//   - Aggregated subscriber errors via errors.Join
//
// Use cases:
//   - Testing (deterministic execution)
//   - Single-process applications
//
// Example:
//
//	bus := event.NewSyncBus()
//	bus.Subscribe("command_error", func(ctx context.Context, evt event.Event) error {
//	    logger.Error("command failed", "args", evt.Args)
//	    return nil
//	})
type SyncBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewSyncBus creates an empty synchronous bus.
func NewSyncBus() *SyncBus {
	return &SyncBus{
		handlers: make(map[string][]Handler),
	}
}

// Subscribe registers a handler for the given event name.
// Multiple handlers per name are allowed and run in subscription order.
func (b *SyncBus) Subscribe(name string, h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

// Emit builds an Event and delivers it to every subscriber of name.
// Returns the subscribers' errors joined; an event with no subscribers
// is silently dropped.
//
// Implements the Emitter interface.
func (b *SyncBus) Emit(ctx context.Context, name string, args ...any) error {
	return b.deliver(ctx, New(name, args...))
}

// deliver runs all handlers for evt.Name with panic recovery.
func (b *SyncBus) deliver(ctx context.Context, evt Event) error {
	b.mu.RLock()
	handlers := b.handlers[evt.Name]
	b.mu.RUnlock()

	var errs []error
	for i, h := range handlers {
		if err := safeHandle(h, ctx, evt); err != nil {
			errs = append(errs, fmt.Errorf("handler %d for %q failed: %w", i, evt.Name, err))
		}
	}
	return errors.Join(errs...)
}

// safeHandle executes a handler with panic recovery.
// A panicking handler is reported as an error, giving every bus a single
// point of panic containment.
func safeHandle(h Handler, ctx context.Context, evt Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("event handler panicked: %v", r)
		}
	}()
	return h(ctx, evt)
}

// logDelivery logs a failed delivery. Shared by async buses that cannot
// return errors to the emitter.
func logDelivery(logger *slog.Logger, evt Event, err error) {
	if err == nil {
		return
	}
	logger.Error("event delivery failed",
		slog.String("event", evt.Name),
		slog.String("event_id", evt.ID),
		slog.String("error", err.Error()))
}
