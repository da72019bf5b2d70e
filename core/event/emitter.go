package event

import "context"

// Emitter dispatches named events to whoever is listening.
// Implementations decide delivery strategy: inline (SyncBus), buffered
// asynchronous (ChannelBus), or external (e.g. a Redis channel).
//
// Emission is fire-and-forget from the producer's point of view: a returned
// error means the event could not be delivered (buffer full, bus closed),
// never that a listener failed to like it.
type Emitter interface {
	Emit(ctx context.Context, name string, args ...any) error
}

// EmitterFunc adapts a plain function to the Emitter interface.
type EmitterFunc func(ctx context.Context, name string, args ...any) error

// Emit calls the underlying function.
func (f EmitterFunc) Emit(ctx context.Context, name string, args ...any) error {
	return f(ctx, name, args...)
}

// Discard is an Emitter that drops every event.
// It is the default for components constructed without an explicit bus.
var Discard Emitter = EmitterFunc(func(context.Context, string, ...any) error {
	return nil
})
