// Package event provides the event-dispatch side of the command runtime:
// named lifecycle events fanned out to subscribers through pluggable buses.
//
// The producer contract is the Emitter interface. The invocation pipeline
// emits fire-and-forget: a bus error means the event could not be accepted
// for delivery, and the producer at most logs it.
//
// # Buses
//
// Two in-process buses ship with the package:
//
//   - SyncBus delivers inline in the caller's goroutine with deterministic
//     ordering and aggregated subscriber errors. Best for tests and simple
//     applications.
//   - ChannelBus decouples emitters from subscribers with a buffered channel
//     and worker goroutines. The default single worker preserves emission
//     order; call Stop for graceful shutdown.
//
// An external bus publishing to Redis lives in integration/redis.
//
// # Quick Start
//
//	import "github.com/botkit-go/botkit/core/event"
//
//	bus := event.NewSyncBus()
//	bus.Subscribe("command_error", func(ctx context.Context, evt event.Event) error {
//	    // evt.Args carries the invocation context and the failure
//	    return nil
//	})
//
// Subscribers must be registered before concurrent emission begins; both
// buses guard their registries, but delivery observes whatever set of
// subscribers is current at emit time.
package event
