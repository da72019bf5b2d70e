// Package command implements the command-dispatch core: a registry mapping
// names and aliases to shared command instances, and an invocation pipeline
// that isolates handler failures and reports every transition through
// lifecycle events.
//
// # Core Concepts
//
// A Command binds a name, aliases, a handler, and optional metadata. A Sink
// registers commands under every spelling — one key per name, one per alias,
// all resolving to the same *Command — and enumerates the distinct set in
// first-registered order. A Context is the mutable per-invocation record; it
// implements context.Context so handlers get cancellation and invocation
// state in one value.
//
// # Quick Start
//
//	import "github.com/botkit-go/botkit/core/command"
//
//	ping := command.MustNew("ping", func(ctx *command.Context, args []any, kwargs map[string]any) error {
//	    fmt.Println("pong")
//	    return nil
//	}, command.WithAliases("p"))
//
//	sink := command.NewSink(command.WithCaseInsensitive())
//	sink.MustRegister(ping)
//
//	ictx := command.NewContext(ctx, command.WithEmitter(bus))
//	_ = ictx.Invoke(sink.GetCommand("PING"), nil, nil)
//
// # Invocation Lifecycle
//
// Invoke emits EventCommand, runs the handler, then emits exactly one of
// EventCommandSuccess or EventCommandError — or neither, when an attached
// error handler recovers the failure — and always finishes with
// EventCommandComplete. Handler panics are contained and follow the failure
// branch. Invoke never returns a handler's error to its caller; only pipeline
// misuse (nil context, command without a handler) surfaces directly.
//
// # Concurrency
//
// Any number of invocations may run concurrently, each on its own Context.
// The registry is expected to be fully populated before concurrent dispatch
// begins; registration during live traffic is not guarded.
package command
