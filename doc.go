// Package botkit is a command-dispatch toolkit for chat bots: a registry
// mapping names and aliases to commands, an invocation pipeline with
// guaranteed lifecycle events, and prefix handling for message-driven
// platforms. It carries no network layer of its own; platform adapters feed
// it message content and receive lifecycle events in return.
//
// # Quick Start
//
//	bot := botkit.MustNew(
//		botkit.WithPrefix("!"),
//		botkit.WithCaseInsensitive(),
//		botkit.WithEventBus(bus),
//	)
//
//	bot.MustRegister(command.MustNew("ping",
//		func(ctx *command.Context, args []any, kwargs map[string]any) error {
//			fmt.Println("pong")
//			return nil
//		},
//		command.WithAliases("p"),
//	))
//
//	// In the platform's message handler:
//	prefixes, _ := bot.Prefixes(ctx, msg)
//	if rest, _, ok := botkit.StripPrefix(msg.Content(), prefixes); ok {
//		name, _, _ := strings.Cut(rest, " ")
//		_, _ = bot.Invoke(ctx, name, nil, nil)
//	}
//
// # Lifecycle Events
//
// Every invocation emits "command" when it starts and "command_complete"
// when it finishes, with exactly one of "command_success" or
// "command_error" in between — or neither, when a command's error handler
// fully recovers the failure. Events flow to the emitter configured with
// WithEventBus; see core/event for in-process buses and integration/redis
// for a cross-process one.
//
// # Packages
//
//   - core/command: Command, Sink, Context, the invocation pipeline
//   - core/event: Emitter, SyncBus, ChannelBus
//   - core/config: cached environment loading
//   - core/logger: slog factories and attribute helpers
//   - integration/redis: client setup and a pub/sub event bus
package botkit
