package botkit

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/botkit-go/botkit/core/command"
	"github.com/botkit-go/botkit/core/event"
)

// Bot is the composition root: a command registry, a prefix resolver, a
// lifecycle event emitter, and a logger, bundled for a platform adapter to
// drive. Configure the registry before dispatching concurrently; the
// registry itself is not guarded.
type Bot struct {
	sink     *command.Sink
	prefixes []string
	prefixFn PrefixFunc
	events   event.Emitter
	logger   *slog.Logger
}

type options struct {
	prefixes        []string
	prefixFn        PrefixFunc
	caseInsensitive bool
	events          event.Emitter
	logger          *slog.Logger
}

// Option configures a Bot during construction.
type Option func(*options)

// WithPrefix sets the static prefixes recognized in message content. Order
// matters: StripPrefix tries them first to last.
func WithPrefix(prefixes ...string) Option {
	return func(o *options) {
		o.prefixes = append(o.prefixes, prefixes...)
	}
}

// WithPrefixFunc sets a resolver that computes prefixes per message, e.g.
// from per-guild settings. It takes precedence over WithPrefix.
func WithPrefixFunc(fn PrefixFunc) Option {
	return func(o *options) {
		o.prefixFn = fn
	}
}

// WithCaseInsensitive makes command lookup fold case.
func WithCaseInsensitive() Option {
	return func(o *options) {
		o.caseInsensitive = true
	}
}

// WithEventBus sets the emitter that receives lifecycle events. Defaults to
// event.Discard.
func WithEventBus(bus event.Emitter) Option {
	return func(o *options) {
		if bus != nil {
			o.events = bus
		}
	}
}

// WithLogger sets the logger wired into invocation contexts.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

// New builds a Bot. At least one static prefix or a prefix resolver is
// required; static prefixes must be non-empty strings.
func New(opts ...Option) (*Bot, error) {
	o := &options{
		events: event.Discard,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if len(o.prefixes) == 0 && o.prefixFn == nil {
		return nil, ErrNoPrefix
	}
	for _, p := range o.prefixes {
		if p == "" {
			return nil, ErrEmptyPrefix
		}
	}

	var sinkOpts []command.SinkOption
	if o.caseInsensitive {
		sinkOpts = append(sinkOpts, command.WithCaseInsensitive())
	}

	return &Bot{
		sink:     command.NewSink(sinkOpts...),
		prefixes: o.prefixes,
		prefixFn: o.prefixFn,
		events:   o.events,
		logger:   o.logger,
	}, nil
}

// MustNew is New that panics on invalid configuration.
func MustNew(opts ...Option) *Bot {
	b, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Register adds commands to the registry under their names and aliases.
func (b *Bot) Register(cmds ...*command.Command) error {
	return b.sink.Register(cmds...)
}

// MustRegister is Register that panics on conflict, for static setup.
func (b *Bot) MustRegister(cmds ...*command.Command) {
	b.sink.MustRegister(cmds...)
}

// GetCommand resolves a name or alias; nil when absent.
func (b *Bot) GetCommand(name string) *command.Command {
	return b.sink.GetCommand(name)
}

// Has reports whether a name or alias resolves to a command.
func (b *Bot) Has(name string) bool {
	return b.sink.Has(name)
}

// Remove detaches a command and all of its registry keys, returning it, or
// nil when the name is unknown.
func (b *Bot) Remove(name string) *command.Command {
	return b.sink.Remove(name)
}

// WalkCommands yields each distinct command once, in registration order.
func (b *Bot) WalkCommands() iter.Seq[*command.Command] {
	return b.sink.WalkCommands()
}

// Commands returns the distinct registered commands in registration order.
func (b *Bot) Commands() []*command.Command {
	return b.sink.Commands()
}

// NewContext builds an invocation context pre-wired with the bot's event
// emitter and logger.
func (b *Bot) NewContext(ctx context.Context) *command.Context {
	return command.NewContext(ctx,
		command.WithEmitter(b.events),
		command.WithLogger(b.logger),
	)
}

// Invoke resolves name and runs the full invocation pipeline on a fresh
// context, which is returned for inspection. Handler failures are reported
// through lifecycle events, not the returned error; only resolution and
// pipeline misuse surface here.
func (b *Bot) Invoke(ctx context.Context, name string, args []any, kwargs map[string]any) (*command.Context, error) {
	cmd := b.sink.GetCommand(name)
	if cmd == nil {
		return nil, fmt.Errorf("%w: %q", ErrCommandNotFound, name)
	}

	ictx := b.NewContext(ctx)
	if err := ictx.Invoke(cmd, args, kwargs); err != nil {
		return nil, err
	}
	return ictx, nil
}
