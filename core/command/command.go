package command

import (
	"fmt"
	"slices"
	"strings"
)

// Lifecycle event names emitted by the invocation pipeline.
// Per invocation, EventCommand always comes first and EventCommandComplete
// always comes last; at most one of EventCommandSuccess/EventCommandError
// fires in between (neither fires when an error handler recovers cleanly).
const (
	EventCommand         = "command"
	EventCommandSuccess  = "command_success"
	EventCommandError    = "command_error"
	EventCommandComplete = "command_complete"
)

// Handler executes a command against an invocation context.
// Positional and keyword arguments arrive pre-resolved and opaque; tokenizing
// raw input into them is the caller layer's business. Handlers that need to
// block or suspend should respect ctx, which implements context.Context.
type Handler func(ctx *Context, args []any, kwargs map[string]any) error

// ErrorHandler recovers from a handler failure. Returning nil marks the
// failure fully recovered: no error event fires. Returning a non-nil error
// (the original or a new one) is what the EventCommandError event carries.
type ErrorHandler func(ctx *Context, err error) error

// Command binds a name, aliases, a handler, optional metadata, and an optional
// error handler. Commands are immutable after construction except for the one
// OnError attachment, and are shared by reference: a sink registers the same
// *Command under its name and every alias, and enumeration deduplicates by
// that pointer identity.
type Command struct {
	name         string
	aliases      []string
	brief        string
	description  string
	meta         map[string]any
	handler      Handler
	errorHandler ErrorHandler
}

// Option configures a Command at construction time.
type Option func(*Command)

// WithAliases sets alternative names the command is registered under.
func WithAliases(aliases ...string) Option {
	return func(c *Command) {
		c.aliases = slices.Clone(aliases)
	}
}

// WithBrief sets the short help line for the command.
func WithBrief(brief string) Option {
	return func(c *Command) {
		c.brief = brief
	}
}

// WithDescription sets the long-form description for the command.
func WithDescription(description string) Option {
	return func(c *Command) {
		c.description = description
	}
}

// WithMeta attaches an opaque metadata entry. The runtime never interprets
// metadata; it exists for help renderers and platform adapters.
func WithMeta(key string, value any) Option {
	return func(c *Command) {
		c.meta[key] = value
	}
}

// New creates a Command with a fixed handler.
//
// Example:
//
//	ping, err := command.New("ping", pongHandler,
//	    command.WithAliases("p"),
//	    command.WithBrief("replies with pong"),
//	)
func New(name string, handler Handler, opts ...Option) (*Command, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if handler == nil {
		return nil, fmt.Errorf("%w: %q", ErrNilHandler, name)
	}

	c := &Command{
		name:    name,
		handler: handler,
		meta:    make(map[string]any),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := validateAliases(c.name, c.aliases); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNew is like New but panics on invalid input.
// Intended for package-level command declarations.
func MustNew(name string, handler Handler, opts ...Option) *Command {
	c, err := New(name, handler, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func validateAliases(name string, aliases []string) error {
	seen := make(map[string]struct{}, len(aliases))
	for _, a := range aliases {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("%w: empty alias on %q", ErrInvalidAlias, name)
		}
		if a == name {
			return fmt.Errorf("%w: alias %q duplicates the command name", ErrInvalidAlias, a)
		}
		if _, dup := seen[a]; dup {
			return fmt.Errorf("%w: alias %q listed twice", ErrInvalidAlias, a)
		}
		seen[a] = struct{}{}
	}
	return nil
}

// Name returns the primary name of the command.
func (c *Command) Name() string { return c.name }

// Aliases returns a copy of the command's aliases.
func (c *Command) Aliases() []string { return slices.Clone(c.aliases) }

// Brief returns the short help line, if any.
func (c *Command) Brief() string { return c.brief }

// Description returns the long-form description, if any.
func (c *Command) Description() string { return c.description }

// Meta returns the metadata entry for key and whether it exists.
func (c *Command) Meta(key string) (any, bool) {
	v, ok := c.meta[key]
	return v, ok
}

// OnError attaches the command's error handler. Calling it again replaces the
// previous handler; the last registration wins. Attach before invocations
// begin: the field is not guarded against concurrent invokes.
func (c *Command) OnError(fn ErrorHandler) {
	c.errorHandler = fn
}

// Invoke runs the command through the full lifecycle against ictx:
//
//  1. EventCommand is emitted, unconditionally, before the handler runs.
//  2. The handler runs with the given arguments; a panic counts as a failure.
//  3. On success, EventCommandSuccess is emitted.
//  4. On failure, the error handler (if attached) runs. Returning nil
//     recovers the failure silently; a non-nil return (or no error handler)
//     emits EventCommandError carrying the newest error.
//  5. EventCommandComplete is emitted last, whatever branch was taken.
//
// Handler and error-handler failures never escape: they are routed through
// the event system. The returned error reports only pipeline misuse (nil
// context, command without a handler).
func (c *Command) Invoke(ictx *Context, args []any, kwargs map[string]any) error {
	if ictx == nil {
		return ErrNilContext
	}
	if c.handler == nil {
		return fmt.Errorf("%w: %q", ErrNilHandler, c.name)
	}

	defer ictx.emit(EventCommandComplete, ictx)
	ictx.emit(EventCommand, ictx)

	err := safeCall(func() error { return c.handler(ictx, args, kwargs) })
	if err == nil {
		ictx.emit(EventCommandSuccess, ictx)
		return nil
	}

	if eh := c.errorHandler; eh != nil {
		next := safeCall(func() error { return eh(ictx, err) })
		if next == nil {
			// Fully recovered: neither a success nor an error event.
			return nil
		}
		err = next
	}

	ictx.emit(EventCommandError, ictx, err)
	return nil
}
