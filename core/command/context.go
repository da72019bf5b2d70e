package command

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/botkit-go/botkit/core/event"
)

// Context is the per-invocation record: which command is running and with
// what arguments. It implements context.Context by delegating to the parent
// it was created from, so handlers receive one value for both cancellation
// and invocation state.
//
// A Context serves one logical invocation at a time and is not safe for
// concurrent invokes; concurrent invocations each get their own Context.
type Context struct {
	parent context.Context
	id     string
	events event.Emitter
	logger *slog.Logger

	command *Command
	args    []any
	kwargs  map[string]any
}

// ContextOption configures a Context at construction time.
type ContextOption func(*Context)

// WithEmitter wires the event-dispatch collaborator that receives the
// invocation lifecycle events. Defaults to event.Discard.
func WithEmitter(e event.Emitter) ContextOption {
	return func(ictx *Context) {
		if e != nil {
			ictx.events = e
		}
	}
}

// WithLogger sets the logger used for emit failures. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) ContextOption {
	return func(ictx *Context) {
		if logger != nil {
			ictx.logger = logger
		}
	}
}

// NewContext creates a fresh invocation context on top of parent.
//
// Example:
//
//	ictx := command.NewContext(ctx, command.WithEmitter(bus))
//	err := ictx.Invoke(ping, []any{1}, map[string]any{"x": "a"})
func NewContext(parent context.Context, opts ...ContextOption) *Context {
	if parent == nil {
		parent = context.Background()
	}
	ictx := &Context{
		parent: parent,
		id:     uuid.New().String(),
		events: event.Discard,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(ictx)
	}
	return ictx
}

// Deadline implements context.Context by delegating to the parent.
func (ictx *Context) Deadline() (time.Time, bool) { return ictx.parent.Deadline() }

// Done implements context.Context by delegating to the parent.
func (ictx *Context) Done() <-chan struct{} { return ictx.parent.Done() }

// Err implements context.Context by delegating to the parent.
func (ictx *Context) Err() error { return ictx.parent.Err() }

// Value implements context.Context by delegating to the parent.
func (ictx *Context) Value(key any) any { return ictx.parent.Value(key) }

// ID returns the unique identifier of this invocation context.
func (ictx *Context) ID() string { return ictx.id }

// Command returns the command most recently invoked through this context,
// or nil before the first invocation.
func (ictx *Context) Command() *Command { return ictx.command }

// Args returns the positional arguments of the most recent invocation.
func (ictx *Context) Args() []any { return ictx.args }

// Kwargs returns the keyword arguments of the most recent invocation.
func (ictx *Context) Kwargs() map[string]any { return ictx.kwargs }

// Invoke records the command and arguments on the context, then runs the
// command's full lifecycle pipeline. No permission or cooldown gating happens
// here; that belongs to the caller layer.
func (ictx *Context) Invoke(c *Command, args []any, kwargs map[string]any) error {
	if c == nil {
		return ErrNilCommand
	}
	ictx.command = c
	ictx.args = args
	ictx.kwargs = kwargs
	return c.Invoke(ictx, args, kwargs)
}

// Reinvoke re-runs the most recent invocation with the same arguments.
// The pipeline runs again in full, lifecycle events included; this is a
// replay, not a resume. Fails with ErrNoInvocation if nothing was invoked
// through this context yet.
func (ictx *Context) Reinvoke() error {
	if ictx.command == nil {
		return ErrNoInvocation
	}
	return ictx.Invoke(ictx.command, ictx.args, ictx.kwargs)
}

// emit forwards a lifecycle event to the context's emitter. Emission is
// fire-and-forget: a bus refusal is logged, never propagated.
func (ictx *Context) emit(name string, args ...any) {
	if err := ictx.events.Emit(ictx, name, args...); err != nil {
		ictx.logger.ErrorContext(ictx, "lifecycle event dropped",
			slog.String("event", name),
			slog.String("invocation_id", ictx.id),
			slog.String("error", err.Error()))
	}
}

// MarshalJSON renders an observability snapshot of the invocation: its ID,
// command name, and arguments. Async buses rely on this to carry contexts
// across serialization boundaries.
func (ictx *Context) MarshalJSON() ([]byte, error) {
	snapshot := struct {
		ID      string         `json:"id"`
		Command string         `json:"command,omitempty"`
		Args    []any          `json:"args,omitempty"`
		Kwargs  map[string]any `json:"kwargs,omitempty"`
	}{
		ID:     ictx.id,
		Args:   ictx.args,
		Kwargs: ictx.kwargs,
	}
	if ictx.command != nil {
		snapshot.Command = ictx.command.Name()
	}
	return json.Marshal(snapshot)
}
