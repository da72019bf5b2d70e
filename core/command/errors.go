package command

import "errors"

var (
	// ErrEmptyName is returned when constructing a command without a name.
	ErrEmptyName = errors.New("command name is empty")

	// ErrNilHandler is returned when a command has no handler to invoke.
	ErrNilHandler = errors.New("command has no handler")

	// ErrInvalidAlias is returned when an alias is empty, duplicates the
	// command name, or duplicates another alias.
	ErrInvalidAlias = errors.New("invalid command alias")

	// ErrNilCommand is returned when a nil command is passed where a
	// registered command is required.
	ErrNilCommand = errors.New("command is nil")

	// ErrNilContext is returned when invoking a command without an
	// invocation context.
	ErrNilContext = errors.New("invocation context is nil")

	// ErrNoInvocation is returned by Reinvoke when the context has never
	// invoked a command.
	ErrNoInvocation = errors.New("no prior invocation to repeat")

	// ErrKeyConflict is returned when registering a command whose name or
	// alias is already owned by a different command in the sink.
	ErrKeyConflict = errors.New("key already registered to a different command")
)
