package botkit

import "errors"

var (
	// ErrNoPrefix is returned when a bot is built without any prefix source.
	ErrNoPrefix = errors.New("botkit: no prefix configured")
	// ErrEmptyPrefix is returned when a static prefix is the empty string.
	ErrEmptyPrefix = errors.New("botkit: empty prefix")
	// ErrCommandNotFound is returned by Invoke for unknown command names.
	ErrCommandNotFound = errors.New("botkit: command not found")
)
