package config

import "errors"

var (
	// ErrNilConfig is returned when Load receives a nil destination.
	ErrNilConfig = errors.New("config: nil destination")
	// ErrParseFailed wraps environment parsing failures, including missing
	// required variables and values that do not fit the target field type.
	ErrParseFailed = errors.New("config: failed to parse environment")
)
