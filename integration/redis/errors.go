package redis

import "errors"

var (
	// ErrEmptyConnectionURL is returned when no connection URL is configured.
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL")
	// ErrFailedToParseConnString is returned for malformed connection URLs.
	ErrFailedToParseConnString = errors.New("redis: failed to parse connection string")
	// ErrNotReady is returned when the server does not answer a ping within
	// the configured retry budget.
	ErrNotReady = errors.New("redis: server not ready")
	// ErrHealthcheckFailed wraps ping failures reported by Healthcheck.
	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
	// ErrNilClient is returned when a bus is constructed without a client.
	ErrNilClient = errors.New("redis: nil client")
	// ErrEmptyChannel is returned when a bus is constructed without a channel name.
	ErrEmptyChannel = errors.New("redis: empty channel name")
)
