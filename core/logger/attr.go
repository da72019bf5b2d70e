package logger

import (
	"log/slog"
	"runtime"
	"strconv"
	"time"
)

// Attribute helpers return the zero slog.Attr when given nothing useful,
// so call sites never need their own nil checks.

// Group nests attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records a single error under the key "error". Nil yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups non-nil errors under the key "errors", keyed by their
// original position so order survives.
func Errors(errs ...error) slog.Attr {
	count := 0
	for _, err := range errs {
		if err != nil {
			count++
		}
	}
	if count == 0 {
		return slog.Attr{}
	}

	as := make([]slog.Attr, 0, count)
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed records the time passed since start.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// Component names the subsystem producing the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names a lifecycle event, e.g. "command_error".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Command records the command name a record relates to.
func Command(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("command", name)
}

// InvocationID records the per-invocation identifier.
func InvocationID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("invocation_id", id)
}

// ID records a generic identifier under a custom key.
func ID(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}

// Count records a generic counter.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// RetryCount records how many attempts an operation has made.
func RetryCount(count int) slog.Attr {
	return slog.Int("retry_count", count)
}

// Stack captures the current goroutine's stack trace.
func Stack() slog.Attr {
	const size = 64 << 10
	buf := make([]byte, size)
	buf = buf[:runtime.Stack(buf, false)]
	return slog.String("stack", string(buf))
}
