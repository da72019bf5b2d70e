package logger

import (
	"io"
	"log/slog"
	"os"
)

type options struct {
	level  slog.Leveler
	json   bool
	output io.Writer
	attrs  []slog.Attr
	opts   *slog.HandlerOptions
}

// Option configures the logger produced by New.
type Option func(*options)

// WithLevel sets the minimum level the logger records.
func WithLevel(level slog.Leveler) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSONFormatter switches output to JSON, one object per record.
func WithJSONFormatter() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithTextFormatter switches output to the human-readable text format.
func WithTextFormatter() Option {
	return func(o *options) {
		o.json = false
	}
}

// WithOutput redirects log output, e.g. to a buffer in tests.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithAttr attaches attributes to every record the logger emits.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// WithHandlerOptions replaces the slog handler options entirely. The level
// set via WithLevel still applies unless these options carry their own.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(o *options) {
		o.opts = opts
	}
}

// WithDevelopment configures text output at debug level, tagged with the
// application name.
func WithDevelopment(app string) Option {
	return func(o *options) {
		o.json = false
		o.level = slog.LevelDebug
		o.attrs = append(o.attrs, slog.String("app", app))
	}
}

// WithProduction configures JSON output at info level, tagged with the
// application name.
func WithProduction(app string) Option {
	return func(o *options) {
		o.json = true
		o.level = slog.LevelInfo
		o.attrs = append(o.attrs, slog.String("app", app))
	}
}

// New builds a slog.Logger from the given options. Defaults are text format,
// info level, stdout.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := o.opts
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{Level: o.level}
	} else if handlerOpts.Level == nil {
		handlerOpts.Level = o.level
	}

	var handler slog.Handler
	if o.json {
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(o.output, handlerOpts)
	}
	if len(o.attrs) > 0 {
		handler = handler.WithAttrs(o.attrs)
	}

	return slog.New(handler)
}

// SetAsDefault installs log as the process-wide slog default.
func SetAsDefault(log *slog.Logger) {
	slog.SetDefault(log)
}
