// Package logger builds structured slog loggers with environment presets and
// provides attribute helpers for consistent record shapes across the toolkit.
//
// # Basic Usage
//
//	import "github.com/botkit-go/botkit/core/logger"
//
//	// Development: text format, debug level.
//	log := logger.New(logger.WithDevelopment("mybot"))
//
//	// Production: JSON format, info level.
//	log := logger.New(
//		logger.WithProduction("mybot"),
//		logger.WithAttr(slog.String("version", "1.2.3")),
//	)
//
//	log.Info("command dispatched",
//		logger.Component("dispatcher"),
//		logger.Command("ping"),
//	)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, so they can be
// passed unconditionally:
//
//	log.Error("invocation failed",
//		logger.Error(err), // safe when err is nil
//		logger.Command(cmd.Name()),
//		logger.InvocationID(ctx.ID()),
//		logger.Duration(time.Since(start)),
//	)
//
// # Testing
//
// Point output at a buffer to assert on records:
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
//	log.Info("hello", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger
