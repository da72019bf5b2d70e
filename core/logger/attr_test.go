package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/botkit-go/botkit/core/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorAttr(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
}

func TestErrorsAttr(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))

	attr := logger.Errors(errors.New("a"), nil, errors.New("b"))
	require.Equal(t, "errors", attr.Key)

	grouped := attr.Value.Group()
	require.Len(t, grouped, 2)
	assert.Equal(t, "0", grouped[0].Key)
	assert.Equal(t, "2", grouped[1].Key, "positions are preserved across nil gaps")
}

func TestEmptyInputAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Command("").Equal(slog.Attr{}))
	assert.True(t, logger.InvocationID("").Equal(slog.Attr{}))
	assert.True(t, logger.ID("key", nil).Equal(slog.Attr{}))
}

func TestValueAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.String("component", "dispatcher"), logger.Component("dispatcher"))
	assert.Equal(t, slog.String("event", "command_error"), logger.Event("command_error"))
	assert.Equal(t, slog.String("command", "ping"), logger.Command("ping"))
	assert.Equal(t, slog.Duration("duration", time.Second), logger.Duration(time.Second))
	assert.Equal(t, slog.Int("retry_count", 3), logger.RetryCount(3))
	assert.Equal(t, slog.Int("handlers", 2), logger.Count("handlers", 2))
}
