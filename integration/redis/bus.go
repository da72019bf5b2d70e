package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/botkit-go/botkit/core/event"
	"github.com/botkit-go/botkit/core/logger"
)

// Bus publishes events to a Redis pub/sub channel as JSON envelopes,
// letting separate processes observe one bot's lifecycle events. It
// implements event.Emitter.
type Bus struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithBusLogger sets the logger used for delivery diagnostics.
func WithBusLogger(log *slog.Logger) BusOption {
	return func(b *Bus) {
		if log != nil {
			b.logger = log
		}
	}
}

// NewBus creates a bus that publishes on the given channel.
func NewBus(client *redis.Client, channel string, opts ...BusOption) (*Bus, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if channel == "" {
		return nil, ErrEmptyChannel
	}

	b := &Bus{
		client:  client,
		channel: channel,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Emit publishes the event as a JSON envelope. Arguments that do not
// marshal to JSON fail the emit; lifecycle emitters treat that as a
// dropped event, not a pipeline failure.
func (b *Bus) Emit(ctx context.Context, name string, args ...any) error {
	evt := event.New(name, args...)

	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event %q: %w", name, err)
	}

	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish event %q: %w", name, err)
	}

	b.logger.DebugContext(ctx, "event published",
		logger.Component("redis_bus"),
		logger.Event(name),
		logger.ID("event_id", evt.ID),
	)
	return nil
}

// Listen subscribes to the channel and invokes handler for every decoded
// event until ctx is cancelled. Undecodable payloads and handler errors are
// logged and skipped so one bad message cannot stall the stream.
func (b *Bus) Listen(ctx context.Context, handler event.Handler) error {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	msgs := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}

			var evt event.Event
			if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
				b.logger.WarnContext(ctx, "discarding undecodable event payload",
					logger.Component("redis_bus"),
					logger.Error(err),
				)
				continue
			}

			if err := handler(ctx, evt); err != nil {
				b.logger.ErrorContext(ctx, "event handler failed",
					logger.Component("redis_bus"),
					logger.Event(evt.Name),
					logger.Error(err),
				)
			}
		}
	}
}
