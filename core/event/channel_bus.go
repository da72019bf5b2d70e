package event

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultBufferSize is the default buffer size for the channel bus.
	DefaultBufferSize = 100

	// shutdownTimeout bounds how long Stop waits for in-flight deliveries.
	shutdownTimeout = 30 * time.Second
)

// ChannelBus delivers events asynchronously through a buffered channel.
// Emit enqueues and returns immediately; worker goroutines drain the buffer
// and fan each event out to subscribers.
//
// With the default single worker, events are delivered in emission order.
// More workers increase throughput but give up cross-event ordering.
//
// Important: call Stop for graceful shutdown.
//
// Example:
//
//	bus := event.NewChannelBus(
//	    event.WithBufferSize(256),
//	    event.WithChannelLogger(logger),
//	)
//	defer bus.Stop()
//	bus.Subscribe("command_complete", auditHandler)
type ChannelBus struct {
	registry *SyncBus
	ch       chan Event
	logger   *slog.Logger
	workers  int

	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	mu       sync.RWMutex
	closed   bool
	stopOnce sync.Once
}

// ChannelBusOption configures a ChannelBus.
type ChannelBusOption func(*ChannelBus)

// WithBufferSize sets the event buffer size. Default is DefaultBufferSize.
// Emit fails with ErrBufferFull once the buffer is exhausted.
func WithBufferSize(size int) ChannelBusOption {
	return func(b *ChannelBus) {
		if size > 0 {
			b.ch = make(chan Event, size)
		}
	}
}

// WithWorkers sets the number of delivery goroutines. Default is 1,
// which preserves emission order end to end.
func WithWorkers(n int) ChannelBusOption {
	return func(b *ChannelBus) {
		if n > 0 {
			b.workers = n
		}
	}
}

// WithChannelLogger configures structured logging for the bus.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithChannelLogger(logger *slog.Logger) ChannelBusOption {
	return func(b *ChannelBus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewChannelBus creates a channel bus and starts its workers immediately.
func NewChannelBus(opts ...ChannelBusOption) *ChannelBus {
	ctx, cancel := context.WithCancel(context.Background())

	b := &ChannelBus{
		registry: NewSyncBus(),
		ch:       make(chan Event, DefaultBufferSize),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers:  1,
		ctx:      ctx,
		cancel:   cancel,
	}

	for _, opt := range opts {
		opt(b)
	}

	for range b.workers {
		b.wg.Add(1)
		go b.worker()
	}

	return b
}

// Subscribe registers a handler for the given event name.
func (b *ChannelBus) Subscribe(name string, h Handler) {
	b.registry.Subscribe(name, h)
}

// Emit enqueues an event for asynchronous delivery.
// Returns ErrBusClosed after Stop, ErrBufferFull when the buffer is
// exhausted, or the context error if ctx is already done.
//
// Implements the Emitter interface.
func (b *ChannelBus) Emit(ctx context.Context, name string, args ...any) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case b.ch <- New(name, args...):
		return nil
	default:
		return ErrBufferFull
	}
}

// worker drains the buffer and fans events out to subscribers.
// Delivery runs detached from the emitter's context.
func (b *ChannelBus) worker() {
	defer b.wg.Done()

	for {
		select {
		case <-b.ctx.Done():
			return
		case evt, ok := <-b.ch:
			if !ok {
				return
			}
			logDelivery(b.logger, evt, b.registry.deliver(context.Background(), evt))
		}
	}
}

// Stop shuts the bus down: no further events are accepted, buffered events
// are dropped by cancellation, and workers are awaited up to a timeout.
// Safe to call multiple times.
func (b *ChannelBus) Stop() {
	b.stopOnce.Do(func() {
		b.mu.Lock()
		b.closed = true
		b.mu.Unlock()

		b.cancel()
		close(b.ch)

		done := make(chan struct{})
		go func() {
			b.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			b.logger.Info("channel bus stopped")
		case <-time.After(shutdownTimeout):
			b.logger.Warn("channel bus shutdown timeout")
		}
	})
}
