// Package redis provides Redis client initialization with connection
// verification, plus a pub/sub event bus for broadcasting bot lifecycle
// events across processes.
//
// # Connecting
//
// Connect validates the URL, dials with retry, and pings before handing the
// client back:
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
// Both redis:// and rediss:// URL schemes are supported. Healthcheck returns
// a ping-based probe for readiness endpoints.
//
// # Event Bus
//
// Bus satisfies event.Emitter, so it can stand in anywhere the in-process
// buses do — including as a bot's lifecycle emitter:
//
//	bus, err := redis.NewBus(client, "bot:events")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Publish side.
//	_ = bus.Emit(ctx, "command_success", payload)
//
//	// Consumer side, usually another process.
//	err = bus.Listen(ctx, func(ctx context.Context, evt event.Event) error {
//		log.Printf("observed %s", evt.Name)
//		return nil
//	})
//
// Events cross the wire as JSON envelopes, so only JSON-marshalable
// arguments survive the trip.
package redis
