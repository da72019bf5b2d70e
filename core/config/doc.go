// Package config provides type-safe environment variable loading with
// per-type caching built on Go generics.
//
// Configuration is declared as plain structs with `env` tags and parsed by
// the caarlos0/env library. A .env file in the working directory is loaded
// into the process environment automatically on first use.
//
//	import "github.com/botkit-go/botkit/core/config"
//
//	type RedisConfig struct {
//		ConnectionURL string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
//		RetryAttempts int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
//	}
//
//	var cfg RedisConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure, useful during startup:
//	config.MustLoad(&cfg)
//
// # Caching
//
// Each configuration type is parsed exactly once per process. Subsequent
// Load calls for the same type return the cached value, so two loads of the
// same struct type always agree even if the environment changed in between.
// Distinct types are cached independently.
package config
