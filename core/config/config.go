package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"

	// Load .env files into the process environment before any config is parsed.
	_ "github.com/joho/godotenv/autoload"
)

var (
	mu    sync.Mutex
	cache = make(map[reflect.Type]any)
)

// Load parses environment variables into cfg using its `env` struct tags.
// Each configuration type is parsed at most once per process; later calls
// for the same type receive the cached value, so partial environment changes
// after startup are not observed.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	t := reflect.TypeOf(*cfg)

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[t]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrParseFailed, t.String(), err)
	}

	cache[t] = *cfg
	return nil
}

// MustLoad is Load for application startup paths where a missing or invalid
// environment is unrecoverable. It panics on failure.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
