package botkit

import "github.com/botkit-go/botkit/core/config"

// Config is the environment-driven subset of bot construction. Hosts that
// need an event bus or logger layer those on as extra options.
type Config struct {
	Prefixes        []string `env:"BOT_PREFIXES" envDefault:"!"`
	CaseInsensitive bool     `env:"BOT_CASE_INSENSITIVE" envDefault:"false"`
}

// NewFromEnv builds a bot from BOT_* environment variables, applying any
// extra options on top.
func NewFromEnv(opts ...Option) (*Bot, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	base := []Option{WithPrefix(cfg.Prefixes...)}
	if cfg.CaseInsensitive {
		base = append(base, WithCaseInsensitive())
	}
	return New(append(base, opts...)...)
}
