package botkit

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Message is the minimal view of a platform message the prefix layer needs.
// Platform adapters wrap their own message types to satisfy it.
type Message interface {
	Content() string
}

// PrefixFunc computes the prefixes valid for a particular message. The
// context carries cancellation for resolvers that consult external state.
type PrefixFunc func(ctx context.Context, bot *Bot, msg Message) ([]string, error)

// Prefixes resolves the prefixes to try against msg: the resolver's result
// when one is configured, the static list otherwise. A resolver returning an
// empty list is a configuration error.
func (b *Bot) Prefixes(ctx context.Context, msg Message) ([]string, error) {
	if b.prefixFn == nil {
		return slices.Clone(b.prefixes), nil
	}

	prefixes, err := b.prefixFn(ctx, b, msg)
	if err != nil {
		return nil, fmt.Errorf("resolve prefixes: %w", err)
	}
	if len(prefixes) == 0 {
		return nil, ErrNoPrefix
	}
	for _, p := range prefixes {
		if p == "" {
			return nil, ErrEmptyPrefix
		}
	}
	return prefixes, nil
}

// StripPrefix finds the first prefix that content starts with and returns
// the remainder, the matched prefix, and whether any matched. On no match
// the content comes back unchanged.
func StripPrefix(content string, prefixes []string) (rest string, prefix string, ok bool) {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(content, p) {
			return content[len(p):], p, true
		}
	}
	return content, "", false
}
