package command

import (
	"fmt"
	"iter"
	"slices"
)

// Sink is a registry of commands. Every command occupies one key per name and
// one per alias, all resolving to the same *Command, so lookups by any
// spelling return the shared instance and enumeration yields each logical
// command exactly once.
//
// A sink is expected to be fully populated before concurrent invocation
// begins; it is read-mostly afterwards and carries no locks of its own.
type Sink struct {
	table           *table
	caseInsensitive bool
}

// SinkOption configures a Sink at construction time.
type SinkOption func(*Sink)

// WithCaseInsensitive makes every key operation case-fold its input, so
// "PING", "Ping", and "ping" address the same entry. The mode is fixed for
// the sink's lifetime.
func WithCaseInsensitive() SinkOption {
	return func(s *Sink) {
		s.caseInsensitive = true
	}
}

// NewSink creates an empty command registry.
//
// Example:
//
//	sink := command.NewSink(command.WithCaseInsensitive())
//	if err := sink.Register(ping); err != nil { ... }
func NewSink(opts ...SinkOption) *Sink {
	s := &Sink{}
	for _, opt := range opts {
		opt(s)
	}
	s.table = newTable(s.caseInsensitive)
	return s
}

// CaseInsensitive reports whether lookups case-fold their keys.
func (s *Sink) CaseInsensitive() bool { return s.caseInsensitive }

// Register inserts commands under their names and every alias. A key already
// owned by a different command fails the whole call with ErrKeyConflict
// before anything is inserted; re-registering the same command is a no-op.
func (s *Sink) Register(cmds ...*Command) error {
	for _, c := range cmds {
		if c == nil {
			return ErrNilCommand
		}
		keys := append([]string{c.Name()}, c.Aliases()...)
		for _, k := range keys {
			if owner := s.table.get(k); owner != nil && owner != c {
				return fmt.Errorf("%w: %q", ErrKeyConflict, k)
			}
		}
		for _, k := range keys {
			s.table.set(k, c)
		}
	}
	return nil
}

// MustRegister is like Register but panics on conflict.
// Intended for startup-time registration.
func (s *Sink) MustRegister(cmds ...*Command) {
	if err := s.Register(cmds...); err != nil {
		panic(err)
	}
}

// GetCommand looks a command up by name or alias, honoring the sink's
// case-folding mode. Returns nil when absent.
func (s *Sink) GetCommand(name string) *Command {
	return s.table.get(name)
}

// Has reports whether name (or alias) is registered.
func (s *Sink) Has(name string) bool {
	return s.table.has(name)
}

// Remove detaches the command registered under name, dropping its name key
// and every alias key. Returns the removed command, or nil if name was not
// registered.
func (s *Sink) Remove(name string) *Command {
	c, ok := s.table.pop(name)
	if !ok {
		return nil
	}
	for _, k := range s.table.orderedKeys() {
		if s.table.get(k) == c {
			s.table.delete(k)
		}
	}
	return c
}

// WalkCommands returns a lazy sequence over the distinct commands this sink
// holds, deduplicated by identity, in first-registered order. The sequence is
// single-use; range over it once.
func (s *Sink) WalkCommands() iter.Seq[*Command] {
	return func(yield func(*Command) bool) {
		seen := make(map[*Command]struct{})
		for _, k := range s.table.orderedKeys() {
			c := s.table.get(k)
			if c == nil {
				continue
			}
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			if !yield(c) {
				return
			}
		}
	}
}

// Commands materializes WalkCommands into a slice.
func (s *Sink) Commands() []*Command {
	return slices.Collect(s.WalkCommands())
}

// Names returns every registered key (names and aliases, normalized) in
// first-registered order.
func (s *Sink) Names() []string {
	return s.table.orderedKeys()
}

// Len returns the number of distinct commands in the sink.
func (s *Sink) Len() int {
	return len(s.Commands())
}
