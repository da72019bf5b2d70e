package command_test

import (
	"testing"

	"github.com/botkit-go/botkit/core/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_Register(t *testing.T) {
	t.Parallel()

	t.Run("adds one key per name and alias", func(t *testing.T) {
		t.Parallel()

		sink := command.NewSink()
		c := command.MustNew("ping", noopHandler, command.WithAliases("p", "pong"))
		require.NoError(t, sink.Register(c))

		assert.Equal(t, []string{"ping", "p", "pong"}, sink.Names())
		assert.Same(t, c, sink.GetCommand("ping"))
		assert.Same(t, c, sink.GetCommand("p"))
		assert.Same(t, c, sink.GetCommand("pong"))
		assert.Equal(t, 1, sink.Len())
	})

	t.Run("reports conflicts before inserting anything", func(t *testing.T) {
		t.Parallel()

		sink := command.NewSink()
		first := command.MustNew("ping", noopHandler)
		require.NoError(t, sink.Register(first))

		second := command.MustNew("status", noopHandler, command.WithAliases("ping"))
		err := sink.Register(second)
		require.ErrorIs(t, err, command.ErrKeyConflict)

		assert.Nil(t, sink.GetCommand("status"), "a failed register must not leave partial keys")
		assert.Same(t, first, sink.GetCommand("ping"))
	})

	t.Run("re-registering the same command is a no-op", func(t *testing.T) {
		t.Parallel()

		sink := command.NewSink()
		c := command.MustNew("ping", noopHandler, command.WithAliases("p"))
		require.NoError(t, sink.Register(c))
		require.NoError(t, sink.Register(c))

		assert.Equal(t, 1, sink.Len())
		assert.Equal(t, []string{"ping", "p"}, sink.Names())
	})

	t.Run("rejects nil commands", func(t *testing.T) {
		t.Parallel()

		sink := command.NewSink()
		assert.ErrorIs(t, sink.Register(nil), command.ErrNilCommand)
	})

	t.Run("MustRegister panics on conflict", func(t *testing.T) {
		t.Parallel()

		sink := command.NewSink()
		sink.MustRegister(command.MustNew("ping", noopHandler))
		assert.Panics(t, func() {
			sink.MustRegister(command.MustNew("ping", noopHandler))
		})
	})
}

func TestSink_GetCommand(t *testing.T) {
	t.Parallel()

	t.Run("case-sensitive by default", func(t *testing.T) {
		t.Parallel()

		sink := command.NewSink()
		sink.MustRegister(command.MustNew("ping", noopHandler))

		assert.False(t, sink.CaseInsensitive())
		assert.NotNil(t, sink.GetCommand("ping"))
		assert.Nil(t, sink.GetCommand("PING"))
		assert.Nil(t, sink.GetCommand("missing"))
	})

	t.Run("case-insensitive folds every spelling", func(t *testing.T) {
		t.Parallel()

		sink := command.NewSink(command.WithCaseInsensitive())
		c := command.MustNew("ping", noopHandler, command.WithAliases("p"))
		sink.MustRegister(c)

		assert.True(t, sink.CaseInsensitive())
		assert.Same(t, c, sink.GetCommand("PING"))
		assert.Same(t, c, sink.GetCommand("Ping"))
		assert.Same(t, c, sink.GetCommand("p"))
		assert.Same(t, c, sink.GetCommand("P"))
		assert.Len(t, sink.Commands(), 1)
	})

	t.Run("Has honors folding mode", func(t *testing.T) {
		t.Parallel()

		sink := command.NewSink(command.WithCaseInsensitive())
		sink.MustRegister(command.MustNew("ping", noopHandler))
		assert.True(t, sink.Has("PiNg"))
		assert.False(t, sink.Has("pong"))
	})
}

func TestSink_WalkCommands(t *testing.T) {
	t.Parallel()

	t.Run("yields each command once in first-registered order", func(t *testing.T) {
		t.Parallel()

		sink := command.NewSink()
		ping := command.MustNew("ping", noopHandler, command.WithAliases("p"))
		status := command.MustNew("status", noopHandler, command.WithAliases("s", "st"))
		help := command.MustNew("help", noopHandler)
		sink.MustRegister(ping, status, help)

		var got []string
		for c := range sink.WalkCommands() {
			got = append(got, c.Name())
		}
		assert.Equal(t, []string{"ping", "status", "help"}, got)
	})

	t.Run("supports early break", func(t *testing.T) {
		t.Parallel()

		sink := command.NewSink()
		sink.MustRegister(
			command.MustNew("one", noopHandler),
			command.MustNew("two", noopHandler),
		)

		count := 0
		for range sink.WalkCommands() {
			count++
			break
		}
		assert.Equal(t, 1, count)
	})

	t.Run("Commands materializes the walk", func(t *testing.T) {
		t.Parallel()

		sink := command.NewSink()
		ping := command.MustNew("ping", noopHandler, command.WithAliases("p"))
		sink.MustRegister(ping)

		cmds := sink.Commands()
		require.Len(t, cmds, 1)
		assert.Same(t, ping, cmds[0])
	})
}

func TestSink_Remove(t *testing.T) {
	t.Parallel()

	t.Run("drops the name and every alias", func(t *testing.T) {
		t.Parallel()

		sink := command.NewSink()
		c := command.MustNew("ping", noopHandler, command.WithAliases("p", "pong"))
		sink.MustRegister(c)

		removed := sink.Remove("ping")
		assert.Same(t, c, removed)
		assert.Nil(t, sink.GetCommand("ping"))
		assert.Nil(t, sink.GetCommand("p"))
		assert.Nil(t, sink.GetCommand("pong"))
		assert.Equal(t, 0, sink.Len())
	})

	t.Run("works through an alias", func(t *testing.T) {
		t.Parallel()

		sink := command.NewSink()
		c := command.MustNew("ping", noopHandler, command.WithAliases("p"))
		sink.MustRegister(c)

		assert.Same(t, c, sink.Remove("p"))
		assert.Nil(t, sink.GetCommand("ping"))
	})

	t.Run("returns nil for unknown names", func(t *testing.T) {
		t.Parallel()

		sink := command.NewSink()
		assert.Nil(t, sink.Remove("ghost"))
	})
}
