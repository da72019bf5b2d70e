package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_CaseFolding(t *testing.T) {
	t.Parallel()

	tbl := newTable(true)
	c := &Command{name: "ping"}

	tbl.set("Ping", c)
	assert.Same(t, c, tbl.get("ping"))
	assert.Same(t, c, tbl.get("PING"))
	assert.True(t, tbl.has("pInG"))
	assert.Equal(t, 1, tbl.len())

	// Folding goes beyond ASCII: final sigma folds to sigma.
	greek := &Command{name: "σοφος"}
	tbl.set("ΣΟΦΟΣ", greek)
	assert.Same(t, greek, tbl.get("σοφος"))
}

func TestTable_LastWriteWinsKeepsPosition(t *testing.T) {
	t.Parallel()

	tbl := newTable(true)
	first := &Command{name: "first"}
	second := &Command{name: "second"}

	tbl.set("cmd", first)
	tbl.set("other", &Command{name: "other"})
	tbl.set("CMD", second)

	assert.Same(t, second, tbl.get("cmd"))
	assert.Equal(t, []string{"cmd", "other"}, tbl.orderedKeys())
}

func TestTable_CaseSensitiveMode(t *testing.T) {
	t.Parallel()

	tbl := newTable(false)
	lower := &Command{name: "ping"}
	upper := &Command{name: "PING"}

	tbl.set("ping", lower)
	tbl.set("PING", upper)

	assert.Same(t, lower, tbl.get("ping"))
	assert.Same(t, upper, tbl.get("PING"))
	assert.Equal(t, 2, tbl.len())
}

func TestTable_DeleteAndPop(t *testing.T) {
	t.Parallel()

	tbl := newTable(true)
	c := &Command{name: "ping"}
	tbl.set("ping", c)
	tbl.set("pong", &Command{name: "pong"})

	got, ok := tbl.pop("PING")
	require.True(t, ok)
	assert.Same(t, c, got)
	assert.False(t, tbl.has("ping"))
	assert.Equal(t, []string{"pong"}, tbl.orderedKeys())

	_, ok = tbl.pop("ping")
	assert.False(t, ok)
	assert.False(t, tbl.delete("ping"))
	assert.True(t, tbl.delete("pong"))
	assert.Empty(t, tbl.orderedKeys())
}
