package command

import (
	"slices"

	"golang.org/x/text/cases"
)

// table is an insertion-ordered key→command mapping with a normalizer applied
// to every key-touching operation. Two keys equal after normalization address
// the same entry: last write wins, any spelling reads it back. The entry keeps
// its original position on overwrite, so iteration order stays first-seen.
//
// The normalizer is fixed at construction: Unicode case folding for
// case-insensitive sinks, identity otherwise.
type table struct {
	normalize func(string) string
	keys      []string
	items     map[string]*Command
}

func newTable(caseInsensitive bool) *table {
	normalize := func(k string) string { return k }
	if caseInsensitive {
		normalize = foldKey
	}
	return &table{
		normalize: normalize,
		items:     make(map[string]*Command),
	}
}

// foldKey applies Unicode case folding. A fresh Caser is created per call:
// Casers are stateful and must not be shared between goroutines.
func foldKey(k string) string {
	return cases.Fold().String(k)
}

func (t *table) get(key string) *Command {
	return t.items[t.normalize(key)]
}

func (t *table) has(key string) bool {
	_, ok := t.items[t.normalize(key)]
	return ok
}

func (t *table) set(key string, c *Command) {
	k := t.normalize(key)
	if _, exists := t.items[k]; !exists {
		t.keys = append(t.keys, k)
	}
	t.items[k] = c
}

func (t *table) delete(key string) bool {
	k := t.normalize(key)
	if _, exists := t.items[k]; !exists {
		return false
	}
	delete(t.items, k)
	if i := slices.Index(t.keys, k); i >= 0 {
		t.keys = slices.Delete(t.keys, i, i+1)
	}
	return true
}

// pop removes and returns the entry for key, reporting whether it existed.
func (t *table) pop(key string) (*Command, bool) {
	k := t.normalize(key)
	c, exists := t.items[k]
	if !exists {
		return nil, false
	}
	t.delete(k)
	return c, true
}

func (t *table) len() int {
	return len(t.items)
}

// orderedKeys returns the normalized keys in first-insertion order.
func (t *table) orderedKeys() []string {
	return slices.Clone(t.keys)
}
