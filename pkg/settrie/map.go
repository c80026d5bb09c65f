package settrie

import (
	"cmp"
	"io"
	"iter"
	"strings"

	"github.com/khalid-nowaf/settrie/pkg/trie"
)

// Map associates one value with each stored set.
type Map[E any, V any] struct {
	ix *index[E, V, V]
}

// NewMap creates an empty Map over an ordered key element type.
func NewMap[E cmp.Ordered, V any](opts ...Option) *Map[E, V] {
	return NewMapFunc[E, V](compareOrdered[E], opts...)
}

// NewMapFunc creates an empty Map whose key elements are ordered by compare.
func NewMapFunc[E any, V any](compare func(a, b E) int, opts ...Option) *Map[E, V] {
	return &Map[E, V]{ix: newIndex[E, V, V](compare, mapPolicy[E, V], opts)}
}

// MapFromEntries creates a Map from key/value pairs, later pairs overwriting earlier
// ones with the same key. It stops at the first key that cannot be stored.
func MapFromEntries[E cmp.Ordered, V any](entries []Entry[E, V], opts ...Option) (*Map[E, V], error) {
	m := NewMap[E, V](opts...)
	for _, e := range entries {
		if _, err := m.Assign(e.Key, e.Value); err != nil {
			return m, err
		}
	}
	return m, nil
}

// Assign stores key with value, overwriting any previous value. It reports whether the
// key was new.
func (m *Map[E, V]) Assign(key []E, value V) (bool, error) {
	n, added, err := m.ix.insert(key)
	if err != nil {
		return false, err
	}
	n.Slot = value
	return added, nil
}

// Lookup returns the value stored for key.
func (m *Map[E, V]) Lookup(key []E) (V, bool) {
	if n := m.ix.find(key); n != nil {
		return n.Slot, true
	}
	var zero V
	return zero, false
}

// Get returns the value stored for key, or def.
func (m *Map[E, V]) Get(key []E, def V) V {
	if v, ok := m.Lookup(key); ok {
		return v
	}
	return def
}

// Remove deletes key and its value and reports whether it was stored.
func (m *Map[E, V]) Remove(key []E) bool {
	return m.ix.remove(key)
}

// Contains reports whether key is stored.
func (m *Map[E, V]) Contains(key []E) bool {
	return m.ix.find(key) != nil
}

// Len returns the number of stored keys.
func (m *Map[E, V]) Len() int {
	return m.ix.tree.Size()
}

// HasSuperset reports whether some stored key contains every element of set.
func (m *Map[E, V]) HasSuperset(set []E) bool {
	return m.ix.exists(m.ix.supersets(set))
}

// HasSubset reports whether some stored key has all of its elements in set.
func (m *Map[E, V]) HasSubset(set []E) bool {
	return m.ix.exists(m.ix.subsets(set))
}

// Supersets returns the entries whose key contains set.
func (m *Map[E, V]) Supersets(set []E, mode Mode) []Entry[E, V] {
	return m.ix.collect(m.ix.supersets(set), mode)
}

// Subsets returns the entries whose key is contained in set.
func (m *Map[E, V]) Subsets(set []E, mode Mode) []Entry[E, V] {
	return m.ix.collect(m.ix.subsets(set), mode)
}

// Items returns every entry.
func (m *Map[E, V]) Items(mode Mode) []Entry[E, V] {
	return m.ix.collect(m.ix.all(), mode)
}

// Keys returns every stored key.
func (m *Map[E, V]) Keys() [][]E {
	return projectSlice(m.Items(Keys), keyOf)
}

// Values returns every value, in key order.
func (m *Map[E, V]) Values() []V {
	return projectSlice(m.Items(Values), valueOf)
}

// IterSupersets is the lazy form of Supersets.
func (m *Map[E, V]) IterSupersets(set []E, mode Mode) iter.Seq[Entry[E, V]] {
	return m.ix.seq(m.ix.supersets(set), mode)
}

// IterSubsets is the lazy form of Subsets.
func (m *Map[E, V]) IterSubsets(set []E, mode Mode) iter.Seq[Entry[E, V]] {
	return m.ix.seq(m.ix.subsets(set), mode)
}

// All is the lazy form of Items.
func (m *Map[E, V]) All(mode Mode) iter.Seq[Entry[E, V]] {
	return m.ix.seq(m.ix.all(), mode)
}

// SupersetCursor returns a cursor over the result of Supersets.
func (m *Map[E, V]) SupersetCursor(set []E, mode Mode) *Cursor[Entry[E, V]] {
	return m.ix.cursor(m.ix.supersets(set), mode)
}

// SubsetCursor returns a cursor over the result of Subsets.
func (m *Map[E, V]) SubsetCursor(set []E, mode Mode) *Cursor[Entry[E, V]] {
	return m.ix.cursor(m.ix.subsets(set), mode)
}

// Cursor returns a cursor over every entry.
func (m *Map[E, V]) Cursor(mode Mode) *Cursor[Entry[E, V]] {
	return m.ix.cursor(m.ix.all(), mode)
}

// Stats describes the shape of the underlying trie.
func (m *Map[E, V]) Stats() trie.Stats {
	return m.ix.tree.Stats()
}

// WriteTree prints the trie as a rotated tree, terminal nodes followed by their value.
func (m *Map[E, V]) WriteTree(w io.Writer, opts DumpOptions) error {
	return dumpTree(w, m.ix.tree, opts, valueMarker[V])
}

// PrintTree is WriteTree with default options.
func (m *Map[E, V]) PrintTree(w io.Writer) error {
	return m.WriteTree(w, DumpOptions{})
}

// String lists the entries, e.g. [{1 2}: A {1 3}: B].
func (m *Map[E, V]) String() string {
	return formatEntries(m.All(Pairs))
}

func formatEntries[E, V any](entries iter.Seq[Entry[E, V]]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	i := 0
	for e := range entries {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
		i++
	}
	sb.WriteByte(']')
	return sb.String()
}
