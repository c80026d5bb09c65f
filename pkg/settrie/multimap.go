package settrie

import (
	"cmp"
	"io"
	"iter"
	"slices"

	"github.com/khalid-nowaf/settrie/pkg/trie"
)

// MultiMap associates a list of values with each stored set. Values of one key are kept
// in the order they were assigned, duplicates included.
type MultiMap[E any, V any] struct {
	ix *index[E, []V, V]
}

// NewMultiMap creates an empty MultiMap over an ordered key element type.
func NewMultiMap[E cmp.Ordered, V any](opts ...Option) *MultiMap[E, V] {
	return NewMultiMapFunc[E, V](compareOrdered[E], opts...)
}

// NewMultiMapFunc creates an empty MultiMap whose key elements are ordered by compare.
func NewMultiMapFunc[E any, V any](compare func(a, b E) int, opts ...Option) *MultiMap[E, V] {
	return &MultiMap[E, V]{ix: newIndex[E, []V, V](compare, multiMapPolicy[E, V], opts)}
}

// MultiMapFromEntries creates a MultiMap from key/value pairs, appending values of
// repeated keys. It stops at the first key that cannot be stored.
func MultiMapFromEntries[E cmp.Ordered, V any](entries []Entry[E, V], opts ...Option) (*MultiMap[E, V], error) {
	m := NewMultiMap[E, V](opts...)
	for _, e := range entries {
		if _, err := m.Assign(e.Key, e.Value); err != nil {
			return m, err
		}
	}
	return m, nil
}

// Assign appends value to the list of key and returns the new length of the list.
func (m *MultiMap[E, V]) Assign(key []E, value V) (int, error) {
	n, _, err := m.ix.insert(key)
	if err != nil {
		return 0, err
	}
	n.Slot = append(n.Slot, value)
	return len(n.Slot), nil
}

// Lookup returns a copy of the values stored for key.
func (m *MultiMap[E, V]) Lookup(key []E) ([]V, bool) {
	if n := m.ix.find(key); n != nil {
		return slices.Clone(n.Slot), true
	}
	return nil, false
}

// Get returns a copy of the values stored for key, or def.
func (m *MultiMap[E, V]) Get(key []E, def []V) []V {
	if values, ok := m.Lookup(key); ok {
		return values
	}
	return def
}

// IterGet yields the values stored for key, none if it is absent.
func (m *MultiMap[E, V]) IterGet(key []E) iter.Seq[V] {
	n := m.ix.find(key)
	return func(yield func(V) bool) {
		if n == nil {
			return
		}
		for _, v := range n.Slot {
			if !yield(v) {
				return
			}
		}
	}
}

// Count returns the number of values stored for key.
func (m *MultiMap[E, V]) Count(key []E) int {
	if n := m.ix.find(key); n != nil {
		return len(n.Slot)
	}
	return 0
}

// Remove deletes key with all of its values and reports whether it was stored.
func (m *MultiMap[E, V]) Remove(key []E) bool {
	return m.ix.remove(key)
}

// Contains reports whether key is stored.
func (m *MultiMap[E, V]) Contains(key []E) bool {
	return m.ix.find(key) != nil
}

// Len returns the number of stored keys, not values.
func (m *MultiMap[E, V]) Len() int {
	return m.ix.tree.Size()
}

// HasSuperset reports whether some stored key contains every element of set.
func (m *MultiMap[E, V]) HasSuperset(set []E) bool {
	return m.ix.exists(m.ix.supersets(set))
}

// HasSubset reports whether some stored key has all of its elements in set.
func (m *MultiMap[E, V]) HasSubset(set []E) bool {
	return m.ix.exists(m.ix.subsets(set))
}

// Supersets returns the entries whose key contains set, one per value except in Keys
// mode.
func (m *MultiMap[E, V]) Supersets(set []E, mode Mode) []Entry[E, V] {
	return m.ix.collect(m.ix.supersets(set), mode)
}

// Subsets returns the entries whose key is contained in set, one per value except in
// Keys mode.
func (m *MultiMap[E, V]) Subsets(set []E, mode Mode) []Entry[E, V] {
	return m.ix.collect(m.ix.subsets(set), mode)
}

// Items returns every entry, one per value except in Keys mode.
func (m *MultiMap[E, V]) Items(mode Mode) []Entry[E, V] {
	return m.ix.collect(m.ix.all(), mode)
}

// Keys returns every stored key.
func (m *MultiMap[E, V]) Keys() [][]E {
	return projectSlice(m.Items(Keys), keyOf)
}

// Values returns every value, grouped by key in key order.
func (m *MultiMap[E, V]) Values() []V {
	return projectSlice(m.Items(Values), valueOf)
}

// IterSupersets is the lazy form of Supersets.
func (m *MultiMap[E, V]) IterSupersets(set []E, mode Mode) iter.Seq[Entry[E, V]] {
	return m.ix.seq(m.ix.supersets(set), mode)
}

// IterSubsets is the lazy form of Subsets.
func (m *MultiMap[E, V]) IterSubsets(set []E, mode Mode) iter.Seq[Entry[E, V]] {
	return m.ix.seq(m.ix.subsets(set), mode)
}

// All is the lazy form of Items.
func (m *MultiMap[E, V]) All(mode Mode) iter.Seq[Entry[E, V]] {
	return m.ix.seq(m.ix.all(), mode)
}

// SupersetCursor returns a cursor over the result of Supersets.
func (m *MultiMap[E, V]) SupersetCursor(set []E, mode Mode) *Cursor[Entry[E, V]] {
	return m.ix.cursor(m.ix.supersets(set), mode)
}

// SubsetCursor returns a cursor over the result of Subsets.
func (m *MultiMap[E, V]) SubsetCursor(set []E, mode Mode) *Cursor[Entry[E, V]] {
	return m.ix.cursor(m.ix.subsets(set), mode)
}

// Cursor returns a cursor over every entry.
func (m *MultiMap[E, V]) Cursor(mode Mode) *Cursor[Entry[E, V]] {
	return m.ix.cursor(m.ix.all(), mode)
}

// Stats describes the shape of the underlying trie.
func (m *MultiMap[E, V]) Stats() trie.Stats {
	return m.ix.tree.Stats()
}

// WriteTree prints the trie as a rotated tree, terminal nodes followed by their values.
func (m *MultiMap[E, V]) WriteTree(w io.Writer, opts DumpOptions) error {
	return dumpTree(w, m.ix.tree, opts, valueMarker[[]V])
}

// PrintTree is WriteTree with default options.
func (m *MultiMap[E, V]) PrintTree(w io.Writer) error {
	return m.WriteTree(w, DumpOptions{})
}

// String lists the entries, e.g. [{1 3}: A {1 3}: AA].
func (m *MultiMap[E, V]) String() string {
	return formatEntries(m.All(Pairs))
}
