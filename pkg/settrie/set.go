package settrie

import (
	"cmp"
	"io"
	"iter"
	"strings"

	"github.com/khalid-nowaf/settrie/pkg/trie"
)

// SetTrie is a container of sets of E supporting superset and subset queries.
type SetTrie[E any] struct {
	ix *index[E, struct{}, struct{}]
}

// New creates an empty SetTrie over an ordered element type.
func New[E cmp.Ordered](opts ...Option) *SetTrie[E] {
	return NewFunc(compareOrdered[E], opts...)
}

// NewFunc creates an empty SetTrie ordered by compare, which must be a total order.
func NewFunc[E any](compare func(a, b E) int, opts ...Option) *SetTrie[E] {
	return &SetTrie[E]{ix: newIndex[E, struct{}, struct{}](compare, setPolicy[E], opts)}
}

// FromSets creates a SetTrie holding sets. It stops at the first set that cannot be
// stored and returns the error together with what was added so far.
func FromSets[E cmp.Ordered](sets [][]E, opts ...Option) (*SetTrie[E], error) {
	s := New[E](opts...)
	for _, set := range sets {
		if _, err := s.Add(set); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Add stores set. It reports whether set was new, and fails without touching the
// container if set is empty or its elements cannot be ordered.
func (s *SetTrie[E]) Add(set []E) (bool, error) {
	_, added, err := s.ix.insert(set)
	return added, err
}

// Remove deletes set and reports whether it was stored.
func (s *SetTrie[E]) Remove(set []E) bool {
	return s.ix.remove(set)
}

// Contains reports whether set is stored.
func (s *SetTrie[E]) Contains(set []E) bool {
	return s.ix.find(set) != nil
}

// Len returns the number of stored sets.
func (s *SetTrie[E]) Len() int {
	return s.ix.tree.Size()
}

// HasSuperset reports whether some stored set contains every element of set.
func (s *SetTrie[E]) HasSuperset(set []E) bool {
	return s.ix.exists(s.ix.supersets(set))
}

// HasSubset reports whether some stored set has all of its elements in set.
func (s *SetTrie[E]) HasSubset(set []E) bool {
	return s.ix.exists(s.ix.subsets(set))
}

// Supersets returns the stored sets containing set, equal ones included.
func (s *SetTrie[E]) Supersets(set []E) [][]E {
	return projectSlice(s.ix.collect(s.ix.supersets(set), Keys), keyOf)
}

// Subsets returns the stored sets contained in set, equal ones included.
func (s *SetTrie[E]) Subsets(set []E) [][]E {
	return projectSlice(s.ix.collect(s.ix.subsets(set), Keys), keyOf)
}

// Sets returns every stored set.
func (s *SetTrie[E]) Sets() [][]E {
	return projectSlice(s.ix.collect(s.ix.all(), Keys), keyOf)
}

// IterSupersets is the lazy form of Supersets.
func (s *SetTrie[E]) IterSupersets(set []E) iter.Seq[[]E] {
	return projectSeq(s.ix.seq(s.ix.supersets(set), Keys), keyOf)
}

// IterSubsets is the lazy form of Subsets.
func (s *SetTrie[E]) IterSubsets(set []E) iter.Seq[[]E] {
	return projectSeq(s.ix.seq(s.ix.subsets(set), Keys), keyOf)
}

// All is the lazy form of Sets.
func (s *SetTrie[E]) All() iter.Seq[[]E] {
	return projectSeq(s.ix.seq(s.ix.all(), Keys), keyOf)
}

// SupersetCursor returns a cursor over the result of Supersets.
func (s *SetTrie[E]) SupersetCursor(set []E) *Cursor[[]E] {
	return project(s.ix.cursor(s.ix.supersets(set), Keys), keyOf)
}

// SubsetCursor returns a cursor over the result of Subsets.
func (s *SetTrie[E]) SubsetCursor(set []E) *Cursor[[]E] {
	return project(s.ix.cursor(s.ix.subsets(set), Keys), keyOf)
}

// Cursor returns a cursor over every stored set.
func (s *SetTrie[E]) Cursor() *Cursor[[]E] {
	return project(s.ix.cursor(s.ix.all(), Keys), keyOf)
}

// Stats describes the shape of the underlying trie.
func (s *SetTrie[E]) Stats() trie.Stats {
	return s.ix.tree.Stats()
}

// WriteTree prints the trie as a rotated tree, terminal nodes marked with '#'.
func (s *SetTrie[E]) WriteTree(w io.Writer, opts DumpOptions) error {
	return dumpTree(w, s.ix.tree, opts, setMarker)
}

// PrintTree is WriteTree with default options.
func (s *SetTrie[E]) PrintTree(w io.Writer) error {
	return s.WriteTree(w, DumpOptions{})
}

// String lists the stored sets, e.g. [{1 2} {1 3}].
func (s *SetTrie[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	i := 0
	for set := range s.All() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(FormatSet(set))
		i++
	}
	sb.WriteByte(']')
	return sb.String()
}
