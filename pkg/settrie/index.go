package settrie

import (
	"iter"

	"github.com/khalid-nowaf/settrie/pkg/trie"
)

// index is the part shared by every container: canonicalization in front of the engine,
// and the policy applied to each stored set a query finds.
type index[E, S, V any] struct {
	tree   *trie.Trie[E, S]
	cfg    *config
	policy policy[E, S, V]
}

func newIndex[E, S, V any](compare func(a, b E) int, p policy[E, S, V], opts []Option) *index[E, S, V] {
	return &index[E, S, V]{
		tree:   trie.New[E, S](compare),
		cfg:    defaultOptions(opts),
		policy: p,
	}
}

// insert stores set and returns its terminal node. The trie is only touched once set
// has been canonicalized, so a rejected set leaves no trace.
func (ix *index[E, S, V]) insert(set []E) (*trie.Node[E, S], bool, error) {
	path, err := canonical(ix.tree.Compare(), set)
	if err != nil {
		return nil, false, err
	}
	if len(path) == 0 {
		return nil, false, ErrEmptySet
	}
	n, added := ix.tree.Insert(path)
	return n, added, nil
}

// find returns the terminal node of set, or nil.
func (ix *index[E, S, V]) find(set []E) *trie.Node[E, S] {
	path, err := canonical(ix.tree.Compare(), set)
	if err != nil {
		return nil
	}
	return ix.tree.Find(path)
}

func (ix *index[E, S, V]) remove(set []E) bool {
	path, err := canonical(ix.tree.Compare(), set)
	if err != nil {
		return false
	}
	_, removed := ix.tree.Remove(path)
	return removed
}

// supersets prepares a superset query. A set that cannot be ordered is contained in no
// stored set, the query is then nil and matches nothing.
func (ix *index[E, S, V]) supersets(set []E) *trie.Query[E, S] {
	path, err := canonical(ix.tree.Compare(), set)
	if err != nil {
		return nil
	}
	return ix.tree.Supersets(path)
}

// subsets prepares a subset query. Elements that cannot be ordered are never stored and
// are left out of the query.
func (ix *index[E, S, V]) subsets(set []E) *trie.Query[E, S] {
	compare := ix.tree.Compare()
	path, err := canonical(compare, withoutUnordered(compare, set))
	if err != nil {
		return nil
	}
	return ix.tree.Subsets(path)
}

func (ix *index[E, S, V]) all() *trie.Query[E, S] {
	return ix.tree.All()
}

func (ix *index[E, S, V]) exists(q *trie.Query[E, S]) bool {
	return q.Exists(ix.cfg.strategy)
}

// collect runs q eagerly.
func (ix *index[E, S, V]) collect(q *trie.Query[E, S], mode Mode) []Entry[E, V] {
	results := make([]Entry[E, V], 0)
	emit := func(e Entry[E, V]) bool {
		results = append(results, e)
		return true
	}
	q.Walk(ix.cfg.strategy, func(path []E, n *trie.Node[E, S]) bool {
		return ix.policy(path, n.Slot, mode, emit)
	})
	return results
}

// seq runs q lazily, one stored set per step of the range loop.
func (ix *index[E, S, V]) seq(q *trie.Query[E, S], mode Mode) iter.Seq[Entry[E, V]] {
	return func(yield func(Entry[E, V]) bool) {
		q.Walk(ix.cfg.strategy, func(path []E, n *trie.Node[E, S]) bool {
			return ix.policy(path, n.Slot, mode, yield)
		})
	}
}

// cursor runs q on demand through the engine's explicit stack, whatever the strategy.
func (ix *index[E, S, V]) cursor(q *trie.Query[E, S], mode Mode) *Cursor[Entry[E, V]] {
	walk := q.Cursor()
	return newCursor(func(emit func(Entry[E, V]) bool) bool {
		path, n, ok := walk.Next()
		if !ok {
			return false
		}
		ix.policy(path, n.Slot, mode, emit)
		return true
	})
}
