package trie

import (
	"iter"
	"slices"
)

type queryKind uint8

const (
	supersetQuery queryKind = iota
	subsetQuery
)

// Visitor is called for each stored set a query finds, with the set's path and its
// terminal node. path is reused between calls; copy it to keep it. Returning false
// stops the query.
type Visitor[E any, S any] func(path []E, n *Node[E, S]) bool

// Query is a prepared superset or subset search over a trie. A nil *Query matches nothing.
//
// The trie must not be modified while a query is running or one of its lazy forms is
// being consumed.
type Query[E any, S any] struct {
	kind    queryKind
	root    *Node[E, S]
	q       []E
	compare func(a, b E) int
}

// Supersets prepares a search for the stored sets containing every element of q.
// q must be strictly ascending; an empty q matches every stored set.
func (t *Trie[E, S]) Supersets(q []E) *Query[E, S] {
	return &Query[E, S]{kind: supersetQuery, root: t.root, q: q, compare: t.compare}
}

// Subsets prepares a search for the stored sets whose elements all occur in q.
// q must be strictly ascending.
func (t *Trie[E, S]) Subsets(q []E) *Query[E, S] {
	return &Query[E, S]{kind: subsetQuery, root: t.root, q: q, compare: t.compare}
}

// All prepares a full enumeration, the superset query of the empty set.
func (t *Trie[E, S]) All() *Query[E, S] {
	return t.Supersets(nil)
}

// emits reports whether n, reached with query index i, ends a matching set.
func (s *Query[E, S]) emits(n *Node[E, S], i int) bool {
	if !n.Terminal {
		return false
	}
	if s.kind == supersetQuery {
		return i >= len(s.q)
	}
	return true
}

// settled short-circuits an existence check: done is true once the answer for the
// subtree of n no longer depends on descending further.
func (s *Query[E, S]) settled(n *Node[E, S], i int) (found, done bool) {
	switch s.kind {
	case supersetQuery:
		if i >= len(s.q) {
			// any stored set below n will do, and only the root can be empty
			return n.Terminal || !n.IsLeaf(), true
		}
	case subsetQuery:
		if n.Terminal {
			return true, true
		}
	}
	return false, false
}

// expand calls next, in ascending order, for each child of n that may still lead to a
// match, together with the query index to continue at. It returns false as soon as next does.
func (s *Query[E, S]) expand(n *Node[E, S], i int, next func(child *Node[E, S], j int) bool) bool {
	if s.kind == supersetQuery {
		return s.expandSupersets(n, i, next)
	}
	return s.expandSubsets(n, i, next)
}

func (s *Query[E, S]) expandSupersets(n *Node[E, S], i int, next func(*Node[E, S], int) bool) bool {
	if i >= len(s.q) {
		for _, child := range n.children {
			if !next(child, i) {
				return false
			}
		}
		return true
	}

	pos, found := n.findChild(s.compare, s.q[i])

	// smaller siblings are extra elements, q[i] may still turn up below them
	for _, child := range n.children[:pos] {
		if !next(child, i) {
			return false
		}
	}
	// larger siblings are skipped: elements only grow along a path
	if found {
		return next(n.children[pos], i+1)
	}
	return true
}

func (s *Query[E, S]) expandSubsets(n *Node[E, S], i int, next func(*Node[E, S], int) bool) bool {
	q := s.q
	if i >= len(q) {
		return true
	}

	pos, found := n.findChild(s.compare, q[i])
	if found {
		if !next(n.children[pos], i+1) {
			return false
		}
		pos++
	}

	// children below q[i] cannot occur in q[i:], the rest are searched forward in q
	lo := i + 1
	for _, child := range n.children[pos:] {
		if lo >= len(q) {
			break
		}
		j, ok := slices.BinarySearchFunc(q[lo:], child.Element, s.compare)
		j += lo
		if !ok {
			// child.Element is missing from q, later siblings are greater and start at j
			lo = j
			continue
		}
		if !next(child, j+1) {
			return false
		}
		lo = j + 1
	}
	return true
}

// Exists reports whether the query matches at least one stored set.
func (s *Query[E, S]) Exists(strategy Strategy) bool {
	if s == nil {
		return false
	}
	if strategy == Recursive {
		return s.existsRec(s.root, 0)
	}
	return s.existsIter()
}

func (s *Query[E, S]) existsRec(n *Node[E, S], i int) bool {
	if found, done := s.settled(n, i); done {
		return found
	}
	found := false
	s.expand(n, i, func(child *Node[E, S], j int) bool {
		found = s.existsRec(child, j)
		return !found
	})
	return found
}

func (s *Query[E, S]) existsIter() bool {
	stack := []frame[E, S]{{node: s.root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if found, done := s.settled(top.node, top.idx); done {
			if found {
				return true
			}
			continue
		}
		s.expand(top.node, top.idx, func(child *Node[E, S], j int) bool {
			stack = append(stack, frame[E, S]{node: child, idx: j})
			return true
		})
	}
	return false
}

// Walk runs the query to completion, or until visit returns false, in which case Walk
// returns false. Matches arrive in ascending lexicographic order of their paths.
func (s *Query[E, S]) Walk(strategy Strategy, visit Visitor[E, S]) bool {
	if s == nil {
		return true
	}
	if strategy == Recursive {
		return s.walkRec(s.root, 0, nil, visit)
	}

	c := s.Cursor()
	for {
		path, n, ok := c.Next()
		if !ok {
			return true
		}
		if !visit(path, n) {
			return false
		}
	}
}

// walkRec visits n and its matching descendants. path holds the elements above n's
// children; siblings share its backing array, each one overwriting the last slot.
func (s *Query[E, S]) walkRec(n *Node[E, S], i int, path []E, visit Visitor[E, S]) bool {
	if s.emits(n, i) && !visit(path, n) {
		return false
	}
	return s.expand(n, i, func(child *Node[E, S], j int) bool {
		return s.walkRec(child, j, append(path, child.Element), visit)
	})
}

// Seq returns the query as a lazy sequence. Breaking out of the range loop abandons
// the traversal.
func (s *Query[E, S]) Seq(strategy Strategy) iter.Seq2[[]E, *Node[E, S]] {
	return func(yield func([]E, *Node[E, S]) bool) {
		s.Walk(strategy, yield)
	}
}
