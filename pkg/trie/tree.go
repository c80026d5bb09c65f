package trie

import (
	"github.com/pkg/errors"
)

// Strategy selects how a query traverses the trie.
type Strategy uint8

const (
	// Iterative drives the traversal with an explicit work stack.
	Iterative Strategy = iota
	// Recursive drives the traversal with function recursion, one call per trie level.
	Recursive
)

func (s Strategy) String() string {
	switch s {
	case Iterative:
		return "iterative"
	case Recursive:
		return "recursive"
	}
	return "unknown"
}

// ParseStrategy returns the Strategy named by s.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "iterative", "":
		return Iterative, nil
	case "recursive":
		return Recursive, nil
	}
	return Iterative, errors.Errorf("unknown traversal strategy %q", s)
}

// Trie owns the root sentinel of a set trie and counts the stored sets.
type Trie[E any, S any] struct {
	root    *Node[E, S]
	size    int
	compare func(a, b E) int
}

// New creates an empty trie ordered by compare.
func New[E any, S any](compare func(a, b E) int) *Trie[E, S] {
	if compare == nil {
		panic("[BUG] New: compare function must not be nil")
	}
	return &Trie[E, S]{
		root:    &Node[E, S]{},
		compare: compare,
	}
}

// Root returns the sentinel root node. It is never terminal.
func (t *Trie[E, S]) Root() *Node[E, S] {
	return t.root
}

// Size returns the number of stored sets.
func (t *Trie[E, S]) Size() int {
	return t.size
}

// Compare returns the order the trie was built with.
func (t *Trie[E, S]) Compare() func(a, b E) int {
	return t.compare
}

// Insert walks path from the root, attaching the nodes that are missing, and marks the
// last one terminal. added is false if the path was already stored.
//
// path must be canonical: non-empty and strictly ascending under the trie's order.
func (t *Trie[E, S]) Insert(path []E) (n *Node[E, S], added bool) {
	if len(path) == 0 {
		panic("[BUG] Insert: path must not be empty, the root is never terminal")
	}

	n = t.root
	for _, e := range path {
		n = n.attachChildIfNotExist(t.compare, e)
	}

	if n.Terminal {
		return n, false
	}
	n.Terminal = true
	t.size++
	return n, true
}

// Find returns the terminal node stored for path, or nil.
func (t *Trie[E, S]) Find(path []E) *Node[E, S] {
	n := t.root
	for _, e := range path {
		if n = n.Child(t.compare, e); n == nil {
			return nil
		}
	}
	if !n.Terminal {
		return nil
	}
	return n
}

// Remove unmarks the set stored for path and returns its slot. Nodes left with neither a
// terminal mark nor children are detached, walking back up the path until an ancestor
// still carries a set or another branch.
func (t *Trie[E, S]) Remove(path []E) (slot S, removed bool) {
	if len(path) == 0 {
		return slot, false
	}

	// parents[k] holds path[k] at child position positions[k]
	parents := make([]*Node[E, S], 0, len(path))
	positions := make([]int, 0, len(path))

	n := t.root
	for _, e := range path {
		pos, found := n.findChild(t.compare, e)
		if !found {
			return slot, false
		}
		parents = append(parents, n)
		positions = append(positions, pos)
		n = n.children[pos]
	}

	if !n.Terminal {
		return slot, false
	}

	var zero S
	slot = n.Slot
	n.Slot = zero
	n.Terminal = false
	t.size--

	t.detachBranch(parents, positions)
	return slot, true
}

// detachBranch removes the dead tail of a recorded path, from the leaf upwards.
func (t *Trie[E, S]) detachBranch(parents []*Node[E, S], positions []int) {
	for k := len(parents) - 1; k >= 0; k-- {
		parent, pos := parents[k], positions[k]
		if !parent.children[pos].isDead() {
			return
		}
		parent.detachChildAt(pos)
	}
}

// WalkNodes visits every node, the root included at depth 0, in pre-order with children in
// ascending order. It stops early when f returns false.
func (t *Trie[E, S]) WalkNodes(f func(n *Node[E, S], depth int) bool) {
	type item struct {
		node  *Node[E, S]
		depth int
	}

	stack := []item{{node: t.root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f(top.node, top.depth) {
			return
		}

		children := top.node.children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, item{node: children[i], depth: top.depth + 1})
		}
	}
}

// Stats describes the shape of a trie.
type Stats struct {
	Nodes     int `json:"nodes"`     // nodes below the root
	Terminals int `json:"terminals"` // nodes ending a stored set
	Leaves    int `json:"leaves"`    // nodes without children
	Dead      int `json:"dead"`      // nodes neither terminal nor with children, always 0 for a sound trie
	MaxDepth  int `json:"max_depth"` // elements in the longest stored set
}

// Stats walks the whole trie and counts its nodes.
func (t *Trie[E, S]) Stats() Stats {
	var st Stats
	t.WalkNodes(func(n *Node[E, S], depth int) bool {
		if depth == 0 {
			return true
		}
		st.Nodes++
		if n.Terminal {
			st.Terminals++
		}
		if n.IsLeaf() {
			st.Leaves++
		}
		if n.isDead() {
			st.Dead++
		}
		if depth > st.MaxDepth {
			st.MaxDepth = depth
		}
		return true
	})
	return st
}
