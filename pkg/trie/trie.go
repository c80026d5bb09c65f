package trie

import (
	"slices"
)

// Node is a generic type representing a node in a set trie.
type Node[E any, S any] struct {
	Element  E             // element this node stands for, the zero value at the root
	Terminal bool          // a stored set ends at this node
	Slot     S             // payload of the stored set, meaningful only when Terminal is set
	children []*Node[E, S] // sorted ascending by Element, no two share an element
}

// Children returns the child nodes in ascending element order.
// The returned slice is owned by the node and must not be modified.
func (n *Node[E, S]) Children() []*Node[E, S] {
	return n.children
}

// ChildCount returns the number of children.
func (n *Node[E, S]) ChildCount() int {
	return len(n.children)
}

// checks if the node is a leaf (has no children).
func (n *Node[E, S]) IsLeaf() bool {
	return len(n.children) == 0
}

// isDead reports a node that carries no stored set and leads to none.
func (n *Node[E, S]) isDead() bool {
	return !n.Terminal && len(n.children) == 0
}

// Child returns the child holding e, or nil.
func (n *Node[E, S]) Child(compare func(a, b E) int, e E) *Node[E, S] {
	if pos, found := n.findChild(compare, e); found {
		return n.children[pos]
	}
	return nil
}

// findChild binary-searches the children for e. If e is absent, pos is where it
// would have to be inserted to keep the children sorted.
func (n *Node[E, S]) findChild(compare func(a, b E) int, e E) (pos int, found bool) {
	return slices.BinarySearchFunc(n.children, e, func(child *Node[E, S], e E) int {
		return compare(child.Element, e)
	})
}

// attaches a child for e if no child holds e yet.
// return the new attached child or the existing one
func (n *Node[E, S]) attachChildIfNotExist(compare func(a, b E) int, e E) *Node[E, S] {
	pos, found := n.findChild(compare, e)
	if found {
		return n.children[pos]
	}
	child := &Node[E, S]{Element: e}
	n.children = slices.Insert(n.children, pos, child)
	return child
}

// detachChildAt unlinks the child at pos, the whole subtree goes with it.
func (n *Node[E, S]) detachChildAt(pos int) {
	if pos < 0 || pos >= len(n.children) {
		panic("[BUG] detachChildAt: position out of range")
	}
	n.children = slices.Delete(n.children, pos, pos+1)
}
