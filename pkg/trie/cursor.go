package trie

import (
	"slices"
)

// frame is one unit of pending work on an explicit stack: visit node, continuing the
// query at index idx. A frame without a node is the sentinel that drops the last path
// element once every child of that element has been processed.
type frame[E any, S any] struct {
	node *Node[E, S]
	idx  int
}

// Cursor is the paused state of an iterative query: the work stack and the path to the
// node being visited. Each call to Next resumes the walk until the following match.
//
// A Cursor holds no resources besides memory; dropping it abandons the walk.
type Cursor[E any, S any] struct {
	query *Query[E, S]
	stack []frame[E, S]
	path  []E
}

// Cursor returns a new cursor positioned before the first match of the query.
func (s *Query[E, S]) Cursor() *Cursor[E, S] {
	c := &Cursor[E, S]{query: s}
	if s != nil {
		c.stack = append(c.stack, frame[E, S]{node: s.root})
	}
	return c
}

// Next advances to the following match and returns its path and terminal node.
// ok is false once the query is exhausted. The path is only valid until the next call.
func (c *Cursor[E, S]) Next() (path []E, n *Node[E, S], ok bool) {
	for len(c.stack) > 0 {
		top := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]

		if top.node == nil {
			c.path = c.path[:len(c.path)-1]
			continue
		}

		n = top.node
		if n != c.query.root {
			c.path = append(c.path, n.Element)
			c.stack = append(c.stack, frame[E, S]{})
		}
		c.push(n, top.idx)

		if c.query.emits(n, top.idx) {
			return c.path, n, true
		}
	}
	return nil, nil, false
}

// push schedules the children of n worth visiting, smallest on top of the stack.
func (c *Cursor[E, S]) push(n *Node[E, S], i int) {
	mark := len(c.stack)
	c.query.expand(n, i, func(child *Node[E, S], j int) bool {
		c.stack = append(c.stack, frame[E, S]{node: child, idx: j})
		return true
	})
	slices.Reverse(c.stack[mark:])
}
