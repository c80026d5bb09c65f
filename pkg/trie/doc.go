// ## Overview
// Package trie implements the engine behind a set trie: a prefix tree whose paths are the
// ascending element sequences of stored sets. Children of a node are kept sorted by element
// and unique, so every stored set has exactly one path and common prefixes are shared.
//
// The engine only deals with canonical paths (strictly ascending, non-empty). Turning an
// arbitrary input set into such a path is left to the caller, see package settrie.
//
// Besides insertion, lookup and removal with branch pruning, the engine answers superset
// and subset queries. Each query can be driven in two strategies:
//
//   - Iterative: an explicit work stack, safe for arbitrarily deep sets. This is the default.
//   - Recursive: plain function recursion, bounded by the size of the largest stored set.
//
// and in two evaluation modes: eagerly through Query.Walk, or lazily through Query.Seq and
// Query.Cursor, which may be abandoned at any point without further cleanup.
//
// ## Example usage:
//
//	t := trie.New[int, struct{}](cmp.Compare[int])
//	t.Insert([]int{1, 3})
//	t.Insert([]int{1, 3, 5})
//	t.Insert([]int{2, 3, 5})
//
//	for path := range t.Supersets([]int{3, 5}).Seq(trie.Iterative) {
//	    fmt.Println(path) // [1 3 5], then [2 3 5]
//	}
//
// Slot is a generic payload attached to terminal nodes; set tries use struct{}, map tries
// store their values there.
package trie
