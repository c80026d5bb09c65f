// Package settrie stores families of finite sets and answers membership, superset and
// subset queries over them without scanning every stored set.
//
// Three containers share one engine (package trie):
//
//   - SetTrie[E] stores plain sets.
//   - Map[E, V] attaches one value to each stored set; assigning again overwrites it.
//   - MultiMap[E, V] attaches an ordered list of values to each stored set; assigning
//     again appends.
//
// Every operation first turns its input into the canonical form of the set: elements
// sorted ascending with duplicates dropped. Elements only need a total order. For
// cmp.Ordered types the constructors use cmp.Compare (NaN is rejected); any other type
// can be used with the *Func constructors and a comparison function.
//
//	s := settrie.New[int]()
//	s.Add([]int{1, 3})
//	s.Add([]int{1, 3, 5})
//	s.Add([]int{2, 3, 5})
//	s.Supersets([]int{3, 5}) // [[1 3 5] [2 3 5]]
//	s.Subsets([]int{1, 3, 4}) // [[1 3]]
//
// Query results come back in ascending lexicographic order of the sets, either eagerly
// as slices, lazily as iter.Seq sequences, or through a Cursor that can be dropped at
// any point. Containers are not safe for concurrent mutation, and must not be modified
// while a lazy query over them is being consumed.
//
// PrintTree prints the root as {} rather than as an element, and renders values with
// %v, so strings appear unquoted.
package settrie
