package settrie

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"
)

var (
	// ErrEmptySet is returned when storing the empty set, which has no path in the trie.
	ErrEmptySet = errors.New("settrie: the empty set cannot be stored")
	// ErrUnordered is returned when the elements of a set cannot be put in a total order.
	ErrUnordered = errors.New("settrie: elements are not totally ordered")
)

// compareOrdered is cmp.Compare, except that NaN compares unequal to everything,
// itself included, so canonical rejects it.
func compareOrdered[E cmp.Ordered](a, b E) int {
	if a != a || b != b {
		return 1
	}
	return cmp.Compare(a, b)
}

// canonical converts a set into its path in the trie: ascending, without duplicates.
// The input is not modified.
//
// The order is verified on the way: every element must equal itself and adjacent
// elements must compare strictly ascending from both sides. Nothing else is checked,
// a comparison that is inconsistent across non-adjacent elements goes unnoticed.
func canonical[E any](compare func(a, b E) int, set []E) ([]E, error) {
	for i, e := range set {
		if compare(e, e) != 0 {
			return nil, errors.Wrapf(ErrUnordered, "element %v at position %d does not equal itself", e, i)
		}
	}

	path := slices.Clone(set)
	slices.SortFunc(path, compare)
	path = slices.CompactFunc(path, func(a, b E) bool {
		return compare(a, b) == 0
	})

	for i := 1; i < len(path); i++ {
		if compare(path[i-1], path[i]) >= 0 || compare(path[i], path[i-1]) <= 0 {
			return nil, errors.Wrapf(ErrUnordered, "elements %v and %v", path[i-1], path[i])
		}
	}
	return path, nil
}

// withoutUnordered drops the elements that do not equal themselves. Such elements are
// never stored, so a subset query can ignore them.
func withoutUnordered[E any](compare func(a, b E) int, set []E) []E {
	return slices.DeleteFunc(slices.Clone(set), func(e E) bool {
		return compare(e, e) != 0
	})
}
