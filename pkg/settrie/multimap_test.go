package settrie

import (
	"slices"
	"strings"
	"testing"

	"github.com/khalid-nowaf/settrie/pkg/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSampleMultiMap(t *testing.T, strategy trie.Strategy) *MultiMap[int, string] {
	t.Helper()
	m, err := MultiMapFromEntries(pairs(
		[]int{1, 3}, "A", []int{1, 3}, "AA", []int{1, 3, 5}, "B", []int{1, 4}, "C", []int{1, 4}, "CC",
		[]int{1, 2, 4}, "D", []int{1, 2, 4}, "DD", []int{2, 4}, "E", []int{2, 3, 5}, "F",
		[]int{2, 3, 5}, "FF", []int{2, 3, 5}, "FFF",
	), WithStrategy(strategy))
	require.NoError(t, err)
	return m
}

func TestMultiMapAssignReturnsCount(t *testing.T) {
	m := NewMultiMap[int, string]()

	testCases := []struct {
		key      []int
		value    string
		expected int
	}{
		{key: []int{1, 3}, value: "A", expected: 1},
		{key: []int{3, 1}, value: "AA", expected: 2},
		{key: []int{1, 3}, value: "A", expected: 3},
		{key: []int{2, 4, 5}, value: "Y", expected: 1},
	}

	for _, tc := range testCases {
		n, err := m.Assign(tc.key, tc.value)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, n, "Assign(%v, %s)", tc.key, tc.value)
	}
	assert.Equal(t, []string{"A", "AA", "A"}, m.Get([]int{1, 3}, nil), "duplicates are kept in order")
	assert.Equal(t, 2, m.Len())

	n, err := m.Assign([]int{}, "Z")
	assert.ErrorIs(t, err, ErrEmptySet)
	assert.Zero(t, n)
}

func TestMultiMapCount(t *testing.T) {
	m := newSampleMultiMap(t, trie.Iterative)

	assert.Equal(t, 2, m.Count([]int{1, 3}))
	assert.Equal(t, 1, m.Count([]int{1, 3, 5}))
	assert.Equal(t, 0, m.Count([]int{1, 3, 4}))
	assert.Equal(t, 0, m.Count([]int{111, 222}))
	assert.Equal(t, 3, m.Count([]int{2, 3, 5}))
}

func TestMultiMapGet(t *testing.T) {
	m := newSampleMultiMap(t, trie.Iterative)

	assert.Equal(t, []string{"A", "AA"}, m.Get([]int{1, 3}, nil))
	assert.Equal(t, []string{"D", "DD"}, m.Get([]int{1, 2, 4}, nil))
	assert.Equal(t, []string{"B"}, m.Get([]int{1, 3, 5}, nil))
	assert.Equal(t, []string{"F", "FF", "FFF"}, m.Get([]int{2, 3, 5}, nil))
	assert.Nil(t, m.Get([]int{1, 3, 4}, nil))
	assert.Equal(t, []string{}, m.Get([]int{44}, []string{}))

	got := m.Get([]int{1, 3}, nil)
	got[0] = "changed"
	assert.Equal(t, []string{"A", "AA"}, m.Get([]int{1, 3}, nil), "Get should return a copy")
}

func TestMultiMapIterGet(t *testing.T) {
	m := newSampleMultiMap(t, trie.Iterative)

	assert.Equal(t, []string{"A", "AA"}, slices.Collect(m.IterGet([]int{1, 3})))
	assert.Empty(t, slices.Collect(m.IterGet([]int{1, 3, 4})))

	for v := range m.IterGet([]int{2, 3, 5}) {
		assert.Equal(t, "F", v)
		break
	}
}

func TestMultiMapSupersets(t *testing.T) {
	testCases := []struct {
		query    []int
		mode     Mode
		expected []Entry[int, string]
	}{
		{query: []int{3, 5}, mode: Pairs, expected: pairs([]int{1, 3, 5}, "B", []int{2, 3, 5}, "F", []int{2, 3, 5}, "FF", []int{2, 3, 5}, "FFF")},
		{query: []int{3, 5}, mode: Values, expected: values("B", "F", "FF", "FFF")},
		{query: []int{3, 5}, mode: Keys, expected: keys([]int{1, 3, 5}, []int{2, 3, 5})},
		{query: []int{1}, mode: Pairs, expected: pairs(
			[]int{1, 2, 4}, "D", []int{1, 2, 4}, "DD", []int{1, 3}, "A", []int{1, 3}, "AA",
			[]int{1, 3, 5}, "B", []int{1, 4}, "C", []int{1, 4}, "CC")},
		{query: []int{1}, mode: Keys, expected: keys([]int{1, 2, 4}, []int{1, 3}, []int{1, 3, 5}, []int{1, 4})},
		{query: []int{1}, mode: Values, expected: values("D", "DD", "A", "AA", "B", "C", "CC")},
		{query: []int{1, 2, 5}, mode: Pairs, expected: pairs()},
		{query: []int{1, 2, 5}, mode: Keys, expected: keys()},
		{query: []int{1, 2, 5}, mode: Values, expected: values()},
	}

	for _, strategy := range strategies {
		m := newSampleMultiMap(t, strategy)
		for _, tc := range testCases {
			assert.Equal(t, tc.expected, m.Supersets(tc.query, tc.mode), "Supersets(%v, %s) %s", tc.query, tc.mode, strategy)
			assert.Equal(t, tc.expected, append([]Entry[int, string]{}, slices.Collect(m.IterSupersets(tc.query, tc.mode))...))
			assert.Equal(t, tc.expected, drain(m.SupersetCursor(tc.query, tc.mode)))
		}
		assert.True(t, m.HasSuperset([]int{3, 5}))
		assert.False(t, m.HasSuperset([]int{1, 2, 5}))
	}
}

func TestMultiMapSubsets(t *testing.T) {
	all := pairs(
		[]int{1, 2, 4}, "D", []int{1, 2, 4}, "DD", []int{1, 3}, "A", []int{1, 3}, "AA", []int{1, 3, 5}, "B",
		[]int{1, 4}, "C", []int{1, 4}, "CC", []int{2, 3, 5}, "F", []int{2, 3, 5}, "FF", []int{2, 3, 5}, "FFF",
		[]int{2, 4}, "E")

	testCases := []struct {
		query    []int
		mode     Mode
		expected []Entry[int, string]
	}{
		{query: []int{1, 2, 4, 11}, mode: Keys, expected: keys([]int{1, 2, 4}, []int{1, 4}, []int{2, 4})},
		{query: []int{1, 2, 4, 11}, mode: Values, expected: values("D", "DD", "C", "CC", "E")},
		{query: []int{1, 2, 4}, mode: Pairs, expected: pairs(
			[]int{1, 2, 4}, "D", []int{1, 2, 4}, "DD", []int{1, 4}, "C", []int{1, 4}, "CC", []int{2, 4}, "E")},
		{query: []int{1, 2}, mode: Pairs, expected: pairs()},
		{query: []int{1, 2, 3, 4, 5}, mode: Pairs, expected: all},
		{query: []int{1, 2, 3, 4, 5}, mode: Values, expected: values("D", "DD", "A", "AA", "B", "C", "CC", "F", "FF", "FFF", "E")},
		{query: []int{0, 1, 3, 5}, mode: Pairs, expected: pairs([]int{1, 3}, "A", []int{1, 3}, "AA", []int{1, 3, 5}, "B")},
		{query: []int{0, 1, 3, 5}, mode: Values, expected: values("A", "AA", "B")},
		{query: []int{1, 4, 8}, mode: Pairs, expected: pairs([]int{1, 4}, "C", []int{1, 4}, "CC")},
		{query: []int{2, 3, 4, 5}, mode: Pairs, expected: pairs(
			[]int{2, 3, 5}, "F", []int{2, 3, 5}, "FF", []int{2, 3, 5}, "FFF", []int{2, 4}, "E")},
		{query: []int{2, 3, 5, 6}, mode: Keys, expected: keys([]int{2, 3, 5})},
	}

	for _, strategy := range strategies {
		m := newSampleMultiMap(t, strategy)
		for _, tc := range testCases {
			assert.Equal(t, tc.expected, m.Subsets(tc.query, tc.mode), "Subsets(%v, %s) %s", tc.query, tc.mode, strategy)
			assert.Equal(t, tc.expected, append([]Entry[int, string]{}, slices.Collect(m.IterSubsets(tc.query, tc.mode))...))
			assert.Equal(t, tc.expected, drain(m.SubsetCursor(tc.query, tc.mode)))
		}
		assert.Equal(t, all, m.Items(Pairs))
		assert.Equal(t, m.Items(Values), projectSlice(m.Items(Pairs), func(e Entry[int, string]) Entry[int, string] {
			return Entry[int, string]{Value: e.Value}
		}))
		assert.True(t, m.HasSubset([]int{1, 4, 8}))
		assert.False(t, m.HasSubset([]int{1, 2, 5}))
	}
}

// TestMultiMapCursorSplitsNode stops the cursor in the middle of the values of one key.
func TestMultiMapCursorSplitsNode(t *testing.T) {
	m := newSampleMultiMap(t, trie.Iterative)
	c := m.SupersetCursor([]int{3, 5}, Values)

	first, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, "B", first.Value)

	second, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, "F", second.Value)
	assert.Nil(t, second.Key)

	assert.Equal(t, values("FF", "FFF"), slices.Collect(c.All()))
}

func TestMultiMapRemove(t *testing.T) {
	m := newSampleMultiMap(t, trie.Iterative)

	assert.True(t, m.Remove([]int{2, 3, 5}))
	assert.Equal(t, 0, m.Count([]int{2, 3, 5}))
	assert.Equal(t, values("B"), m.Supersets([]int{3, 5}, Values))

	n, err := m.Assign([]int{2, 3, 5}, "G")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "values of a removed key should be gone")
}

func TestMultiMapPrintTree(t *testing.T) {
	m, err := MultiMapFromEntries(pairs([]int{1, 3}, "A", []int{1, 3}, "AA", []int{2}, "B"))
	require.NoError(t, err)

	w := new(strings.Builder)
	require.NoError(t, m.PrintTree(w))
	assert.Equal(t, "{}\n  1\n    3: [A AA]\n  2: [B]\n", w.String())
	assert.Equal(t, "[{1 3}: A {1 3}: AA {2}: B]", m.String())
}
