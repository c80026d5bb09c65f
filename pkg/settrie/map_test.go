package settrie

import (
	"slices"
	"strings"
	"testing"

	"github.com/khalid-nowaf/settrie/pkg/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSampleMap(t *testing.T, strategy trie.Strategy) *Map[int, string] {
	t.Helper()
	m, err := MapFromEntries([]Entry[int, string]{
		{Key: []int{1, 3}, Value: "A"},
		{Key: []int{1, 3, 5}, Value: "B"},
		{Key: []int{1, 4}, Value: "C"},
		{Key: []int{1, 2, 4}, Value: "D"},
		{Key: []int{2, 4}, Value: "E"},
		{Key: []int{2, 3, 5}, Value: "F"},
	}, WithStrategy(strategy))
	require.NoError(t, err)
	return m
}

func pairs(kv ...any) []Entry[int, string] {
	out := []Entry[int, string]{}
	for i := 0; i < len(kv); i += 2 {
		out = append(out, Entry[int, string]{Key: kv[i].([]int), Value: kv[i+1].(string)})
	}
	return out
}

func keys(sets ...[]int) []Entry[int, string] {
	out := []Entry[int, string]{}
	for _, set := range sets {
		out = append(out, Entry[int, string]{Key: set})
	}
	return out
}

func values(vs ...string) []Entry[int, string] {
	out := []Entry[int, string]{}
	for _, v := range vs {
		out = append(out, Entry[int, string]{Value: v})
	}
	return out
}

func TestMapGet(t *testing.T) {
	m := newSampleMap(t, trie.Iterative)

	testCases := []struct {
		key      []int
		expected string
	}{
		{key: []int{1, 3}, expected: "A"},
		{key: []int{5, 3, 1}, expected: "B"},
		{key: []int{1, 4}, expected: "C"},
		{key: []int{1, 2, 4}, expected: "D"},
		{key: []int{2, 4}, expected: "E"},
		{key: []int{2, 3, 5}, expected: "F"},
		{key: []int{1, 2, 3}, expected: "none"},
		{key: []int{100, 101, 102}, expected: "none"},
		{key: []int{}, expected: "none"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, m.Get(tc.key, "none"), "Get(%v)", tc.key)
		_, ok := m.Lookup(tc.key)
		assert.Equal(t, tc.expected != "none", ok)
		assert.Equal(t, ok, m.Contains(tc.key))
	}
}

func TestMapAssignOverwrites(t *testing.T) {
	m := newSampleMap(t, trie.Iterative)

	added, err := m.Assign([]int{3, 1}, "AAA")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, "AAA", m.Get([]int{1, 3}, ""))

	added, err = m.Assign([]int{100, 200}, "FOO")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "FOO", m.Get([]int{200, 100}, ""))
	assert.Equal(t, 7, m.Len())

	_, err = m.Assign(nil, "X")
	assert.ErrorIs(t, err, ErrEmptySet)
}

func TestMapSupersets(t *testing.T) {
	testCases := []struct {
		query    []int
		mode     Mode
		expected []Entry[int, string]
	}{
		{query: []int{3, 5}, mode: Pairs, expected: pairs([]int{1, 3, 5}, "B", []int{2, 3, 5}, "F")},
		{query: []int{1}, mode: Pairs, expected: pairs([]int{1, 2, 4}, "D", []int{1, 3}, "A", []int{1, 3, 5}, "B", []int{1, 4}, "C")},
		{query: []int{1, 2, 5}, mode: Pairs, expected: pairs()},
		{query: []int{3, 5}, mode: Keys, expected: keys([]int{1, 3, 5}, []int{2, 3, 5})},
		{query: []int{1}, mode: Keys, expected: keys([]int{1, 2, 4}, []int{1, 3}, []int{1, 3, 5}, []int{1, 4})},
		{query: []int{1, 2, 5}, mode: Keys, expected: keys()},
		{query: []int{3, 5}, mode: Values, expected: values("B", "F")},
		{query: []int{1}, mode: Values, expected: values("D", "A", "B", "C")},
		{query: []int{1, 2, 5}, mode: Values, expected: values()},
	}

	for _, strategy := range strategies {
		m := newSampleMap(t, strategy)
		for _, tc := range testCases {
			assert.Equal(t, tc.expected, m.Supersets(tc.query, tc.mode), "Supersets(%v, %s) %s", tc.query, tc.mode, strategy)
			assert.Equal(t, tc.expected, append([]Entry[int, string]{}, slices.Collect(m.IterSupersets(tc.query, tc.mode))...))
			assert.Equal(t, tc.expected, drain(m.SupersetCursor(tc.query, tc.mode)))
		}
		assert.True(t, m.HasSuperset([]int{3, 5}))
		assert.False(t, m.HasSuperset([]int{1, 2, 5}))
	}
}

func TestMapSubsets(t *testing.T) {
	testCases := []struct {
		query    []int
		mode     Mode
		expected []Entry[int, string]
	}{
		{query: []int{1, 2, 4, 11}, mode: Pairs, expected: pairs([]int{1, 2, 4}, "D", []int{1, 4}, "C", []int{2, 4}, "E")},
		{query: []int{1, 2}, mode: Pairs, expected: pairs()},
		{query: []int{0, 1, 3, 5}, mode: Pairs, expected: pairs([]int{1, 3}, "A", []int{1, 3, 5}, "B")},
		{query: []int{2, 3, 5, 6}, mode: Pairs, expected: pairs([]int{2, 3, 5}, "F")},
		{query: []int{1, 2, 4, 11}, mode: Keys, expected: keys([]int{1, 2, 4}, []int{1, 4}, []int{2, 4})},
		{query: []int{1, 2, 3, 4, 5}, mode: Keys, expected: keys([]int{1, 2, 4}, []int{1, 3}, []int{1, 3, 5}, []int{1, 4}, []int{2, 3, 5}, []int{2, 4})},
		{query: []int{1, 2, 5}, mode: Keys, expected: keys()},
		{query: []int{1, 2, 4}, mode: Values, expected: values("D", "C", "E")},
		{query: []int{1, 2, 3, 4, 5}, mode: Values, expected: values("D", "A", "B", "C", "F", "E")},
		{query: []int{0, 1, 3, 5}, mode: Values, expected: values("A", "B")},
	}

	for _, strategy := range strategies {
		m := newSampleMap(t, strategy)
		for _, tc := range testCases {
			assert.Equal(t, tc.expected, m.Subsets(tc.query, tc.mode), "Subsets(%v, %s) %s", tc.query, tc.mode, strategy)
			assert.Equal(t, tc.expected, append([]Entry[int, string]{}, slices.Collect(m.IterSubsets(tc.query, tc.mode))...))
			assert.Equal(t, tc.expected, drain(m.SubsetCursor(tc.query, tc.mode)))
		}
		assert.True(t, m.HasSubset([]int{1, 2, 4, 11}))
		assert.False(t, m.HasSubset([]int{1, 2}))
	}
}

// TestMapIterators covers the whole-container views.
func TestMapIterators(t *testing.T) {
	m := newSampleMap(t, trie.Recursive)

	assert.Equal(t,
		pairs([]int{1, 2, 4}, "D", []int{1, 3}, "A", []int{1, 3, 5}, "B", []int{1, 4}, "C", []int{2, 3, 5}, "F", []int{2, 4}, "E"),
		m.Items(Pairs))
	assert.Equal(t, [][]int{{1, 2, 4}, {1, 3}, {1, 3, 5}, {1, 4}, {2, 3, 5}, {2, 4}}, m.Keys())
	assert.Equal(t, []string{"D", "A", "B", "C", "F", "E"}, m.Values())
	assert.Equal(t, m.Items(Values), drain(m.Cursor(Values)))
	assert.Equal(t, "[{1 2 4}: D {1 3}: A {1 3 5}: B {1 4}: C {2 3 5}: F {2 4}: E]", m.String())
}

func TestMapRemove(t *testing.T) {
	m := newSampleMap(t, trie.Iterative)

	assert.True(t, m.Remove([]int{1, 3}))
	assert.Equal(t, "gone", m.Get([]int{1, 3}, "gone"))
	assert.Equal(t, "B", m.Get([]int{1, 3, 5}, ""))
	assert.Equal(t, values("B"), m.Subsets([]int{1, 3, 5}, Values))

	_, err := m.Assign([]int{1, 3}, "A2")
	require.NoError(t, err)
	assert.Equal(t, "A2", m.Get([]int{1, 3}, ""), "a removed key should not keep its old value")
}

func TestMapPrintTree(t *testing.T) {
	m := newSampleMap(t, trie.Iterative)
	expected := `{}
  1
    2
      4: D
    3: A
      5: B
    4: C
  2
    3
      5: F
    4: E
`
	w := new(strings.Builder)
	require.NoError(t, m.PrintTree(w))
	assert.Equal(t, expected, w.String())
}

func TestParseMode(t *testing.T) {
	testCases := []struct {
		name     string
		expected Mode
		wantErr  bool
	}{
		{name: "pairs", expected: Pairs},
		{name: "", expected: Pairs},
		{name: "keys", expected: Keys},
		{name: "values", expected: Values},
		{name: "items", wantErr: true},
	}

	for _, tc := range testCases {
		mode, err := ParseMode(tc.name)
		if tc.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.expected, mode)
		if tc.name != "" {
			assert.Equal(t, tc.name, mode.String())
		}
	}
}
