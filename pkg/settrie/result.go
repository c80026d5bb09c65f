package settrie

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// Mode selects the shape of map query results.
type Mode uint8

const (
	Pairs  Mode = iota // key and value
	Keys               // key only, once per stored set
	Values             // value only
)

func (m Mode) String() string {
	switch m {
	case Pairs:
		return "pairs"
	case Keys:
		return "keys"
	case Values:
		return "values"
	}
	return "unknown"
}

// ParseMode returns the Mode named by s. The empty string means Pairs.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "pairs", "":
		return Pairs, nil
	case "keys":
		return Keys, nil
	case "values":
		return Values, nil
	}
	return Pairs, errors.Errorf("unknown result mode %q", s)
}

// Entry is one query result. Key is left nil in Values mode and Value is left zero in
// Keys mode. Each Entry owns its Key.
type Entry[E any, V any] struct {
	Key   []E
	Value V
}

func (e Entry[E, V]) String() string {
	return fmt.Sprintf("%s: %v", FormatSet(e.Key), e.Value)
}

// FormatSet renders a set as {a b c}.
func FormatSet[E any](set []E) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range set {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, e)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Cursor hands out query results one at a time. Results are computed on demand; a
// Cursor that is dropped before the end releases the walk without any further call.
type Cursor[T any] struct {
	// advance resumes the walk until the next stored set and emits its results,
	// reporting false once the walk is exhausted.
	advance func(emit func(T) bool) bool
	pending []T
	done    bool
}

func newCursor[T any](advance func(emit func(T) bool) bool) *Cursor[T] {
	return &Cursor[T]{advance: advance}
}

// Next returns the following result. ok is false when there are no more.
func (c *Cursor[T]) Next() (result T, ok bool) {
	for len(c.pending) == 0 {
		if c.done || !c.advance(c.buffer) {
			c.done = true
			c.pending = nil
			return result, false
		}
	}
	result = c.pending[0]
	c.pending = c.pending[1:]
	return result, true
}

// All drains the rest of the cursor as a sequence.
func (c *Cursor[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			result, ok := c.Next()
			if !ok || !yield(result) {
				return
			}
		}
	}
}

func (c *Cursor[T]) buffer(result T) bool {
	c.pending = append(c.pending, result)
	return true
}

// project maps every result of c through f.
func project[A, B any](c *Cursor[A], f func(A) B) *Cursor[B] {
	return newCursor(func(emit func(B) bool) bool {
		a, ok := c.Next()
		if !ok {
			return false
		}
		emit(f(a))
		return true
	})
}

// projectSeq maps every element of seq through f.
func projectSeq[A, B any](seq iter.Seq[A], f func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for a := range seq {
			if !yield(f(a)) {
				return
			}
		}
	}
}

// projectSlice maps every element of s through f.
func projectSlice[A, B any](s []A, f func(A) B) []B {
	out := make([]B, 0, len(s))
	for _, a := range s {
		out = append(out, f(a))
	}
	return out
}

func keyOf[E, V any](e Entry[E, V]) []E { return e.Key }

func valueOf[E, V any](e Entry[E, V]) V { return e.Value }
