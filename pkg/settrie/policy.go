package settrie

import "slices"

// policy turns one stored set found by a query into results, shaped by mode. key is the
// engine's path buffer and must be copied before it is kept. It returns false as soon
// as emit does.
type policy[E, S, V any] func(key []E, slot S, mode Mode, emit func(Entry[E, V]) bool) bool

// setPolicy emits the stored set itself; sets carry no value, mode is irrelevant.
func setPolicy[E any](key []E, _ struct{}, _ Mode, emit func(Entry[E, struct{}]) bool) bool {
	return emit(Entry[E, struct{}]{Key: slices.Clone(key)})
}

// mapPolicy emits the stored set with its single value.
func mapPolicy[E, V any](key []E, value V, mode Mode, emit func(Entry[E, V]) bool) bool {
	switch mode {
	case Keys:
		return emit(Entry[E, V]{Key: slices.Clone(key)})
	case Values:
		return emit(Entry[E, V]{Value: value})
	default:
		return emit(Entry[E, V]{Key: slices.Clone(key), Value: value})
	}
}

// multiMapPolicy emits one result per value in insertion order, or the key once in
// Keys mode.
func multiMapPolicy[E, V any](key []E, values []V, mode Mode, emit func(Entry[E, V]) bool) bool {
	if mode == Keys {
		return emit(Entry[E, V]{Key: slices.Clone(key)})
	}
	for _, value := range values {
		entry := Entry[E, V]{Value: value}
		if mode == Pairs {
			entry.Key = slices.Clone(key)
		}
		if !emit(entry) {
			return false
		}
	}
	return true
}
