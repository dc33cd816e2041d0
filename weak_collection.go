package signals

import (
	"fmt"
	"weak"

	"github.com/haldorsen/signals/internal"
)

// WeakMap supplements spec §4.7's bare mention of WeakMap: a pointer-keyed
// map that holds its keys through the stdlib `weak` package, so it never
// keeps a key alive. Once a key is collected its entry can no longer be
// looked up, but the entry (and its value) is not removed from the
// underlying map. Get/Has track and Set/Delete
// trigger like Map's corresponding methods; there is no iteration surface
// to track, since a WeakMap is non-enumerable by construction.
type WeakMap[K, V any] struct {
	raw map[weak.Pointer[K]]V
}

// NewWeakMap creates an empty weak map.
func NewWeakMap[K, V any]() *WeakMap[K, V] {
	w := &WeakMap[K, V]{raw: make(map[weak.Pointer[K]]V)}
	internal.RegisterTarget(w, ptrID(w))
	return w
}

func weakKey(key any) internal.Key { return internal.StringKey(fmt.Sprintf("%p", key)) }

// Get tracks key and returns its value, or the zero value if absent.
func (w *WeakMap[K, V]) Get(key *K) V {
	internal.Track(ptrID(w), weakKey(key))
	return w.raw[weak.Make(key)]
}

// Has tracks key and reports whether it is present.
func (w *WeakMap[K, V]) Has(key *K) bool {
	internal.Track(ptrID(w), weakKey(key))
	_, ok := w.raw[weak.Make(key)]
	return ok
}

// Set writes key, triggering ADD for a new key or SET when the value
// changed by SameValue.
func (w *WeakMap[K, V]) Set(key *K, value V) *WeakMap[K, V] {
	wp := weak.Make(key)
	old, existed := w.raw[wp]
	w.raw[wp] = value
	if !existed {
		internal.Trigger(ptrID(w), weakKey(key))
	} else if !internal.SameValue(old, value) {
		internal.Trigger(ptrID(w), weakKey(key))
	}
	return w
}

// Delete removes key, triggering DELETE only if it existed.
func (w *WeakMap[K, V]) Delete(key *K) bool {
	wp := weak.Make(key)
	if _, existed := w.raw[wp]; !existed {
		return false
	}
	delete(w.raw, wp)
	internal.Trigger(ptrID(w), weakKey(key))
	return true
}

// WeakSet is WeakMap's set-shaped sibling.
type WeakSet[T any] struct {
	raw map[weak.Pointer[T]]struct{}
}

// NewWeakSet creates an empty weak set.
func NewWeakSet[T any]() *WeakSet[T] {
	s := &WeakSet[T]{raw: make(map[weak.Pointer[T]]struct{})}
	internal.RegisterTarget(s, ptrID(s))
	return s
}

// Has tracks value and reports whether it is a member.
func (s *WeakSet[T]) Has(value *T) bool {
	internal.Track(ptrID(s), weakKey(value))
	_, ok := s.raw[weak.Make(value)]
	return ok
}

// Add inserts value, triggering ADD only if it was not already a member.
func (s *WeakSet[T]) Add(value *T) *WeakSet[T] {
	wp := weak.Make(value)
	if _, existed := s.raw[wp]; existed {
		return s
	}
	s.raw[wp] = struct{}{}
	internal.Trigger(ptrID(s), weakKey(value))
	return s
}

// Delete removes value, triggering DELETE only if it existed.
func (s *WeakSet[T]) Delete(value *T) bool {
	wp := weak.Make(value)
	if _, existed := s.raw[wp]; !existed {
		return false
	}
	delete(s.raw, wp)
	internal.Trigger(ptrID(s), weakKey(value))
	return true
}
