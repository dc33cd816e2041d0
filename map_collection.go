package signals

import (
	"fmt"
	"iter"

	"github.com/haldorsen/signals/internal"
)

// Map is the collection handler of spec §4.7 applied to a generic
// key/value map. Unlike Object/Array, Go generics can't express a
// package-level proxy-dedup cache across arbitrary K/V instantiations, so
// two NewMap calls over the same raw map produce two distinct proxies
// instead of being deduplicated, each tracking under its own address: a
// write through one does not notify readers of the other — the one
// place this module's Go shape can't reach full parity with spec §8's
// "reactive(o) === reactive(o)" invariant, documented in DESIGN.md.
type Map[K comparable, V any] struct {
	raw      map[K]V
	readonly bool
	shallow  bool
}

// NewMap wraps raw as a reactive map. Values are returned as stored: they
// are not wrapped into reactive containers and stored refs are not
// unwrapped.
func NewMap[K comparable, V any](raw map[K]V) *Map[K, V] {
	m := &Map[K, V]{raw: raw}
	internal.RegisterTarget(m, ptrID(m))
	return m
}

// NewReadonlyMap wraps raw so every read tracks but every write is a no-op.
func NewReadonlyMap[K comparable, V any](raw map[K]V) *Map[K, V] {
	m := &Map[K, V]{raw: raw, readonly: true}
	internal.RegisterTarget(m, ptrID(m))
	return m
}

func mapKey(k any) internal.Key { return internal.StringKey(fmt.Sprint(k)) }

// Get tracks key (and, per spec §4.7, returns the zero value if absent).
func (m *Map[K, V]) Get(key K) V {
	internal.Track(ptrID(m), mapKey(key))
	return m.raw[key]
}

// Has tracks key and reports whether it is present.
func (m *Map[K, V]) Has(key K) bool {
	internal.Track(ptrID(m), mapKey(key))
	_, ok := m.raw[key]
	return ok
}

// Size tracks IterateKey and returns the raw map's size.
func (m *Map[K, V]) Size() int {
	internal.Track(ptrID(m), internal.IterateKey)
	return len(m.raw)
}

// ForEach tracks IterateKey and invokes fn once per entry.
func (m *Map[K, V]) ForEach(fn func(value V, key K)) {
	internal.Track(ptrID(m), internal.IterateKey)
	for k, v := range m.raw {
		fn(v, k)
	}
}

// Keys tracks MapKeyIterateKey, per spec §4.7's note that key-only
// iteration is insensitive to value changes on existing keys.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	internal.Track(ptrID(m), internal.MapKeyIterateKey)
	return func(yield func(K) bool) {
		for k := range m.raw {
			if !yield(k) {
				return
			}
		}
	}
}

// Values tracks IterateKey.
func (m *Map[K, V]) Values() iter.Seq[V] {
	internal.Track(ptrID(m), internal.IterateKey)
	return func(yield func(V) bool) {
		for _, v := range m.raw {
			if !yield(v) {
				return
			}
		}
	}
}

// Entries tracks IterateKey.
func (m *Map[K, V]) Entries() iter.Seq2[K, V] {
	internal.Track(ptrID(m), internal.IterateKey)
	return func(yield func(K, V) bool) {
		for k, v := range m.raw {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Set writes key, triggering ADD for a new key or SET when the value
// changed by SameValue; a no-op on a readonly map. The write happens
// before triggering, per spec §4.7, so subscribers observe the
// post-condition.
func (m *Map[K, V]) Set(key K, value V) {
	if m.readonly {
		warnf("signals: set on readonly map ignored")
		return
	}
	old, existed := m.raw[key]
	m.raw[key] = value
	if !existed {
		internal.Trigger(ptrID(m), mapKey(key), internal.IterateKey, internal.MapKeyIterateKey)
		return
	}
	if !internal.SameValue(old, value) {
		internal.Trigger(ptrID(m), mapKey(key), internal.IterateKey)
	}
}

// Delete removes key, triggering DELETE only if it existed.
func (m *Map[K, V]) Delete(key K) bool {
	if m.readonly {
		warnf("signals: delete on readonly map ignored")
		return false
	}
	if _, existed := m.raw[key]; !existed {
		return false
	}
	delete(m.raw, key)
	internal.Trigger(ptrID(m), mapKey(key), internal.IterateKey, internal.MapKeyIterateKey)
	return true
}

// Clear empties the map, triggering CLEAR only if it was non-empty.
func (m *Map[K, V]) Clear() {
	if m.readonly {
		warnf("signals: clear on readonly map ignored")
		return
	}
	if len(m.raw) == 0 {
		return
	}
	clear(m.raw)
	internal.Trigger(ptrID(m), internal.IterateKey, internal.MapKeyIterateKey)
}

func (m *Map[K, V]) rawValue() any    { return m.raw }
func (m *Map[K, V]) isReadonly() bool { return m.readonly }
func (m *Map[K, V]) isShallow() bool  { return m.shallow }
