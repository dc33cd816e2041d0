package signals

import (
	"fmt"
	"iter"

	"github.com/haldorsen/signals/internal"
)

// Set is spec §4.7's set collection handler, backed by a map[T]struct{}
// the way Go idiomatically represents a set.
type Set[T comparable] struct {
	raw      map[T]struct{}
	readonly bool
	shallow  bool
}

// NewSet wraps raw as a reactive set. Members are yielded as stored; they
// are not wrapped into reactive containers.
func NewSet[T comparable](raw map[T]struct{}) *Set[T] {
	s := &Set[T]{raw: raw}
	internal.RegisterTarget(s, ptrID(s))
	return s
}

// NewReadonlySet wraps raw so every read tracks but every write is a
// no-op.
func NewReadonlySet[T comparable](raw map[T]struct{}) *Set[T] {
	s := &Set[T]{raw: raw, readonly: true}
	internal.RegisterTarget(s, ptrID(s))
	return s
}

func setKey(v any) internal.Key { return internal.StringKey(fmt.Sprint(v)) }

// Has tracks value and reports whether it is a member.
func (s *Set[T]) Has(value T) bool {
	internal.Track(ptrID(s), setKey(value))
	_, ok := s.raw[value]
	return ok
}

// Size tracks IterateKey and returns the raw set's size.
func (s *Set[T]) Size() int {
	internal.Track(ptrID(s), internal.IterateKey)
	return len(s.raw)
}

// ForEach tracks IterateKey and invokes fn once per member.
func (s *Set[T]) ForEach(fn func(value T)) {
	internal.Track(ptrID(s), internal.IterateKey)
	for v := range s.raw {
		fn(v)
	}
}

// Values tracks IterateKey and iterates the set's members.
func (s *Set[T]) Values() iter.Seq[T] {
	internal.Track(ptrID(s), internal.IterateKey)
	return func(yield func(T) bool) {
		for v := range s.raw {
			if !yield(v) {
				return
			}
		}
	}
}

// Add inserts value, triggering ADD only if it was not already a member; a
// no-op on a readonly set.
func (s *Set[T]) Add(value T) {
	if s.readonly {
		warnf("signals: add on readonly set ignored")
		return
	}
	if _, existed := s.raw[value]; existed {
		return
	}
	s.raw[value] = struct{}{}
	internal.Trigger(ptrID(s), setKey(value), internal.IterateKey)
}

// Delete removes value, triggering DELETE only if it existed.
func (s *Set[T]) Delete(value T) bool {
	if s.readonly {
		warnf("signals: delete on readonly set ignored")
		return false
	}
	if _, existed := s.raw[value]; !existed {
		return false
	}
	delete(s.raw, value)
	internal.Trigger(ptrID(s), setKey(value), internal.IterateKey)
	return true
}

// Clear empties the set, triggering CLEAR only if it was non-empty.
func (s *Set[T]) Clear() {
	if s.readonly {
		warnf("signals: clear on readonly set ignored")
		return
	}
	if len(s.raw) == 0 {
		return
	}
	clear(s.raw)
	internal.Trigger(ptrID(s), internal.IterateKey)
}

func (s *Set[T]) rawValue() any    { return s.raw }
func (s *Set[T]) isReadonly() bool { return s.readonly }
func (s *Set[T]) isShallow() bool  { return s.shallow }
