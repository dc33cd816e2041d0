package signals

import "github.com/haldorsen/signals/internal"

// refLike is implemented by every Ref[T]/ShallowRef[T] instantiation so
// Object and Array can detect "this stored value is a reactive cell" and
// unwrap it transparently on Get/Set, per spec §4.6 — without knowing T.
// The collection wrappers (Map, Set, WeakMap, WeakSet) store and return
// refs as-is.
type refLike interface {
	getAny() any
	setAny(any)
	shallow() bool
}

// Ref is a single-slot reactive cell: reading tracks, writing triggers
// only when the new value differs from the old one (SameValue).
type Ref[T any] struct {
	dep   *internal.Dep
	value T
}

// NewRef creates a reactive cell seeded with initial.
func NewRef[T any](initial T) *Ref[T] {
	return &Ref[T]{dep: internal.NewDep(), value: initial}
}

// Value reads the current value, tracking the caller if inside a reactive
// context.
func (r *Ref[T]) Value() T {
	internal.TrackDep(r.dep)
	return r.value
}

// SetValue writes a new value, triggering dependents if it changed.
func (r *Ref[T]) SetValue(v T) {
	if internal.SameValue(any(r.value), any(v)) {
		return
	}
	r.value = v
	internal.TriggerDep(r.dep)
}

func (r *Ref[T]) getAny() any  { return r.value }
func (r *Ref[T]) setAny(v any) { r.SetValue(as[T](v)) }
func (r *Ref[T]) shallow() bool { return false }

// ShallowRef behaves like Ref: reading tracks, writing triggers only on a
// SameValue change, and Object/Array unwrap it the same way. Neither type
// makes its value reactive; ShallowRef only reports itself as shallow.
type ShallowRef[T any] struct {
	dep   *internal.Dep
	value T
}

// NewShallowRef creates a shallow reactive cell seeded with initial.
func NewShallowRef[T any](initial T) *ShallowRef[T] {
	return &ShallowRef[T]{dep: internal.NewDep(), value: initial}
}

func (r *ShallowRef[T]) Value() T {
	internal.TrackDep(r.dep)
	return r.value
}

func (r *ShallowRef[T]) SetValue(v T) {
	if internal.SameValue(any(r.value), any(v)) {
		return
	}
	r.value = v
	internal.TriggerDep(r.dep)
}

func (r *ShallowRef[T]) getAny() any   { return r.value }
func (r *ShallowRef[T]) setAny(v any)  { r.SetValue(as[T](v)) }
func (r *ShallowRef[T]) shallow() bool { return true }

// unwrapRef returns (value, true) if v is a ref-like cell, unwrapping one
// level per spec §4.6 ("its .value is transparently returned on get").
func unwrapRef(v any) (any, bool) {
	if rl, ok := v.(refLike); ok {
		return rl.getAny(), true
	}
	return v, false
}

// assignThroughRef writes v into dst if dst currently holds a ref-like
// cell, per spec §4.6's "assigned on set"; it reports whether it did so.
func assignThroughRef(dst any, v any) bool {
	if rl, ok := dst.(refLike); ok {
		rl.setAny(v)
		return true
	}
	return false
}
