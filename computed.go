package signals

import "github.com/haldorsen/signals/internal"

// Computed is a derived reactive value: its function re-runs lazily, only
// when read after one of its dependencies has changed.
type Computed[T any] struct {
	inner *internal.Computed
}

// NewComputed creates a readonly computed from get.
func NewComputed[T any](get func(old T) T) *Computed[T] {
	return &Computed[T]{
		inner: internal.NewComputed(func(old any) any {
			return get(as[T](old))
		}, nil),
	}
}

// NewWritableComputed creates a computed with both a getter and a setter,
// per spec §4.3.
func NewWritableComputed[T any](get func(old T) T, set func(T)) *Computed[T] {
	return &Computed[T]{
		inner: internal.NewComputed(func(old any) any {
			return get(as[T](old))
		}, func(v any) {
			set(as[T](v))
		}),
	}
}

// Value reads (and, if stale, recomputes) the cached value.
func (c *Computed[T]) Value() T {
	return as[T](c.inner.Value())
}

// SetValue invokes the computed's setter, if any; a no-op on a readonly
// computed.
func (c *Computed[T]) SetValue(v T) {
	c.inner.Set(v)
}

func (c *Computed[T]) getAny() any   { return c.Value() }
func (c *Computed[T]) setAny(v any)  { c.SetValue(as[T](v)) }
func (c *Computed[T]) shallow() bool { return false }
