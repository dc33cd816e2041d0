// Package signals is a fine-grained reactivity engine: reactive cells
// (Ref), derived values (Computed), side effects that re-run on change
// (Effect), deep reactive wrappers over plain maps and slices (Object,
// Array), and reactive collections (Map, Set, WeakMap, WeakSet).
package signals

import "github.com/haldorsen/signals/internal"

// as recovers a concrete T from the internal layer's any-typed storage,
// exactly as the teacher's root package does for every wrapper type.
func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

// warnHandler receives development-mode warnings, e.g. a write to a
// readonly proxy. Default is a no-op; tests and callers that care can
// swap it in with SetWarnHandler.
var warnHandler = func(format string, args ...any) {}

// SetWarnHandler installs fn as the development-mode warning sink.
func SetWarnHandler(fn func(format string, args ...any)) {
	if fn == nil {
		fn = func(string, ...any) {}
	}
	warnHandler = fn
}

func warnf(format string, args ...any) { warnHandler(format, args...) }

// Untrack runs fn with dependency tracking suppressed, regardless of the
// current subscriber.
func Untrack[T any](fn func() T) T {
	return internal.Untrack(fn)
}

// UntrackVoid is Untrack for side-effecting functions with no result.
func UntrackVoid(fn func()) {
	internal.UntrackVoid(fn)
}
