package signals

import "reflect"

// proxyMeta is implemented by every reactive container wrapper (Object,
// Array, Map, Set) so ToRaw/IsReactive/IsReadonly/IsShallow/IsProxy work
// uniformly across them. This stands in for spec §4.6's magic property
// keys (IS_REACTIVE, IS_READONLY, IS_SHALLOW, RAW) — Go has no equivalent
// of a get-intercepted sentinel key, but a real typed interface does the
// same job without risking collision with a user's own map keys.
type proxyMeta interface {
	rawValue() any
	isReadonly() bool
	isShallow() bool
}

// ToRaw unwraps v to the plain value it wraps, or returns v unchanged if
// it isn't a reactive container.
func ToRaw(v any) any {
	if pm, ok := v.(proxyMeta); ok {
		return pm.rawValue()
	}
	return v
}

// IsProxy reports whether v is one of this package's reactive container
// wrappers, in any flavor.
func IsProxy(v any) bool {
	_, ok := v.(proxyMeta)
	return ok
}

// IsReactive reports whether v is a non-readonly reactive container
// (either flavor of reactive, shallow or deep).
func IsReactive(v any) bool {
	pm, ok := v.(proxyMeta)
	return ok && !pm.isReadonly()
}

// IsReadonly reports whether v is a readonly reactive container.
func IsReadonly(v any) bool {
	pm, ok := v.(proxyMeta)
	return ok && pm.isReadonly()
}

// IsShallow reports whether v is a shallow-flavored reactive container.
func IsShallow(v any) bool {
	pm, ok := v.(proxyMeta)
	return ok && pm.isShallow()
}

// ptrID returns p's address as a stable identity for Track/Trigger; p is
// always a pointer to one of this package's wrapper structs. See
// SPEC_FULL.md §6, Open Question 3: the wrapper's own address is the
// target identity, not the raw container's.
func ptrID(p any) uintptr { return reflect.ValueOf(p).Pointer() }

const (
	flavorReactive = iota
	flavorReadonly
	flavorShallowReactive
	flavorShallowReadonly
)

// wrapValue gives a raw nested value the same flavor as its containing
// proxy, per spec §4.6's "value returned from a get is wrapped lazily."
// Only plain maps and slices are auto-wrapped; Map/Set/WeakMap/WeakSet
// values are never auto-wrapped on read since Go generics can't express
// "rewrap this raw V as a collection proxy" without knowing its element
// types, so a caller who wants a reactive nested collection constructs it
// explicitly (NewMap, NewSet, ...) and stores the proxy itself as the
// value instead of the raw collection.
func wrapValue(v any, readonly, shallow bool) any {
	if shallow {
		return v
	}
	switch t := v.(type) {
	case map[string]any:
		if readonly {
			return Readonly(t)
		}
		return Reactive(t)
	case []any:
		if readonly {
			return ReadonlyArray(t)
		}
		return ReactiveArray(t)
	default:
		return v
	}
}
