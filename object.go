package signals

import (
	"reflect"

	"github.com/haldorsen/signals/internal"
)

// Object is the base handler of spec §4.6 applied to Go's closest analogue
// of a plain JS object: a string-keyed map. Track/Trigger calls route
// through internal.Track/internal.Trigger using the Object's own address
// as target identity.
type Object struct {
	raw      map[string]any
	readonly bool
	shallow  bool
}

func mapIdentity(m map[string]any) uintptr {
	if m == nil {
		return 0
	}
	return reflect.ValueOf(m).Pointer()
}

var objectCaches = [4]*internal.ProxyCache[Object]{
	internal.NewProxyCache[Object](),
	internal.NewProxyCache[Object](),
	internal.NewProxyCache[Object](),
	internal.NewProxyCache[Object](),
}

func objectFlavor(raw map[string]any, flavor int, readonly, shallow bool) *Object {
	key := mapIdentity(raw)
	if key != 0 {
		if cached, ok := objectCaches[flavor].Get(key); ok {
			return cached
		}
	}
	o := &Object{raw: raw, readonly: readonly, shallow: shallow}
	internal.RegisterTarget(o, ptrID(o))
	if key != 0 {
		objectCaches[flavor].Store(key, o)
	}
	return o
}

// Reactive wraps raw as a deep reactive object: nested maps/slices are
// wrapped lazily on Get, ref-valued entries unwrap transparently.
func Reactive(raw map[string]any) *Object { return objectFlavor(raw, flavorReactive, false, false) }

// Readonly wraps raw so every read tracks but every write is a no-op.
func Readonly(raw map[string]any) *Object { return objectFlavor(raw, flavorReadonly, true, false) }

// ShallowReactive wraps raw reactively without deep-wrapping nested values.
func ShallowReactive(raw map[string]any) *Object {
	return objectFlavor(raw, flavorShallowReactive, false, true)
}

// ShallowReadonly wraps raw readonly without deep-wrapping nested values.
func ShallowReadonly(raw map[string]any) *Object {
	return objectFlavor(raw, flavorShallowReadonly, true, true)
}

// Get reads key, tracking the caller and unwrapping a stored ref or nested
// container per spec §4.6.
func (o *Object) Get(key string) any {
	internal.Track(ptrID(o), internal.StringKey(key))
	v, ok := o.raw[key]
	if !ok {
		return nil
	}
	if !o.shallow {
		if unwrapped, isRef := unwrapRef(v); isRef {
			return unwrapped
		}
	}
	return wrapValue(v, o.readonly, o.shallow)
}

// Has reports whether key exists, tracking the caller.
func (o *Object) Has(key string) bool {
	internal.Track(ptrID(o), internal.StringKey(key))
	_, ok := o.raw[key]
	return ok
}

// Keys returns the object's own keys, tracking IterateKey.
func (o *Object) Keys() []string {
	internal.Track(ptrID(o), internal.IterateKey)
	keys := make([]string, 0, len(o.raw))
	for k := range o.raw {
		keys = append(keys, k)
	}
	return keys
}

// Set writes key, triggering ADD for a new key or SET for a changed one
// (by SameValue); a no-op on a readonly object. Writing through a
// previously stored ref assigns the ref's value instead of replacing the
// slot, per spec §4.6.
func (o *Object) Set(key string, v any) {
	if o.readonly {
		warnf("signals: set on readonly object key %q ignored", key)
		return
	}
	old, existed := o.raw[key]
	if existed && !o.shallow && assignThroughRef(old, v) {
		return
	}
	if existed && internal.SameValue(old, v) {
		return
	}
	o.raw[key] = v
	if !existed {
		internal.Trigger(ptrID(o), internal.StringKey(key), internal.IterateKey)
		return
	}
	internal.Trigger(ptrID(o), internal.StringKey(key))
}

// Delete removes key, triggering DELETE only if it existed; a no-op on a
// readonly object (which still reports success, per spec §4.6's proxy
// invariant).
func (o *Object) Delete(key string) bool {
	if o.readonly {
		warnf("signals: delete on readonly object key %q ignored", key)
		return true
	}
	if _, existed := o.raw[key]; !existed {
		return true
	}
	delete(o.raw, key)
	internal.Trigger(ptrID(o), internal.StringKey(key), internal.IterateKey)
	return true
}

func (o *Object) rawValue() any    { return o.raw }
func (o *Object) isReadonly() bool { return o.readonly }
func (o *Object) isShallow() bool  { return o.shallow }
