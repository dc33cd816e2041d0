package signals

import (
	"reflect"
	"strconv"

	"github.com/haldorsen/signals/internal"
)

// Array is the base handler of spec §4.6 applied to a Go slice. Like
// Object, it routes through internal.Track/internal.Trigger keyed on its
// own address.
type Array struct {
	raw      []any
	readonly bool
	shallow  bool
}

func sliceIdentity(s []any) uintptr {
	if len(s) == 0 {
		return 0
	}
	return reflect.ValueOf(s).Pointer()
}

var arrayCaches = [4]*internal.ProxyCache[Array]{
	internal.NewProxyCache[Array](),
	internal.NewProxyCache[Array](),
	internal.NewProxyCache[Array](),
	internal.NewProxyCache[Array](),
}

func arrayFlavor(raw []any, flavor int, readonly, shallow bool) *Array {
	key := sliceIdentity(raw)
	if key != 0 {
		if cached, ok := arrayCaches[flavor].Get(key); ok {
			return cached
		}
	}
	a := &Array{raw: raw, readonly: readonly, shallow: shallow}
	internal.RegisterTarget(a, ptrID(a))
	if key != 0 {
		arrayCaches[flavor].Store(key, a)
	}
	return a
}

// ReactiveArray wraps raw as a deep reactive array.
func ReactiveArray(raw []any) *Array { return arrayFlavor(raw, flavorReactive, false, false) }

// ReadonlyArray wraps raw so every read tracks but every write is a no-op.
func ReadonlyArray(raw []any) *Array { return arrayFlavor(raw, flavorReadonly, true, false) }

// ShallowReactiveArray wraps raw reactively without deep-wrapping elements.
func ShallowReactiveArray(raw []any) *Array {
	return arrayFlavor(raw, flavorShallowReactive, false, true)
}

// ShallowReadonlyArray wraps raw readonly without deep-wrapping elements.
func ShallowReadonlyArray(raw []any) *Array {
	return arrayFlavor(raw, flavorShallowReadonly, true, true)
}

// Len returns the array's length, tracking ArrayLength.
func (a *Array) Len() int {
	internal.Track(ptrID(a), internal.ArrayLength)
	return len(a.raw)
}

// Get reads index i, tracking the caller and unwrapping a stored ref or
// nested container. Out-of-range reads return nil, same as a missing key.
func (a *Array) Get(i int) any {
	internal.Track(ptrID(a), internal.StringKey(strconv.Itoa(i)))
	if i < 0 || i >= len(a.raw) {
		return nil
	}
	v := a.raw[i]
	if !a.shallow {
		if unwrapped, isRef := unwrapRef(v); isRef {
			return unwrapped
		}
	}
	return wrapValue(v, a.readonly, a.shallow)
}

// Set writes index i, extending the array (padding with nil) if i is past
// the current end. A no-op on a readonly array.
func (a *Array) Set(i int, v any) {
	if a.readonly {
		warnf("signals: set on readonly array index %d ignored", i)
		return
	}
	if i < 0 {
		return
	}
	if i < len(a.raw) {
		old := a.raw[i]
		if !a.shallow && assignThroughRef(old, v) {
			return
		}
		if internal.SameValue(old, v) {
			return
		}
		a.raw[i] = v
		internal.Trigger(ptrID(a), internal.StringKey(strconv.Itoa(i)))
		return
	}
	for len(a.raw) < i {
		a.raw = append(a.raw, nil)
	}
	a.raw = append(a.raw, v)
	internal.Trigger(ptrID(a), internal.StringKey(strconv.Itoa(i)), internal.ArrayLength, internal.IterateKey)
}

// Push appends vs, returning the new length. Per spec §4.6, the mutation
// runs with tracking disabled (it reads its own length internally), then
// triggers once.
func (a *Array) Push(vs ...any) int {
	if a.readonly {
		warnf("signals: push on readonly array ignored")
		return len(a.raw)
	}
	internal.UntrackVoid(func() {
		a.raw = append(a.raw, vs...)
	})
	internal.Trigger(ptrID(a), internal.ArrayLength, internal.IterateKey)
	return len(a.raw)
}

// Pop removes and returns the last element, or nil if empty.
func (a *Array) Pop() any {
	if a.readonly {
		warnf("signals: pop on readonly array ignored")
		return nil
	}
	var v any
	internal.UntrackVoid(func() {
		if len(a.raw) == 0 {
			return
		}
		v = a.raw[len(a.raw)-1]
		a.raw = a.raw[:len(a.raw)-1]
	})
	internal.Trigger(ptrID(a), internal.ArrayLength, internal.IterateKey)
	return v
}

// Shift removes and returns the first element, or nil if empty.
func (a *Array) Shift() any {
	if a.readonly {
		warnf("signals: shift on readonly array ignored")
		return nil
	}
	var v any
	internal.UntrackVoid(func() {
		if len(a.raw) == 0 {
			return
		}
		v = a.raw[0]
		a.raw = a.raw[1:]
	})
	internal.Trigger(ptrID(a), internal.ArrayLength, internal.IterateKey)
	return v
}

// Unshift prepends vs, returning the new length.
func (a *Array) Unshift(vs ...any) int {
	if a.readonly {
		warnf("signals: unshift on readonly array ignored")
		return len(a.raw)
	}
	internal.UntrackVoid(func() {
		merged := make([]any, 0, len(vs)+len(a.raw))
		merged = append(merged, vs...)
		merged = append(merged, a.raw...)
		a.raw = merged
	})
	internal.Trigger(ptrID(a), internal.ArrayLength, internal.IterateKey)
	return len(a.raw)
}

// Splice removes deleteCount elements starting at start and inserts vs in
// their place, returning the removed elements.
func (a *Array) Splice(start, deleteCount int, vs ...any) []any {
	if a.readonly {
		warnf("signals: splice on readonly array ignored")
		return nil
	}
	var removed []any
	internal.UntrackVoid(func() {
		if start < 0 {
			start = 0
		}
		if start > len(a.raw) {
			start = len(a.raw)
		}
		end := start + deleteCount
		if end < start {
			end = start
		}
		if end > len(a.raw) {
			end = len(a.raw)
		}
		removed = append([]any{}, a.raw[start:end]...)
		merged := make([]any, 0, start+len(vs)+len(a.raw)-end)
		merged = append(merged, a.raw[:start]...)
		merged = append(merged, vs...)
		merged = append(merged, a.raw[end:]...)
		a.raw = merged
	})
	internal.Trigger(ptrID(a), internal.ArrayLength, internal.IterateKey)
	return removed
}

// Includes, IndexOf, and LastIndexOf each search by both wrapped and raw
// element identity, per spec §4.6's array method patching note — a caller
// may be holding either the raw value or the wrapped one it got from Get.
func (a *Array) Includes(v any) bool { return a.IndexOf(v) != -1 }

func (a *Array) IndexOf(v any) int {
	internal.Track(ptrID(a), internal.ArrayLength)
	raw := ToRaw(v)
	for i, el := range a.raw {
		if a.matches(el, v, raw) {
			return i
		}
	}
	return -1
}

func (a *Array) LastIndexOf(v any) int {
	internal.Track(ptrID(a), internal.ArrayLength)
	raw := ToRaw(v)
	for i := len(a.raw) - 1; i >= 0; i-- {
		if a.matches(a.raw[i], v, raw) {
			return i
		}
	}
	return -1
}

func (a *Array) matches(el, v, rawV any) bool {
	if internal.SameValue(el, v) || internal.SameValue(el, rawV) {
		return true
	}
	if internal.SameValue(wrapValue(el, a.readonly, a.shallow), v) {
		return true
	}
	// Maps and slices can't be compared with ==, so a raw one is matched by
	// the identity of its backing storage.
	ev, rv := reflect.ValueOf(el), reflect.ValueOf(rawV)
	switch ev.Kind() {
	case reflect.Map, reflect.Slice:
		return ev.Kind() == rv.Kind() && ev.Type() == rv.Type() && ev.Pointer() == rv.Pointer() &&
			(ev.Kind() == reflect.Map || ev.Len() == rv.Len())
	}
	return false
}

func (a *Array) rawValue() any    { return a.raw }
func (a *Array) isReadonly() bool { return a.readonly }
func (a *Array) isShallow() bool  { return a.shallow }
