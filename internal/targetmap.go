package internal

import "runtime"

// Track and Trigger are the explicit get/set-style API spec.md §9 calls for
// in hosts without a native Proxy: every reactive container (Object, Array,
// Map, Set, Ref, ...) calls these directly instead of relying on language
// interception. target is the identity of the reactive container — in
// practice, the address of whatever wrapper struct the caller holds (see
// SPEC_FULL.md §6.3) — and key is a Key as defined in key.go.

// Track registers the active subscriber, if any, as observing
// (target, key). It is a no-op outside any tracking context, exactly as
// spec.md §4.1 specifies for the bare track() entry point.
func Track(target uintptr, key Key) {
	r := GetRuntime()
	if !r.canTrack() {
		return
	}
	dep := r.depFor(target, key)
	dep.track(r.activeSub)
}

// Trigger bumps the global version and the version of (target, key)'s Dep,
// if one exists, and notifies its subscribers. Callers that need the
// auxiliary deps spec.md §4.1 describes (ITERATE_KEY, MAP_KEY_ITERATE_KEY,
// ARRAY_LENGTH) pass every affected key to one Trigger call, so all of
// them are bumped and notified before the batch drains; every container
// type here performs the mutation first and triggers after (spec.md §4.7's
// "operation is performed before triggering in all write methods").
func Trigger(target uintptr, keys ...Key) {
	r := GetRuntime()
	r.globalVersion++
	r.batchDepth++
	defer func() {
		r.batchDepth--
		if r.batchDepth == 0 {
			drain(r)
		}
	}()

	r.targetsMu.Lock()
	table, ok := r.targets[target]
	r.targetsMu.Unlock()
	if !ok {
		return
	}
	for _, key := range keys {
		dep, ok := table[key]
		if !ok {
			continue
		}
		dep.version++
		dep.notify()
	}
}

// depFor resolves (or lazily creates) the Dep for (target, key).
func (r *Runtime) depFor(target uintptr, key Key) *Dep {
	r.targetsMu.Lock()
	defer r.targetsMu.Unlock()

	table, ok := r.targets[target]
	if !ok {
		table = make(map[Key]*Dep)
		r.targets[target] = table
	}
	dep, ok := table[key]
	if !ok {
		dep = NewDep()
		table[key] = dep
	}
	return dep
}

// RegisterTarget arranges for target's dep table to be evicted once proxy
// becomes unreachable. Every reactive container constructor calls this
// once, right after computing its own address as target, so that a
// container's tracking state doesn't outlive the container itself — the
// Go-idiomatic equivalent of spec.md §3's "weak reference" target map,
// since Go's `weak` package can anchor a *value* but a bare uintptr isn't
// something a weak.Pointer can key on; runtime.AddCleanup is the stdlib
// hook that actually fires when the object goes away (see
// JoaoHenriqueBarbosa-maya/internal/reactive/memo.go for the pack's other
// use of Go 1.24's weak-memory facilities, there via weak.Pointer itself).
func RegisterTarget[T any](proxy *T, target uintptr) {
	// Capture the creating goroutine's Runtime directly: the cleanup
	// callback below runs on a dedicated runtime-internal goroutine, so a
	// fresh GetRuntime() call there would resolve to an unrelated Runtime.
	r := GetRuntime()
	runtime.AddCleanup(proxy, func(target uintptr) {
		r.targetsMu.Lock()
		delete(r.targets, target)
		r.targetsMu.Unlock()
	}, target)
}
