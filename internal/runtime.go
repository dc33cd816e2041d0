package internal

import "sync"

// Runtime is the explicit "ReactivityRuntime" spec.md §9 asks for in place
// of uncontrolled singletons: one per goroutine (see runtime_default.go /
// runtime_wasm.go), holding the active subscriber/scope, the batch
// scheduler's queues and depth, the global version counter, and the
// per-target dependency tables. Grounded on the teacher's
// internal/runtime.go, whose Runtime bundles a heap/tracker/batcher/
// scheduler/queues the same way; the fields differ because the scheduling
// model here is the spec's version-based push/pull graph, not the
// teacher's height-ordered heap.
type Runtime struct {
	activeSub   *Subscriber
	activeScope *EffectScope

	trackingDepth int // >0 while inside Untrack; suppresses Track regardless of activeSub

	globalVersion uint64
	batchDepth    int

	computedQueueHead, computedQueueTail *Subscriber
	effectQueueHead, effectQueueTail     *Subscriber

	// targetsMu guards targets. Every other field is only ever touched by
	// the goroutine this Runtime belongs to (spec.md §5: "no locking is
	// required" for single-threaded execution); targets is the one
	// exception, since runtime.AddCleanup callbacks in targetmap.go run on
	// a GC-internal goroutine, not this Runtime's own.
	targetsMu sync.Mutex
	targets   map[uintptr]map[Key]*Dep
}

func newRuntime() *Runtime {
	return &Runtime{
		targets: make(map[uintptr]map[Key]*Dep),
	}
}

// ActiveSub returns the subscriber currently running on this goroutine, or
// nil.
func (r *Runtime) ActiveSub() *Subscriber { return r.activeSub }

// ActiveScope returns the effect scope currently current on this goroutine,
// or nil.
func (r *Runtime) ActiveScope() *EffectScope { return r.activeScope }

// SetActiveScope installs scope as current and returns the previous one so
// callers can restore it.
func (r *Runtime) SetActiveScope(scope *EffectScope) *EffectScope {
	prev := r.activeScope
	r.activeScope = scope
	return prev
}

func (r *Runtime) canTrack() bool {
	return r.trackingDepth == 0 && r.activeSub != nil && r.activeSub.Flags.Has(FlagTracking)
}

// Untrack runs fn with dependency tracking suppressed, per spec.md §6.
func Untrack[T any](fn func() T) T {
	r := GetRuntime()
	r.trackingDepth++
	defer func() { r.trackingDepth-- }()
	return fn()
}

// UntrackVoid is Untrack for side-effecting functions with no result.
func UntrackVoid(fn func()) {
	Untrack(func() any {
		fn()
		return nil
	})
}

// GlobalVersion returns the process-wide (well: goroutine-wide, see
// SPEC_FULL.md §2) monotonic counter bumped on every Trigger.
func (r *Runtime) GlobalVersion() uint64 { return r.globalVersion }
