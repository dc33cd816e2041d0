package internal

// EffectOptions mirrors the four knobs spec.md §6 exposes on an effect:
// a custom scheduler in place of the default synchronous run, a stop
// callback, opting into a single permitted self-notification, and
// deferring the first run until the caller asks for it.
type EffectOptions struct {
	Scheduler    func()
	OnStop       func()
	AllowRecurse bool
	Lazy         bool
}

// ReactiveEffect is spec.md §4.2's subscriber: a function that re-runs when
// any dep it read during its last run has changed. Grounded on the
// teacher's internal/effect.go state machine, generalized from the
// teacher's height-based re-run trigger to a DIRTY flag set on
// notification.
type ReactiveEffect struct {
	Subscriber

	fn        func()
	scheduler func()
	onStop    func()

	scope *EffectScope
}

// NewReactiveEffect builds and (unless Lazy) immediately runs an effect,
// per spec.md §4.2. It registers itself with the currently active scope,
// if any, exactly as spec.md §4.5 requires for effects created during a
// scope's run.
func NewReactiveEffect(fn func(), opts EffectOptions) *ReactiveEffect {
	e := &ReactiveEffect{fn: fn, scheduler: opts.Scheduler, onStop: opts.OnStop}
	e.init(e)
	e.Flags = FlagActive | FlagTracking
	if opts.AllowRecurse {
		e.Flags |= FlagAllowRecurse
	}

	if scope := GetRuntime().ActiveScope(); scope != nil {
		scope.addEffect(e)
	}

	if !opts.Lazy {
		e.Run()
	}
	return e
}

// handleNotify implements spec.md §4.2's effect.notify: dedupe against
// NOTIFIED, guard against infinite self-recursion unless ALLOW_RECURSE is
// set, and otherwise enqueue onto the batch's effect list.
func (e *ReactiveEffect) handleNotify() {
	if e.Flags.Has(FlagRunning) {
		if !e.Flags.Has(FlagAllowRecurse) {
			return
		}
		if GetRuntime().ActiveSub() == &e.Subscriber {
			e.Flags |= FlagDirty
			return
		}
	}
	if e.Flags.Has(FlagNotified) {
		return
	}
	e.Flags |= FlagNotified | FlagDirty
	GetRuntime().enqueueEffect(&e.Subscriber)
}

// Run executes the effect's run protocol (spec.md §4.2). A stopped effect
// still runs its function, just without establishing any tracking.
func (e *ReactiveEffect) Run() {
	if !e.Flags.Has(FlagActive) {
		UntrackVoid(e.fn)
		return
	}
	for e.runOnce() {
	}
}

// runOnce performs one tracked execution of the effect body and reports
// whether a self-notification during the run (permitted by ALLOW_RECURSE)
// demands an immediate re-entry rather than leaving the effect queued for
// later, per spec.md §4.2 step 5.
func (e *ReactiveEffect) runOnce() (rerun bool) {
	r := GetRuntime()
	prevSub := r.activeSub
	r.activeSub = &e.Subscriber
	e.Flags |= FlagRunning | FlagTracking
	e.Flags &^= FlagDirty
	e.resetDepsCursor()

	defer func() {
		e.clearStaleDeps()
		r.activeSub = prevSub
		e.Flags &^= FlagRunning

		p := recover()
		if e.Flags.Has(FlagDirty) && e.Flags.Has(FlagAllowRecurse) {
			e.Flags &^= FlagDirty
			rerun = true
		}
		if p != nil && (e.scope == nil || !e.scope.HandlePanic(p)) {
			panic(p)
		}
	}()

	e.fn()
	return false
}

// Dispatch is what the batch drain calls for a queued, dirty effect: the
// user scheduler if one was supplied, otherwise Run directly.
func (e *ReactiveEffect) Dispatch() {
	if e.scheduler != nil {
		e.scheduler()
		return
	}
	e.Run()
}

// Stop implements spec.md §4.2/§5: idempotent, detaches every dependency
// link, unlinks from its owning scope, and invokes the user's onStop hook.
func (e *ReactiveEffect) Stop() {
	if !e.Flags.Has(FlagActive) {
		return
	}
	e.Flags &^= FlagActive
	e.clearAllDeps()
	if e.scope != nil {
		e.scope.removeEffect(e)
		e.scope = nil
	}
	if e.onStop != nil {
		e.onStop()
	}
}

// Pause suppresses dispatch; notifications still mark the effect DIRTY.
func (e *ReactiveEffect) Pause() {
	e.Flags |= FlagPaused
}

// Resume clears PAUSED and, per spec.md §4.2, dispatches immediately if a
// notification arrived while paused.
func (e *ReactiveEffect) Resume() {
	if !e.Flags.Has(FlagPaused) {
		return
	}
	e.Flags &^= FlagPaused
	if e.Flags.Has(FlagDirty) {
		e.Dispatch()
	}
}

// setScope records the owning scope so Stop can unlink from it later.
func (e *ReactiveEffect) setScope(scope *EffectScope) { e.scope = scope }
