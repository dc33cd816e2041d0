package internal

// Computed is spec.md §4.3's ComputedRefImpl: simultaneously a subscriber
// of whatever it reads and a source (through its own Dep) for whoever
// reads it. Grounded on the teacher's internal/computed.go dual
// role, generalized from the teacher's height-propagation staleness check
// to the spec's globalVersion-snapshot plus per-link-version fast paths.
type Computed struct {
	Subscriber

	dep *Dep

	fn    func(old any) any
	setFn func(any)

	value         any
	hasValue      bool
	versionAtRead uint64 // globalVersion snapshot from the last refresh

	// scope is the EffectScope active when this computed was created, used
	// only to route a panic from fn to OnError catchers (SPEC_FULL.md §2);
	// unlike ReactiveEffect, a Computed is never owned/stopped by a scope.
	scope *EffectScope
}

// NewComputed builds a computed source. setFn may be nil, making the
// computed readonly (writes are then no-ops per spec.md §4.3).
func NewComputed(fn func(old any) any, setFn func(any)) *Computed {
	c := &Computed{fn: fn, setFn: setFn}
	c.init(c)
	c.Flags = FlagDirty | FlagTracking
	c.dep = NewDep()
	c.dep.computed = c
	c.scope = GetRuntime().ActiveScope()
	return c
}

// handleNotify implements spec.md §4.4's "each computed has its NOTIFIED
// cleared and its downstream subs notified": a computed never recomputes
// eagerly on notification and does not mark itself dirty; it only
// propagates the notification downstream (done by the batch drain calling
// c.dep.notify() once this enqueue fires). Whether it recomputes is decided
// lazily, on the next Value() call, by the per-link version check in
// refresh below.
func (c *Computed) handleNotify() {
	if c.Flags.Has(FlagNotified) {
		return
	}
	c.Flags |= FlagNotified
	GetRuntime().enqueueComputed(&c.Subscriber)
}

// Value implements spec.md §4.3's read: track the caller, refresh the
// cache, then fix up the caller-side link's version so a recompute that
// produced no change doesn't look like one to the caller on the next
// fine-grained check.
func (c *Computed) Value() any {
	link := TrackDep(c.dep)
	c.refresh()
	if link != nil {
		link.version = c.dep.version
	}
	return c.value
}

// Set invokes the user setter, if any; a computed built without one is
// readonly and Set is a no-op, per spec.md §4.3.
func (c *Computed) Set(x any) {
	if c.setFn != nil {
		c.setFn(x)
	}
}

// Dep exposes the computed's own source-side Dep, for Link bookkeeping and
// for Computed-as-source chaining elsewhere.
func (c *Computed) Dep() *Dep { return c.dep }

// refresh is refreshComputed from spec.md §4.3.
func (c *Computed) refresh() {
	r := GetRuntime()

	if !c.Flags.Has(FlagDirty) && c.versionAtRead == r.globalVersion {
		return
	}
	c.versionAtRead = r.globalVersion

	if !c.Flags.Has(FlagDirty) && c.hasValue && c.depsFresh() {
		return
	}

	prevSub := r.activeSub
	r.activeSub = &c.Subscriber
	c.Flags |= FlagRunning | FlagTracking
	c.resetDepsCursor()

	oldValue := c.value
	var newValue any
	unchanged := false
	func() {
		defer func() {
			c.clearStaleDeps()
			r.activeSub = prevSub
			c.Flags &^= FlagRunning

			if p := recover(); p != nil {
				if c.scope == nil || !c.scope.HandlePanic(p) {
					panic(p)
				}
				// Caught: treat this refresh as a no-op, per SPEC_FULL.md
				// §2 ("Panics from effect/computed bodies are recovered at
				// the EffectScope's OnError catchers"); the cached value
				// is left untouched rather than guessed at.
				unchanged = true
			}
		}()
		newValue = c.fn(oldValue)
	}()

	if !unchanged && (!c.hasValue || !SameValue(newValue, c.value)) {
		c.value = newValue
		c.hasValue = true
		c.dep.version++
	}
	c.Flags &^= FlagDirty
}

// depsFresh reports whether every upstream link's recorded version still
// matches its dep's current version — the fine-grained check of spec.md
// §4.3 step 3. An upstream computed is refreshed first, so its version only
// counts as changed when its value did.
func (c *Computed) depsFresh() bool {
	for link := c.depsHead; link != nil; link = link.nextDep {
		if up := link.dep.computed; up != nil {
			up.refresh()
		}
		if link.version != link.dep.version {
			return false
		}
	}
	return true
}
