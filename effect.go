package signals

import "github.com/haldorsen/signals/internal"

// EffectOptions mirrors internal.EffectOptions at the public surface.
type EffectOptions struct {
	// Scheduler, if set, is invoked instead of re-running fn directly when
	// the effect becomes dirty.
	Scheduler func()
	// OnStop runs once, when the effect is stopped.
	OnStop func()
	// AllowRecurse permits a single self-triggering re-entry per run.
	AllowRecurse bool
	// Lazy defers the first run until Effect.Run is called explicitly.
	Lazy bool
}

// Effect is a reactive side effect: fn re-runs whenever a dependency it
// read during its last run changes.
type Effect struct {
	inner *internal.ReactiveEffect
}

// NewEffect creates (and, unless Lazy, immediately runs) an effect.
func NewEffect(fn func(), opts ...EffectOptions) *Effect {
	var o EffectOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	return &Effect{inner: internal.NewReactiveEffect(fn, internal.EffectOptions{
		Scheduler:    o.Scheduler,
		OnStop:       o.OnStop,
		AllowRecurse: o.AllowRecurse,
		Lazy:         o.Lazy,
	})}
}

// Run executes the effect's run protocol directly, mainly useful when
// constructed with Lazy: true.
func (e *Effect) Run() { e.inner.Run() }

// Stop deactivates the effect: it detaches from every dependency and will
// not run again.
func (e *Effect) Stop() { e.inner.Stop() }

// Pause suppresses dispatch until Resume; notifications received while
// paused still mark the effect dirty.
func (e *Effect) Pause() { e.inner.Pause() }

// Resume clears Pause and dispatches immediately if a notification arrived
// while paused.
func (e *Effect) Resume() { e.inner.Resume() }
