package signals

import "github.com/haldorsen/signals/internal"

// EffectScope groups effects and cleanup callbacks so they can be disposed
// together, per spec §4.5.
type EffectScope struct {
	inner *internal.EffectScope
}

// NewEffectScope creates a scope. A detached scope is never linked under
// whatever scope is current at construction time, so it survives its
// parent's Stop.
func NewEffectScope(detached ...bool) *EffectScope {
	d := false
	if len(detached) > 0 {
		d = detached[0]
	}
	return &EffectScope{inner: internal.NewEffectScope(d)}
}

// Run makes the scope current for fn's duration, so effects created inside
// fn are owned by it. Computeds created inside fn route panics to its
// OnError catchers but are not stopped with it.
func (s *EffectScope) Run(fn func()) { s.inner.Run(fn) }

// On makes the scope current without a closure; nestable, undone by a
// matching Off.
func (s *EffectScope) On() { s.inner.On() }

// Off undoes one On.
func (s *EffectScope) Off() { s.inner.Off() }

// OnDispose registers fn to run (in registration order, alongside owned
// effects) when the scope stops.
func (s *EffectScope) OnDispose(fn func()) { s.inner.OnDispose(fn) }

// OnError registers a panic catcher: a panic from an effect or computed
// owned by this scope (or created during its Run) is routed to every
// registered catcher instead of propagating past the run protocol. A
// scope with no catchers of its own defers to its parent scope.
func (s *EffectScope) OnError(fn func(any)) { s.inner.OnError(fn) }

// Stop disposes the scope: stops every owned effect, runs every cleanup,
// and recurses into child scopes.
func (s *EffectScope) Stop() { s.inner.Stop(false) }

// Pause cascades Pause to every owned effect and child scope.
func (s *EffectScope) Pause() { s.inner.Pause() }

// Resume cascades Resume to every owned effect and child scope.
func (s *EffectScope) Resume() { s.inner.Resume() }

// OnScopeDispose registers fn on whatever EffectScope is currently active,
// mirroring the teacher's top-level OnCleanup convenience function. It is
// a no-op if there is no active scope.
func OnScopeDispose(fn func()) {
	if scope := internal.GetRuntime().ActiveScope(); scope != nil {
		scope.OnDispose(fn)
	}
}

// OnScopeError registers fn as a panic catcher on whatever EffectScope is
// currently active; a no-op if there is no active scope.
func OnScopeError(fn func(any)) {
	if scope := internal.GetRuntime().ActiveScope(); scope != nil {
		scope.OnError(fn)
	}
}
