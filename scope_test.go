package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectScope(t *testing.T) {
	t.Run("stops owned effects and runs cleanups in order", func(t *testing.T) {
		log := []string{}

		count := NewRef(0)
		scope := NewEffectScope()

		scope.Run(func() {
			NewEffect(func() {
				log = append(log, "effect ran")
				count.Value()
			})
			scope.OnDispose(func() { log = append(log, "cleanup 1") })
			scope.OnDispose(func() { log = append(log, "cleanup 2") })
		})

		scope.Stop()
		count.SetValue(1) // owned effect is stopped, should not run again

		assert.Equal(t, []string{
			"effect ran",
			"cleanup 1",
			"cleanup 2",
		}, log)
	})

	t.Run("stopping a parent cascades to children", func(t *testing.T) {
		log := []string{}

		parent := NewEffectScope()
		parent.Run(func() {
			child := NewEffectScope()
			child.Run(func() {
				child.OnDispose(func() { log = append(log, "child disposed") })
			})
			parent.OnDispose(func() { log = append(log, "parent disposed") })
		})

		parent.Stop()

		// spec order: a scope runs its own cleanups before recursing into
		// children.
		assert.Equal(t, []string{"parent disposed", "child disposed"}, log)
	})

	t.Run("detached scope survives its creating parent's stop", func(t *testing.T) {
		log := []string{}

		parent := NewEffectScope()
		var detached *EffectScope

		parent.Run(func() {
			detached = NewEffectScope(true)
			detached.OnDispose(func() { log = append(log, "detached disposed") })
		})

		parent.Stop()
		assert.Equal(t, []string{}, log)

		detached.Stop()
		assert.Equal(t, []string{"detached disposed"}, log)
	})

	t.Run("pause cascades to owned effects", func(t *testing.T) {
		log := []string{}

		count := NewRef(0)
		scope := NewEffectScope()

		scope.Run(func() {
			NewEffect(func() {
				log = append(log, "ran")
				count.Value()
			})
		})

		scope.Pause()
		count.SetValue(1)
		assert.Equal(t, []string{"ran"}, log)

		scope.Resume()
		assert.Equal(t, []string{"ran", "ran"}, log)
	})

	t.Run("On/Off make a scope current for OnScopeDispose without a closure", func(t *testing.T) {
		log := []string{}

		outer := NewEffectScope()
		inner := NewEffectScope()

		outer.On()
		inner.On()
		OnScopeDispose(func() { log = append(log, "inner disposed") })
		inner.Off()
		OnScopeDispose(func() { log = append(log, "outer disposed") })
		outer.Off()

		inner.Stop()
		outer.Stop()

		assert.Equal(t, []string{"inner disposed", "outer disposed"}, log)
	})
}

func TestOnScopeDispose(t *testing.T) {
	log := []string{}

	scope := NewEffectScope()
	scope.Run(func() {
		OnScopeDispose(func() { log = append(log, "disposed") })
	})
	scope.Stop()

	assert.Equal(t, []string{"disposed"}, log)
}

func TestEffectScopeOnError(t *testing.T) {
	t.Run("catches a panic from an owned effect's body", func(t *testing.T) {
		var caught any

		scope := NewEffectScope()
		count := NewRef(0)

		scope.Run(func() {
			scope.OnError(func(p any) { caught = p })
			NewEffect(func() {
				if count.Value() == 1 {
					panic("boom")
				}
			})
		})

		assert.NotPanics(t, func() { count.SetValue(1) })
		assert.Equal(t, "boom", caught)
	})

	t.Run("re-panics when no catcher is registered", func(t *testing.T) {
		scope := NewEffectScope()
		count := NewRef(0)

		var e *Effect
		scope.Run(func() {
			e = NewEffect(func() {
				if count.Value() == 1 {
					panic("boom")
				}
			}, EffectOptions{Lazy: true})
		})

		count.SetValue(1)
		assert.Panics(t, func() { e.Run() })
	})

	t.Run("a child scope with no catcher defers to its parent's", func(t *testing.T) {
		var caught any
		var child *EffectScope
		var e *Effect

		parent := NewEffectScope()
		parent.OnError(func(p any) { caught = p })

		parent.Run(func() {
			child = NewEffectScope()
			child.Run(func() {
				e = NewEffect(func() { panic("child boom") }, EffectOptions{Lazy: true})
			})
		})

		assert.NotPanics(t, func() { e.Run() })
		assert.Equal(t, "child boom", caught)
	})
}
