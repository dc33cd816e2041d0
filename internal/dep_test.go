package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepTrackReusesLinkAcrossRuns(t *testing.T) {
	dep := NewDep()
	sub := &Subscriber{}
	sub.init(&countingNotifier{})
	sub.Flags = FlagActive | FlagTracking | FlagRunning

	sub.resetDepsCursor()
	first := dep.track(sub)
	sub.clearStaleDeps()
	assert.NotNil(t, first)

	sub.resetDepsCursor()
	second := dep.track(sub)
	sub.clearStaleDeps()

	assert.Same(t, first, second, "re-tracking the same dep in the same order should reuse the link")
}

func TestDepNotifyWalksAllSubscribers(t *testing.T) {
	dep := NewDep()

	var notified []int
	for i := 0; i < 3; i++ {
		sub := &Subscriber{}
		n := &countingNotifier{id: i, log: &notified}
		sub.init(n)
		sub.Flags = FlagActive | FlagTracking
		dep.track(sub)
	}

	dep.version++
	dep.notify()

	assert.Equal(t, []int{0, 1, 2}, notified)
}

func TestSubscriberClearStaleDepsDetachesUnvisited(t *testing.T) {
	depA := NewDep()
	depB := NewDep()

	sub := &Subscriber{}
	sub.init(&countingNotifier{})
	sub.Flags = FlagActive | FlagTracking | FlagRunning

	sub.resetDepsCursor()
	depA.track(sub)
	depB.track(sub)
	sub.clearStaleDeps()

	// Second run only reads depA; depB's link should be detached.
	sub.resetDepsCursor()
	depA.track(sub)
	sub.clearStaleDeps()

	count := 0
	for range depB.Subs() {
		count++
	}
	assert.Equal(t, 0, count)
}

type countingNotifier struct {
	id  int
	log *[]int
}

func (c *countingNotifier) handleNotify() {
	if c.log != nil {
		*c.log = append(*c.log, c.id)
	}
}
