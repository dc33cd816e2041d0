package internal

// StartBatch opens (or nests into) a batch, per spec.md §4.4. Grounded on
// the teacher's internal/batcher.go depth counter, generalized from a
// single fn-wrapped batch to the explicit StartBatch/EndBatch bracketing
// spec.md §6 exposes publicly.
func StartBatch() {
	GetRuntime().batchDepth++
}

// EndBatch closes a batch. When the depth returns to zero, the queued
// computed and effect subscribers are drained.
func EndBatch() {
	r := GetRuntime()
	r.batchDepth--
	if r.batchDepth == 0 {
		drain(r)
	}
}

// BatchDepth reports the current nesting depth, mostly for tests.
func BatchDepth() int { return GetRuntime().batchDepth }

func (r *Runtime) enqueueComputed(sub *Subscriber) {
	if sub.Flags.Has(FlagNotified) {
		return
	}
	sub.Flags |= FlagNotified
	sub.nextBatch = r.computedQueueHead
	r.computedQueueHead = sub
	if r.computedQueueTail == nil {
		r.computedQueueTail = sub
	}
}

func (r *Runtime) enqueueEffect(sub *Subscriber) {
	if sub.Flags.Has(FlagNotified) {
		return
	}
	sub.Flags |= FlagNotified
	sub.nextBatch = nil
	if r.effectQueueTail != nil {
		r.effectQueueTail.nextBatch = sub
	} else {
		r.effectQueueHead = sub
	}
	r.effectQueueTail = sub
}

func (r *Runtime) dequeueComputed() *Subscriber {
	sub := r.computedQueueHead
	if sub == nil {
		return nil
	}
	r.computedQueueHead = sub.nextBatch
	if r.computedQueueHead == nil {
		r.computedQueueTail = nil
	}
	sub.nextBatch = nil
	return sub
}

func (r *Runtime) dequeueEffect() *Subscriber {
	sub := r.effectQueueHead
	if sub == nil {
		return nil
	}
	r.effectQueueHead = sub.nextBatch
	if r.effectQueueHead == nil {
		r.effectQueueTail = nil
	}
	sub.nextBatch = nil
	return sub
}

// drain implements spec.md §4.4's drain algorithm: computeds first (each
// has NOTIFIED cleared and notifies its own downstream subscribers onto
// these same queues; none recomputes here, that happens lazily on the next
// read), then effects in FIFO enqueue order,
// repeating until both queues are empty. A panic from one effect is
// captured so every other queued subscriber still gets a chance to run or
// settle; the first one caught is re-raised once draining finishes, per
// spec.md §7.
func drain(r *Runtime) {
	var firstPanic any
	panicked := false

	for r.computedQueueHead != nil || r.effectQueueHead != nil {
		for sub := r.dequeueComputed(); sub != nil; sub = r.dequeueComputed() {
			sub.Flags &^= FlagNotified
			if c, ok := sub.owner.(*Computed); ok {
				c.dep.notify()
			}
		}

		for sub := r.dequeueEffect(); sub != nil; sub = r.dequeueEffect() {
			sub.Flags &^= FlagNotified
			if !sub.Flags.Has(FlagActive) || !sub.Flags.Has(FlagDirty) || sub.Flags.Has(FlagPaused) {
				continue
			}
			e, ok := sub.owner.(*ReactiveEffect)
			if !ok {
				continue
			}
			func() {
				defer func() {
					if p := recover(); p != nil && !panicked {
						panicked = true
						firstPanic = p
					}
				}()
				e.Dispatch()
			}()
		}
	}

	if panicked {
		panic(firstPanic)
	}
}
