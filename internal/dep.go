package internal

import "iter"

// Dep is a change source, per spec.md §3: a monotonic version counter and a
// linked list of subscribers. It does not know its own (target, key)
// identity — that's the target map's job (see targetmap.go); a Dep only
// knows who to notify.
type Dep struct {
	version uint64

	subHead, subTail *Link

	// computed back-pointers to the Computed it belongs to, when this Dep
	// is a computed's own source-side Dep (spec.md §3: "a back-pointer to
	// its owning computed (if any) used for computed-as-source chaining").
	computed *Computed
}

// NewDep allocates a fresh, unversioned Dep.
func NewDep() *Dep {
	return &Dep{}
}

// TrackDep is Track's counterpart for a Dep that doesn't live in a target
// map — Ref and Computed each own exactly one Dep and call this directly
// instead of routing through Track/depFor.
func TrackDep(dep *Dep) *Link {
	r := GetRuntime()
	if !r.canTrack() {
		return nil
	}
	return dep.track(r.activeSub)
}

// TriggerDep is Trigger's counterpart for a standalone Dep.
func TriggerDep(dep *Dep) {
	r := GetRuntime()
	r.globalVersion++
	r.batchDepth++
	defer func() {
		r.batchDepth--
		if r.batchDepth == 0 {
			drain(r)
		}
	}()
	dep.version++
	dep.notify()
}

// Version reports the dep's current version counter.
func (d *Dep) Version() uint64 { return d.version }

// track links the currently active subscriber to this dep, per spec.md
// §4.1. sub must be non-nil: Track() and TrackDep() only call it once they
// have checked that a subscriber is tracking.
func (d *Dep) track(sub *Subscriber) *Link {
	// Reuse policy: the candidate is whatever immediately follows the
	// subscriber's current tail cursor (or the head, if this is the first
	// track() of the run).
	var candidate *Link
	if sub.depsTail != nil {
		candidate = sub.depsTail.nextDep
	} else {
		candidate = sub.depsHead
	}

	if candidate != nil && candidate.dep == d {
		candidate.version = d.version
		sub.depsTail = candidate
		return candidate
	}

	link := &Link{dep: d, sub: sub, version: d.version}
	sub.appendDep(link)
	d.appendSub(link)
	sub.depsTail = link
	return link
}

// notify walks the dep's subscriber list and asks each one to handle a
// change. Insertion order here is oldest-first (append-at-tail), so the
// walk below is also oldest-first; see DESIGN.md / SPEC_FULL.md §6.1 for
// why no reversal step is needed to honor the spec's FIFO-by-enqueue-time
// drain order.
func (d *Dep) notify() {
	for link := d.subHead; link != nil; link = link.nextSub {
		link.sub.notify()
	}
}

// Subs iterates the dep's current subscribers.
func (d *Dep) Subs() iter.Seq[*Subscriber] {
	return func(yield func(*Subscriber) bool) {
		for link := d.subHead; link != nil; link = link.nextSub {
			if !yield(link.sub) {
				return
			}
		}
	}
}

func (d *Dep) appendSub(link *Link) {
	link.prevSub = d.subTail
	link.nextSub = nil
	if d.subTail != nil {
		d.subTail.nextSub = link
	} else {
		d.subHead = link
	}
	d.subTail = link
}

func (d *Dep) removeSub(link *Link) {
	if link.prevSub != nil {
		link.prevSub.nextSub = link.nextSub
	} else {
		d.subHead = link.nextSub
	}
	if link.nextSub != nil {
		link.nextSub.prevSub = link.prevSub
	} else {
		d.subTail = link.prevSub
	}
	link.prevSub = nil
	link.nextSub = nil
}
