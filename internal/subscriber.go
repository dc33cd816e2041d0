package internal

import "iter"

// Flags is the state-machine bitset of spec.md §4.2.
type Flags uint16

const (
	FlagActive Flags = 1 << iota
	FlagRunning
	FlagTracking
	FlagNotified
	FlagDirty
	FlagPending
	FlagPaused
	FlagAllowRecurse
)

// Has reports whether every bit in mask is set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// Any reports whether any bit in mask is set.
func (f Flags) Any(mask Flags) bool { return f&mask != 0 }

// notifier is implemented by ReactiveEffect and Computed so that a shared
// Subscriber can dispatch dep-change notifications to whichever concrete
// type embeds it, without Go's lack of implementation inheritance forcing
// a big switch in Dep.notify().
type notifier interface {
	handleNotify()
}

// Subscriber is the embeddable base spec.md §3 describes: anything that
// runs in a tracking context. ReactiveEffect and Computed both embed one.
type Subscriber struct {
	Flags Flags

	depsHead, depsTail *Link

	// nextBatch threads this subscriber into one of the batch scheduler's
	// two singly linked queues (see batch.go). Shared by both effect and
	// computed subscribers since only one queue ever owns a given
	// subscriber at a time.
	nextBatch *Subscriber

	owner notifier
}

func (s *Subscriber) init(owner notifier) {
	s.owner = owner
}

func (s *Subscriber) notify() {
	if s.owner != nil {
		s.owner.handleNotify()
	}
}

// resetDepsCursor prepares the subscriber for a fresh tracking run: reads
// during the run will reuse or replace links starting from the head, per
// spec.md §4.1's "Reset depsTail to null so dep reuse starts from head."
func (s *Subscriber) resetDepsCursor() {
	s.depsTail = nil
}

// clearStaleDeps detaches every link past the current depsTail cursor —
// the deps that existed before this run but were not re-confirmed during
// it — from both the subscriber's and the dep's linked lists.
func (s *Subscriber) clearStaleDeps() {
	var start *Link
	if s.depsTail != nil {
		start = s.depsTail.nextDep
	} else {
		start = s.depsHead
	}
	for link := start; link != nil; {
		next := link.nextDep
		s.removeDep(link)
		link.dep.removeSub(link)
		link = next
	}
}

// clearAllDeps detaches every dependency link, used by stop().
func (s *Subscriber) clearAllDeps() {
	for link := s.depsHead; link != nil; {
		next := link.nextDep
		link.dep.removeSub(link)
		link = next
	}
	s.depsHead = nil
	s.depsTail = nil
}

func (s *Subscriber) appendDep(link *Link) {
	// Insert right after the cursor, keeping any not-yet-confirmed links
	// behind it so clearStaleDeps can still detach them.
	var next *Link
	if s.depsTail != nil {
		next = s.depsTail.nextDep
	} else {
		next = s.depsHead
	}
	link.prevDep = s.depsTail
	link.nextDep = next
	if next != nil {
		next.prevDep = link
	}
	if s.depsTail != nil {
		s.depsTail.nextDep = link
	} else {
		s.depsHead = link
	}
	s.depsTail = link
}

func (s *Subscriber) removeDep(link *Link) {
	if link.prevDep != nil {
		link.prevDep.nextDep = link.nextDep
	} else {
		s.depsHead = link.nextDep
	}
	if link.nextDep != nil {
		link.nextDep.prevDep = link.prevDep
	} else {
		s.depsTail = link.prevDep
	}
	link.prevDep = nil
	link.nextDep = nil
}

// Deps iterates the subscriber's current (post-run) dependency set.
func (s *Subscriber) Deps() iter.Seq[*Dep] {
	return func(yield func(*Dep) bool) {
		for link := s.depsHead; link != nil; link = link.nextDep {
			if !yield(link.dep) {
				return
			}
		}
	}
}
