package internal

// Link is the edge type of spec.md §3: one Dep, one Subscriber, the dep
// version last observed, and the four pointers threading it into both the
// dep's subscriber list and the subscriber's dependency list. Unlike the
// teacher's circular, self-looping lists (internal/node.go in
// AnatoleLucet-sig, chosen there for O(1) tail append without a head/tail
// pair), links here need O(1) removal from an arbitrary position — an
// effect can be stopped mid-list — so both lists are plain nil-terminated
// doubly linked lists with separate head/tail pointers on the owner.
type Link struct {
	dep *Dep
	sub *Subscriber

	version uint64

	prevSub, nextSub *Link
	prevDep, nextDep *Link
}

// Dep returns the link's dependency endpoint.
func (l *Link) Dep() *Dep { return l.dep }

// Sub returns the link's subscriber endpoint.
func (l *Link) Sub() *Subscriber { return l.sub }
