//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var runtimes sync.Map // goroutine id (int64) -> *Runtime

// GetRuntime returns the Runtime bound to the calling goroutine, creating
// one on first use. Grounded on the teacher's internal/runtime_default.go:
// goroutine-partitioned state is the Go answer to spec.md §5's "exactly one
// activeSub... on the current logical thread" when the host language, unlike
// JS, is not itself single-threaded.
func GetRuntime() *Runtime {
	gid := goid.Get()

	if r, ok := runtimes.Load(gid); ok {
		return r.(*Runtime)
	}

	r := newRuntime()
	runtimes.Store(gid, r)
	return r
}
