//go:build wasm

package internal

import "sync"

var (
	runtimeOnce   sync.Once
	globalRuntime *Runtime
)

// GetRuntime returns the single process-wide Runtime. WASM builds run on one
// thread with no real goroutine concurrency, so the per-goroutine
// partitioning of runtime_default.go collapses to a singleton, exactly as
// the teacher's internal/runtime_wasm.go does.
func GetRuntime() *Runtime {
	runtimeOnce.Do(func() {
		globalRuntime = newRuntime()
	})
	return globalRuntime
}
