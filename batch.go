package signals

import "github.com/haldorsen/signals/internal"

// StartBatch opens (or nests into) a batch: writes inside it don't notify
// dependents until the matching EndBatch closes the outermost bracket.
func StartBatch() { internal.StartBatch() }

// EndBatch closes a batch opened with StartBatch.
func EndBatch() { internal.EndBatch() }

// Batch runs fn inside a StartBatch/EndBatch bracket.
func Batch(fn func()) {
	StartBatch()
	defer EndBatch()
	fn()
}
