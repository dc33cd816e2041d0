package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameValue(t *testing.T) {
	t.Run("NaN equals itself", func(t *testing.T) {
		nan := math.NaN()
		assert.True(t, SameValue(nan, nan))
	})

	t.Run("+0 and -0 differ", func(t *testing.T) {
		assert.False(t, SameValue(0.0, math.Copysign(0, -1)))
	})

	t.Run("comparable non-float values use ==", func(t *testing.T) {
		assert.True(t, SameValue("a", "a"))
		assert.False(t, SameValue("a", "b"))
		assert.True(t, SameValue(1, 1))
	})

	t.Run("non-comparable values are always changed", func(t *testing.T) {
		assert.False(t, SameValue([]int{1}, []int{1}))
	})
}
