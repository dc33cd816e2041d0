package signals

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArray(t *testing.T) {
	t.Run("tracks length and triggers once per push", func(t *testing.T) {
		log := []string{}

		list := ReactiveArray([]any{1, 2})
		NewEffect(func() {
			log = append(log, fmt.Sprintf("len %d", list.Len()))
		})

		list.Push(3)
		list.Push(4, 5)

		assert.Equal(t, []string{"len 2", "len 3", "len 5"}, log)
	})

	t.Run("get tracks by index", func(t *testing.T) {
		log := []string{}

		list := ReactiveArray([]any{"a", "b"})
		NewEffect(func() {
			log = append(log, fmt.Sprintf("%v", list.Get(0)))
		})

		list.Set(0, "z")
		list.Set(1, "y") // different index, should not re-run index-0 effect

		assert.Equal(t, []string{"a", "z"}, log)
	})

	t.Run("pop, shift, unshift mutate and trigger length", func(t *testing.T) {
		list := ReactiveArray([]any{1, 2, 3})

		assert.Equal(t, 3, list.Pop())
		assert.Equal(t, 2, list.Len())

		assert.Equal(t, 1, list.Shift())
		assert.Equal(t, 1, list.Len())

		list.Unshift(9, 8)
		assert.Equal(t, []any{9, 8, 2}, ToRaw(list))
	})

	t.Run("splice removes and inserts", func(t *testing.T) {
		list := ReactiveArray([]any{1, 2, 3, 4, 5})

		removed := list.Splice(1, 2, "a", "b", "c")

		assert.Equal(t, []any{2, 3}, removed)
		assert.Equal(t, []any{1, "a", "b", "c", 4, 5}, ToRaw(list))
	})

	t.Run("includes and indexOf find elements by value", func(t *testing.T) {
		list := ReactiveArray([]any{1, 2, 3})

		assert.True(t, list.Includes(2))
		assert.Equal(t, 1, list.IndexOf(2))
		assert.Equal(t, -1, list.IndexOf(99))
	})

	t.Run("readonly array ignores mutations", func(t *testing.T) {
		list := ReadonlyArray([]any{1, 2, 3})

		list.Push(4)
		list.Set(0, 99)

		assert.Equal(t, []any{1, 2, 3}, ToRaw(list))
	})
}
