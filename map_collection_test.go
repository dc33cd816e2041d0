package signals

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	t.Run("tracks get and triggers on set", func(t *testing.T) {
		log := []string{}

		m := NewMap(map[string]int{"a": 1})
		NewEffect(func() {
			log = append(log, fmt.Sprintf("a is %d", m.Get("a")))
		})

		m.Set("a", 2)
		m.Set("a", 2) // SameValue, no re-run

		assert.Equal(t, []string{"a is 1", "a is 2"}, log)
	})

	t.Run("size tracks IterateKey", func(t *testing.T) {
		sizes := []int{}

		m := NewMap(map[string]int{})
		NewEffect(func() {
			sizes = append(sizes, m.Size())
		})

		m.Set("a", 1)
		m.Set("b", 2)
		m.Delete("a")

		assert.Equal(t, []int{0, 1, 2, 1}, sizes)
	})

	t.Run("clear triggers only when non-empty", func(t *testing.T) {
		count := 0
		m := NewMap(map[string]int{"a": 1})
		NewEffect(func() {
			m.Size()
			count++
		})

		m.Clear()
		m.Clear() // already empty, no-op

		assert.Equal(t, 2, count)
	})

	t.Run("keys/values iterate the raw map", func(t *testing.T) {
		m := NewMap(map[string]int{"a": 1, "b": 2})

		var keys []string
		for k := range m.Keys() {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		assert.Equal(t, []string{"a", "b"}, keys)

		sum := 0
		for v := range m.Values() {
			sum += v
		}
		assert.Equal(t, 3, sum)
	})

	t.Run("readonly map ignores writes", func(t *testing.T) {
		m := NewReadonlyMap(map[string]int{"a": 1})
		m.Set("a", 99)
		m.Delete("a")
		assert.Equal(t, 1, m.Get("a"))
	})
}

func TestSet(t *testing.T) {
	t.Run("tracks has and triggers on add/delete", func(t *testing.T) {
		log := []string{}

		s := NewSet(map[string]struct{}{})
		NewEffect(func() {
			log = append(log, fmt.Sprintf("has x: %v", s.Has("x")))
		})

		s.Add("x")
		s.Add("x") // already present, no-op
		s.Delete("x")

		assert.Equal(t, []string{"has x: false", "has x: true", "has x: false"}, log)
	})

	t.Run("size tracks membership count", func(t *testing.T) {
		s := NewSet(map[int]struct{}{})
		s.Add(1)
		s.Add(2)
		assert.Equal(t, 2, s.Size())

		s.Clear()
		assert.Equal(t, 0, s.Size())
	})
}
