package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputed(t *testing.T) {
	t.Run("does not propagate when value unchanged", func(t *testing.T) {
		log := []string{}

		count := NewRef(1)
		a := NewComputed(func(int) int {
			log = append(log, "running a")
			return count.Value() * 0 // always 0
		})
		b := NewComputed(func(int) int {
			log = append(log, "running b")
			return a.Value() + 1
		})

		assert.Equal(t, 1, b.Value())

		count.SetValue(10) // a recomputes but stays 0, so b should not

		a.Value()

		assert.Equal(t, []string{"running b", "running a", "running a"}, log)
	})

	t.Run("writable computed invokes its setter", func(t *testing.T) {
		first := NewRef("John")
		last := NewRef("Smith")

		full := NewWritableComputed(
			func(string) string { return first.Value() + " " + last.Value() },
			func(v string) {
				// naive split on the first space
				for i, c := range v {
					if c == ' ' {
						first.SetValue(v[:i])
						last.SetValue(v[i+1:])
						return
					}
				}
			},
		)

		assert.Equal(t, "John Smith", full.Value())

		full.SetValue("Jane Doe")
		assert.Equal(t, "Jane", first.Value())
		assert.Equal(t, "Doe", last.Value())
		assert.Equal(t, "Jane Doe", full.Value())
	})

	t.Run("readonly computed ignores SetValue", func(t *testing.T) {
		count := NewRef(1)
		double := NewComputed(func(int) int { return count.Value() * 2 })

		double.SetValue(100) // no setter, no-op

		assert.Equal(t, 2, double.Value())
	})
}
