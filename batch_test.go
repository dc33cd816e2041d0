package signals

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatch(t *testing.T) {
	t.Run("batches multiple writes into one dispatch", func(t *testing.T) {
		log := []string{}

		count := NewRef(0)
		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Value()))
		})

		Batch(func() {
			count.SetValue(10)
			count.SetValue(20)
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"changed 0",
			"updated",
			"changed 20",
		}, log)
	})

	t.Run("batches multiple refs", func(t *testing.T) {
		log := []string{}

		count := NewRef(0)
		double := NewRef(0)

		NewEffect(func() {
			log = append(log, fmt.Sprintf("count %d", count.Value()))
		})
		NewEffect(func() {
			log = append(log, fmt.Sprintf("double %d", double.Value()))
		})

		Batch(func() {
			count.SetValue(10)
			double.SetValue(count.Value() * 2)
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"count 0",
			"double 0",
			"updated",
			"count 10",
			"double 20",
		}, log)
	})

	t.Run("nested batches flush once at the outermost EndBatch", func(t *testing.T) {
		log := []string{}

		count := NewRef(0)
		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Value()))
		})

		Batch(func() {
			count.SetValue(10)
			Batch(func() {
				count.SetValue(20)
			})
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"changed 0",
			"updated",
			"changed 20",
		}, log)
	})

	t.Run("computed revalidates before effects dispatch", func(t *testing.T) {
		log := []string{}

		count := NewRef(1)
		double := NewComputed(func(int) int { return count.Value() * 2 })

		NewEffect(func() {
			log = append(log, fmt.Sprintf("double is %d", double.Value()))
		})

		count.SetValue(5)

		assert.Equal(t, []string{
			"double is 2",
			"double is 10",
		}, log)
	})
}
