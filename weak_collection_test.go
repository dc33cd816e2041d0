package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeakMap(t *testing.T) {
	type key struct{ n int }

	k1 := &key{1}
	k2 := &key{2}

	wm := NewWeakMap[key, string]()
	wm.Set(k1, "one")

	assert.True(t, wm.Has(k1))
	assert.False(t, wm.Has(k2))
	assert.Equal(t, "one", wm.Get(k1))

	assert.True(t, wm.Delete(k1))
	assert.False(t, wm.Has(k1))
	assert.False(t, wm.Delete(k1))
}

func TestWeakSet(t *testing.T) {
	type item struct{ n int }

	a := &item{1}
	b := &item{2}

	ws := NewWeakSet[item]()
	ws.Add(a)

	assert.True(t, ws.Has(a))
	assert.False(t, ws.Has(b))

	assert.True(t, ws.Delete(a))
	assert.False(t, ws.Has(a))
}
