package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/shortpath/core"
)

func TestSet_AddHasLen(t *testing.T) {
	s := core.NewSet(4)
	assert.Equal(t, 0, s.Len())

	assert.True(t, s.Add(2))
	assert.False(t, s.Add(2), "second Add of the same handle is a no-op")
	assert.True(t, s.Add(100), "handles beyond the initial capacity are accepted")
	assert.False(t, s.Add(core.NoVertex))

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(2))
	assert.True(t, s.Has(100))
	assert.False(t, s.Has(3))
	assert.False(t, s.Has(core.NoVertex))
	assert.Equal(t, []core.VertexID{2, 100}, s.IDs())
}

func TestSet_Equal(t *testing.T) {
	a := core.NewSet(8)
	b := core.NewSet(2)
	a.Add(1)
	a.Add(5)
	b.Add(5)
	assert.False(t, a.Equal(b))

	b.Add(1)
	assert.True(t, a.Equal(b))

	b.Add(6)
	assert.False(t, a.Equal(b))

	var nilSet *core.Set
	assert.False(t, a.Equal(nilSet))
	assert.True(t, nilSet.Equal(nil))
}
