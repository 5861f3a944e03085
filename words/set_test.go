package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	a := NewSet("god", "loved", "world")
	b := NewSet("god", "sent", "son", "world")

	assert.True(t, a.Contains("god"))
	assert.False(t, a.Contains("son"))
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 2, a.IntersectionSize(b))
	assert.Equal(t, 2, b.IntersectionSize(a))
	assert.Equal(t, 5, a.UnionSize(b))
	assert.Equal(t, 5, b.UnionSize(a))

	a.Add("love")
	assert.Equal(t, []string{"god", "love", "loved", "world"}, a.Slice())
}

func TestSet_Empty(t *testing.T) {
	empty := NewSet()
	other := NewSet("god")

	assert.Equal(t, 0, empty.IntersectionSize(other))
	assert.Equal(t, 1, empty.UnionSize(other))
	assert.Equal(t, 0, empty.UnionSize(NewSet()))
	assert.Empty(t, empty.Slice())
}
