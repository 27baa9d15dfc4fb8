package bitset

import "testing"

import "github.com/stretchr/testify/assert"

func TestBasic(t *testing.T) {
	b := New(10)
	assert.Equal(t, 10, b.Len())
	assert.False(t, b.Get(3))
	b.Set(3)
	assert.True(t, b.Get(3))
	b.Flip(3)
	assert.False(t, b.Get(3))
	b.Set(0)
	b.Set(63)
	b.Set(9)
	assert.Equal(t, 2, b.PopCount())
}

func TestCloneIndependent(t *testing.T) {
	b := New(8)
	b.Set(1)
	c := b.Clone()
	c.Set(2)
	assert.False(t, b.Get(2))
	assert.True(t, c.Get(1))
}

func TestFromUint64(t *testing.T) {
	b := FromUint64(4, 0b1010)
	assert.False(t, b.Get(0))
	assert.True(t, b.Get(1))
	assert.False(t, b.Get(2))
	assert.True(t, b.Get(3))
}
