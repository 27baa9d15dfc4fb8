package hashtable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyTableInsertFind(t *testing.T) {
	kt := NewKeyTable()
	kt.Insert([]byte("alpha"), 1)
	kt.Insert([]byte("beta"), 2)

	v, ok := kt.Find([]byte("alpha"))
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = kt.Find([]byte("beta"))
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = kt.Find([]byte("gamma"))
	assert.False(t, ok)
}

func TestKeyTableOverwrite(t *testing.T) {
	kt := NewKeyTable()
	kt.Insert([]byte("x"), 1)
	kt.Insert([]byte("x"), 2)
	v, ok := kt.Find([]byte("x"))
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, kt.Len())
}

func TestKeyTableGrows(t *testing.T) {
	kt := NewKeyTable()
	for i := 0; i < 200; i++ {
		kt.Insert([]byte(fmt.Sprintf("key-%d", i)), i)
	}
	for i := 0; i < 200; i++ {
		v, ok := kt.Find([]byte(fmt.Sprintf("key-%d", i)))
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}
}
