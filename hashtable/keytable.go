package hashtable

import (
	"bytes"
	"hash/fnv"
)

const initialKeyTableCapacity = 16

// KeyTable is an open-addressing, linear-probing table keyed by arbitrary
// byte strings. Keys are copied into a grow-only key store on insert; the
// stored value is a caller-defined int (typically an index into some other
// slice, e.g. a node-ID table). The table doubles capacity whenever the
// load factor exceeds 1/8, trading memory for short probe sequences.
type KeyTable struct {
	keys   [][]byte
	values []int
	filled []bool
	used   int
}

// NewKeyTable returns an empty KeyTable.
func NewKeyTable() *KeyTable {
	return &KeyTable{
		keys:   make([][]byte, initialKeyTableCapacity),
		values: make([]int, initialKeyTableCapacity),
		filled: make([]bool, initialKeyTableCapacity),
	}
}

func (t *KeyTable) cap() int { return len(t.keys) }

func hashBytes(key []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(key)
	return h.Sum64()
}

// Find returns the value stored for key, or (0, false) if absent.
// Complexity: O(1) expected.
func (t *KeyTable) Find(key []byte) (int, bool) {
	cap64 := uint64(t.cap())
	slot := hashBytes(key) % cap64
	for i := uint64(0); i < cap64; i++ {
		idx := (slot + i) % cap64
		if !t.filled[idx] {
			return 0, false
		}
		if bytes.Equal(t.keys[idx], key) {
			return t.values[idx], true
		}
	}
	return 0, false
}

// Insert associates key with value, overwriting any existing association.
// Complexity: amortized O(1).
func (t *KeyTable) Insert(key []byte, value int) {
	if (t.used+1)*8 > t.cap() {
		t.grow()
	}
	t.insertInto(t.keys, t.values, t.filled, append([]byte(nil), key...), value)
}

func (t *KeyTable) insertInto(keys [][]byte, values []int, filled []bool, key []byte, value int) {
	cap64 := uint64(len(keys))
	slot := hashBytes(key) % cap64
	for i := uint64(0); i < cap64; i++ {
		idx := (slot + i) % cap64
		if !filled[idx] {
			keys[idx] = key
			values[idx] = value
			filled[idx] = true
			if &keys[0] == &t.keys[0] {
				t.used++
			}
			return
		}
		if bytes.Equal(keys[idx], key) {
			values[idx] = value
			return
		}
	}
}

// grow doubles capacity and rehashes all entries.
// Complexity: O(capacity).
func (t *KeyTable) grow() {
	newCap := t.cap() * 2
	newKeys := make([][]byte, newCap)
	newValues := make([]int, newCap)
	newFilled := make([]bool, newCap)
	for i, f := range t.filled {
		if f {
			insertPlain(newKeys, newValues, newFilled, t.keys[i], t.values[i])
		}
	}
	t.keys, t.values, t.filled = newKeys, newValues, newFilled
}

func insertPlain(keys [][]byte, values []int, filled []bool, key []byte, value int) {
	cap64 := uint64(len(keys))
	slot := hashBytes(key) % cap64
	for i := uint64(0); i < cap64; i++ {
		idx := (slot + i) % cap64
		if !filled[idx] {
			keys[idx] = key
			values[idx] = value
			filled[idx] = true
			return
		}
	}
}

// Len returns the number of stored key/value pairs.
func (t *KeyTable) Len() int { return t.used }
