package keyed

import (
	"github.com/cespare/xxhash/v2"

	"github.com/leapstack-labs/keyframe/pkg/frame"
)

// Equal reports loose equality: value-equal data and the same key columns as
// a set, ignoring key order.
func (t *Table) Equal(o *Table) bool {
	if !keySetsEqual(t.key, o.key) {
		return false
	}
	return frame.EqualValues(t.f, o.f)
}

// StrictEqual reports strict equality: representation-identical data and the
// same key sequence, order included. Hash agrees with StrictEqual.
func (t *Table) StrictEqual(o *Table) bool {
	if len(t.key) != len(o.key) {
		return false
	}
	for i := range t.key {
		if t.key[i] != o.key[i] {
			return false
		}
	}
	return frame.Identical(t.f, o.f)
}

// Hash returns a digest of the table: the frame digest mixed with the key
// sequence. Tables that are StrictEqual hash equal; key order changes the
// hash.
func (t *Table) Hash() uint64 {
	h := xxhash.New()
	var b [8]byte
	fh := frame.Hash(t.f)
	for i := 0; i < 8; i++ {
		b[i] = byte(fh >> (8 * i))
	}
	_, _ = h.Write(b[:])
	for _, k := range t.key {
		_, _ = h.WriteString(k)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

// keySetsEqual compares keys as sets. Keys hold no duplicates, so equal
// lengths plus containment suffice.
func keySetsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	in := make(map[string]bool, len(a))
	for _, k := range a {
		in[k] = true
	}
	for _, k := range b {
		if !in[k] {
			return false
		}
	}
	return true
}
