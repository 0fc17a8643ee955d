package ir

import (
	"encoding/binary"
	"hash/maphash"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of v, consistent with Compare:
// values comparing equal hash equally within one process.
func (v Value) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	n := v.node()
	if n == nil {
		h.WriteByte(0xff)
		return h.Sum64()
	}
	if n.hasTag {
		h.WriteByte(1)
		h.WriteString(n.tag)
		h.WriteByte(0)
	} else {
		h.WriteByte(0)
	}
	h.WriteByte(byte(n.kind))

	var b [8]byte
	switch n.kind {
	case ScalarPayload:
		h.WriteString(n.text)
	case SequencePayload:
		for _, r := range v.d.arena.items[n.lo:n.hi] {
			binary.LittleEndian.PutUint64(b[:], Value{v.d, r}.Hash())
			h.Write(b[:])
		}
	case ObjectPayload:
		for _, e := range v.d.arena.entries[n.lo:n.hi] {
			binary.LittleEndian.PutUint64(b[:], Value{v.d, e.key}.Hash())
			h.Write(b[:])
			binary.LittleEndian.PutUint64(b[:], Value{v.d, e.val}.Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
