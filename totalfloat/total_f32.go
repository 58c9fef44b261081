package totalfloat

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
)

// TotalF32 is the single precision analogue of TotalF64: a float32
// wrapper whose equality, ordering and hashing follow IEEE 754
// totalOrder. The zero value wraps +0.0.
type TotalF32 struct {
	Float float32
}

// TotalFloat32 wraps f. The value is taken as-is, including NaNs,
// infinities and the two zeros.
func TotalFloat32(f float32) TotalF32 {
	return TotalF32{Float: f}
}

// TotalF32FromBits wraps the float32 with the given raw representation.
func TotalF32FromBits(bits uint32) TotalF32 {
	return TotalF32{Float: math.Float32frombits(bits)}
}

// TotalF32FromKey is the inverse of Key.
func TotalF32FromKey(key int32) TotalF32 {
	return TotalF32FromBits(uint32(orderKey[int32, uint32](key)))
}

// Bits returns the raw representation of the wrapped value.
func (t TotalF32) Bits() uint32 {
	return math.Float32bits(t.Float)
}

// Key returns the normalized form of the wrapped value. Comparing keys
// as plain integers compares the wrapped floats under totalOrder.
func (t TotalF32) Key() int32 {
	return orderKey[int32, uint32](int32(t.Bits()))
}

// Eq reports whether t and o occupy the same position in the total
// order, i.e. whether their raw bits are identical. Unlike ==, a NaN
// is equal to itself and -0.0 is not equal to +0.0.
func (t TotalF32) Eq(o TotalF32) bool {
	return t.Key() == o.Key()
}

// Less reports whether t sorts strictly before o under totalOrder.
func (t TotalF32) Less(o TotalF32) bool {
	return t.Key() < o.Key()
}

// Cmp returns -1, 0 or +1 as t sorts before, with or after o under
// totalOrder. Every pair of values is comparable.
func (t TotalF32) Cmp(o TotalF32) int {
	a, b := t.Key(), o.Key()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Hash returns a hash derived from the normalized form only, so values
// that are Eq always hash alike. Both wrapper widths hash to 64 bits
// so they can feed the same hash-indexed structures.
func (t TotalF32) Hash() uint64 {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(t.Key()))
	h := fnv.New64a()
	h.Write(buf[:])
	return h.Sum64()
}

func (t TotalF32) String() string {
	return fmt.Sprintf("TotalF32(%g)", t.Float)
}
