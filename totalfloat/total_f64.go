package totalfloat

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
)

// TotalF64 wraps a float64 with equality, ordering and hashing that
// follow IEEE 754 totalOrder instead of the native float comparison.
// Every bit pattern has a defined position: NaNs order by sign and
// payload, and -0.0 sorts strictly before +0.0 while remaining
// numerically equal under the native ==. The zero value wraps +0.0.
type TotalF64 struct {
	Float float64
}

// TotalFloat64 wraps f. The value is taken as-is, including NaNs,
// infinities and the two zeros.
func TotalFloat64(f float64) TotalF64 {
	return TotalF64{Float: f}
}

// TotalF64FromBits wraps the float64 with the given raw representation.
func TotalF64FromBits(bits uint64) TotalF64 {
	return TotalF64{Float: math.Float64frombits(bits)}
}

// TotalF64FromKey is the inverse of Key. The key transform only flips
// bits below the sign, so applying it twice restores the raw bits.
func TotalF64FromKey(key int64) TotalF64 {
	return TotalF64FromBits(uint64(orderKey[int64, uint64](key)))
}

// Bits returns the raw representation of the wrapped value.
func (t TotalF64) Bits() uint64 {
	return math.Float64bits(t.Float)
}

// Key returns the normalized form of the wrapped value. Comparing keys
// as plain integers compares the wrapped floats under totalOrder.
func (t TotalF64) Key() int64 {
	return orderKey[int64, uint64](int64(t.Bits()))
}

// Eq reports whether t and o occupy the same position in the total
// order, i.e. whether their raw bits are identical. Unlike ==, a NaN
// is equal to itself and -0.0 is not equal to +0.0.
func (t TotalF64) Eq(o TotalF64) bool {
	return t.Key() == o.Key()
}

// Less reports whether t sorts strictly before o under totalOrder.
func (t TotalF64) Less(o TotalF64) bool {
	return t.Key() < o.Key()
}

// Cmp returns -1, 0 or +1 as t sorts before, with or after o under
// totalOrder. Every pair of values is comparable.
func (t TotalF64) Cmp(o TotalF64) int {
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
// that are Eq always hash alike.
func (t TotalF64) Hash() uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(t.Key()))
	h := fnv.New64a()
	h.Write(buf[:])
	return h.Sum64()
}

func (t TotalF64) String() string {
	return fmt.Sprintf("TotalF64(%g)", t.Float)
}
