// Package totalfloat wraps IEEE 754 floats with an equality, ordering
// and hashing contract based on the totalOrder relation, so that float
// values can serve as keys in hash maps and sorted structures where the
// native comparison cannot (NaN is unordered, and the two zeros compare
// equal while having distinct representations).
package totalfloat

type signedBits interface {
	~int32 | ~int64
}

type unsignedBits interface {
	~uint32 | ~uint64
}

// orderKey maps the raw bits of an IEEE 754 float, reinterpreted as a
// same-width signed integer, to a signed integer whose natural order is
// the totalOrder relation over the original float.
//
// The exponent and mantissa fields together have the property that
// their bitwise order equals the numeric magnitude, and IEEE 754
// totalOrder extends that bitwise order over the NaN encodings too.
// Negative values carry the same magnitude representation but must
// order the other way around, so every bit except the sign is flipped
// for them, laying the whole range out like a two's complement integer.
//
// The mask is built branchlessly: the arithmetic right shift smears the
// sign bit across the word, and the unsigned shift by one then clears
// the sign position. Go defines shift counts past the operand width to
// keep filling with the sign, so the count 63 serves both the 32 and
// 64 bit instantiations.
func orderKey[S signedBits, U unsignedBits](val S) S {
	return val ^ S(U(val>>63)>>1)
}
