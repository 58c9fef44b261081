package cmpenc

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/total-float/go-total-float/totalfloat"
)

// fixtures64 covers every value class in ascending total order.
func fixtures64() []totalfloat.TotalF64 {
	nan := math.Float64bits(math.NaN())
	return []totalfloat.TotalF64{
		totalfloat.TotalF64FromBits(nan | 1<<63), // negative NaN
		totalfloat.TotalFloat64(math.Inf(-1)),
		totalfloat.TotalFloat64(-math.MaxFloat64),
		totalfloat.TotalFloat64(-1.5),
		totalfloat.TotalF64FromBits(1 | 1<<63), // negative min subnormal
		totalfloat.TotalFloat64(math.Copysign(0, -1)),
		totalfloat.TotalFloat64(0.0),
		totalfloat.TotalF64FromBits(1), // min subnormal
		totalfloat.TotalFloat64(2.5),
		totalfloat.TotalFloat64(math.Inf(1)),
		totalfloat.TotalF64FromBits(nan),
	}
}

func fixtures32() []totalfloat.TotalF32 {
	return []totalfloat.TotalF32{
		totalfloat.TotalF32FromBits(0x7FC00000 | 1<<31),
		totalfloat.TotalFloat32(float32(math.Inf(-1))),
		totalfloat.TotalFloat32(-1.5),
		totalfloat.TotalF32FromBits(1 << 31),
		totalfloat.TotalFloat32(0.0),
		totalfloat.TotalFloat32(2.5),
		totalfloat.TotalF32FromBits(0x7FC00000),
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	for _, v := range fixtures64() {
		enc := AppendFloat64(nil, v)
		require.Len(t, enc, Size64)

		dec, err := Float64(enc)
		require.NoError(t, err)
		assert.Equal(t, v.Bits(), dec.Bits())
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	for _, v := range fixtures32() {
		enc := AppendFloat32(nil, v)
		require.Len(t, enc, Size32)

		dec, err := Float32(enc)
		require.NoError(t, err)
		assert.Equal(t, v.Bits(), dec.Bits())
	}
}

func TestFloat64BytesOrderedLikeKeys(t *testing.T) {
	fx := fixtures64()
	for _, a := range fx {
		for _, b := range fx {
			got := bytes.Compare(AppendFloat64(nil, a), AppendFloat64(nil, b))
			assert.Equal(t, a.Cmp(b), got, "byte order disagrees for %v vs %v", a, b)
		}
	}
}

func TestFloat32BytesOrderedLikeKeys(t *testing.T) {
	fx := fixtures32()
	for _, a := range fx {
		for _, b := range fx {
			got := bytes.Compare(AppendFloat32(nil, a), AppendFloat32(nil, b))
			assert.Equal(t, a.Cmp(b), got, "byte order disagrees for %v vs %v", a, b)
		}
	}
}

func TestPutShortBuffer(t *testing.T) {
	err := PutFloat64(make([]byte, Size64-1), totalfloat.TotalFloat64(1.0))
	assert.Error(t, err)

	err = PutFloat32(make([]byte, Size32-1), totalfloat.TotalFloat32(1.0))
	assert.Error(t, err)

	_, err = Float64(nil)
	assert.Error(t, err)

	_, err = Float32(nil)
	assert.Error(t, err)
}

func TestPutFloat64(t *testing.T) {
	v := totalfloat.TotalFloat64(-2.5)
	buf := make([]byte, Size64)
	require.NoError(t, PutFloat64(buf, v))
	assert.Equal(t, AppendFloat64(nil, v), buf)
}

func TestWriteReadStream(t *testing.T) {
	var buf bytes.Buffer
	fx := fixtures64()
	for _, v := range fx {
		require.NoError(t, WriteFloat64(&buf, v))
	}
	for _, v := range fx {
		dec, err := ReadFloat64(&buf)
		require.NoError(t, err)
		assert.Equal(t, v.Bits(), dec.Bits())
	}

	// stream exhausted
	_, err := ReadFloat64(&buf)
	assert.Error(t, err)
}
