// Package cmpenc encodes total-order float keys as fixed-size byte
// strings whose lexicographic (memcmp) order equals the totalOrder of
// the wrapped floats. The encoding is the big-endian form of the
// normalized key with the sign bit toggled, which shifts the signed
// key range onto the unsigned one without reordering it.
package cmpenc

import (
	"encoding/binary"
	"io"

	"github.com/total-float/go-total-float/totalfloat"
	"golang.org/x/xerrors"
)

const (
	// Size64 is the encoded size of a float64 key in bytes.
	Size64 = 8
	// Size32 is the encoded size of a float32 key in bytes.
	Size32 = 4
)

func bias64(key int64) uint64 { return uint64(key) ^ 1<<63 }
func bias32(key int32) uint32 { return uint32(key) ^ 1<<31 }

// AppendFloat64 appends the Size64-byte encoding of t to dst and
// returns the extended slice.
func AppendFloat64(dst []byte, t totalfloat.TotalF64) []byte {
	var buf [Size64]byte
	binary.BigEndian.PutUint64(buf[:], bias64(t.Key()))
	return append(dst, buf[:]...)
}

// AppendFloat32 appends the Size32-byte encoding of t to dst and
// returns the extended slice.
func AppendFloat32(dst []byte, t totalfloat.TotalF32) []byte {
	var buf [Size32]byte
	binary.BigEndian.PutUint32(buf[:], bias32(t.Key()))
	return append(dst, buf[:]...)
}

// PutFloat64 writes the encoding of t into the first Size64 bytes of
// buf.
func PutFloat64(buf []byte, t totalfloat.TotalF64) error {
	if len(buf) < Size64 {
		return xerrors.Errorf("buffer too short for a float64 key: %d < %d", len(buf), Size64)
	}
	binary.BigEndian.PutUint64(buf, bias64(t.Key()))
	return nil
}

// PutFloat32 writes the encoding of t into the first Size32 bytes of
// buf.
func PutFloat32(buf []byte, t totalfloat.TotalF32) error {
	if len(buf) < Size32 {
		return xerrors.Errorf("buffer too short for a float32 key: %d < %d", len(buf), Size32)
	}
	binary.BigEndian.PutUint32(buf, bias32(t.Key()))
	return nil
}

// Float64 decodes the key encoded in the first Size64 bytes of buf.
// The decoded wrapper carries the exact bits that were encoded,
// including NaN payloads.
func Float64(buf []byte) (totalfloat.TotalF64, error) {
	if len(buf) < Size64 {
		return totalfloat.TotalF64{}, xerrors.Errorf("buffer too short for a float64 key: %d < %d", len(buf), Size64)
	}
	key := int64(binary.BigEndian.Uint64(buf) ^ 1<<63)
	return totalfloat.TotalF64FromKey(key), nil
}

// Float32 decodes the key encoded in the first Size32 bytes of buf.
func Float32(buf []byte) (totalfloat.TotalF32, error) {
	if len(buf) < Size32 {
		return totalfloat.TotalF32{}, xerrors.Errorf("buffer too short for a float32 key: %d < %d", len(buf), Size32)
	}
	key := int32(binary.BigEndian.Uint32(buf) ^ 1<<31)
	return totalfloat.TotalF32FromKey(key), nil
}

// WriteFloat64 writes the encoding of t to w.
func WriteFloat64(w io.Writer, t totalfloat.TotalF64) error {
	if _, err := w.Write(AppendFloat64(nil, t)); err != nil {
		return xerrors.Errorf("writing float64 key: %w", err)
	}
	return nil
}

// WriteFloat32 writes the encoding of t to w.
func WriteFloat32(w io.Writer, t totalfloat.TotalF32) error {
	if _, err := w.Write(AppendFloat32(nil, t)); err != nil {
		return xerrors.Errorf("writing float32 key: %w", err)
	}
	return nil
}

// ReadFloat64 reads one encoded float64 key from r.
func ReadFloat64(r io.Reader) (totalfloat.TotalF64, error) {
	var buf [Size64]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return totalfloat.TotalF64{}, xerrors.Errorf("reading float64 key: %w", err)
	}
	return Float64(buf[:])
}

// ReadFloat32 reads one encoded float32 key from r.
func ReadFloat32(r io.Reader) (totalfloat.TotalF32, error) {
	var buf [Size32]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return totalfloat.TotalF32{}, xerrors.Errorf("reading float32 key: %w", err)
	}
	return Float32(buf[:])
}
