package triangle

import (
	"io"

	cbg "github.com/whyrusleeping/cbor-gen"
	xerrors "golang.org/x/xerrors"

	"github.com/total-float/go-total-float/cmpenc"
)

// Group travels as a 2-tuple of the sortable key bytes and the ratio
// list, each ratio itself a 2-tuple of unsigned ints. The key is
// carried in its cmpenc byte form so the serialized groups sort in
// angle order by a plain byte compare on the first field.

func (g *Group) MarshalCBOR(w io.Writer) error {
	if g == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}

	cw := cbg.NewCborWriter(w)
	if err := cw.WriteMajorTypeHeader(cbg.MajArray, uint64(2)); err != nil {
		return err
	}

	if err := cbg.WriteByteArray(cw, cmpenc.AppendFloat64(nil, g.Angle)); err != nil {
		return err
	}

	if uint64(len(g.Ratios)) > cbg.MaxLength {
		return xerrors.Errorf("ratio list too long to serialize: %d", len(g.Ratios))
	}
	if err := cw.WriteMajorTypeHeader(cbg.MajArray, uint64(len(g.Ratios))); err != nil {
		return err
	}
	for _, r := range g.Ratios {
		if err := cw.WriteMajorTypeHeader(cbg.MajArray, uint64(2)); err != nil {
			return err
		}
		if err := cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, uint64(r.Adjacent)); err != nil {
			return err
		}
		if err := cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, uint64(r.Opposite)); err != nil {
			return err
		}
	}
	return nil
}

func (g *Group) UnmarshalCBOR(r io.Reader) error {
	*g = Group{}

	cr := cbg.NewCborReader(r)
	maj, extra, err := cr.ReadHeader()
	if err != nil {
		return err
	}
	if maj != cbg.MajArray || extra != 2 {
		return xerrors.Errorf("expected a 2-tuple, got major type %d length %d", maj, extra)
	}

	keyBytes, err := cbg.ReadByteArray(cr, cmpenc.Size64)
	if err != nil {
		return xerrors.Errorf("reading angle key: %w", err)
	}
	if len(keyBytes) != cmpenc.Size64 {
		return xerrors.Errorf("angle key must be %d bytes, got %d", cmpenc.Size64, len(keyBytes))
	}
	angle, err := cmpenc.Float64(keyBytes)
	if err != nil {
		return xerrors.Errorf("decoding angle key: %w", err)
	}
	g.Angle = angle

	maj, extra, err = cr.ReadHeader()
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return xerrors.Errorf("expected a ratio list, got major type %d", maj)
	}
	if extra > cbg.MaxLength {
		return xerrors.Errorf("ratio list too long: %d", extra)
	}

	if extra > 0 {
		g.Ratios = make([]Ratio, 0, extra)
	}
	for i := uint64(0); i < extra; i++ {
		maj, n, err := cr.ReadHeader()
		if err != nil {
			return err
		}
		if maj != cbg.MajArray || n != 2 {
			return xerrors.Errorf("ratio %d: expected a 2-tuple, got major type %d length %d", i, maj, n)
		}

		var ratio Ratio
		for _, field := range []*uint32{&ratio.Adjacent, &ratio.Opposite} {
			maj, v, err := cr.ReadHeader()
			if err != nil {
				return err
			}
			if maj != cbg.MajUnsignedInt {
				return xerrors.Errorf("ratio %d: expected an unsigned int, got major type %d", i, maj)
			}
			if v > uint64(^uint32(0)) {
				return xerrors.Errorf("ratio %d: value %d overflows uint32", i, v)
			}
			*field = uint32(v)
		}
		g.Ratios = append(g.Ratios, ratio)
	}
	return nil
}
