// Package triangle groups right-triangle ratios from an integer grid
// by the exact angle they span. Angles come out of atan2, so grid
// points on a common ray produce bit-identical float64 values; keying
// the groups by total-order float wrappers guarantees one group per
// distinct bit pattern, with no splitting or merging of keys.
package triangle

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"

	"github.com/total-float/go-total-float/floatmap"
	"github.com/total-float/go-total-float/totalfloat"
)

// Ratio is one adjacent/opposite pair from the sampled grid.
type Ratio struct {
	Adjacent uint32
	Opposite uint32
}

// Angle returns the angle the pair spans, as a total-order key.
func (r Ratio) Angle() totalfloat.TotalF64 {
	return totalfloat.TotalFloat64(math.Atan2(float64(r.Adjacent), float64(r.Opposite)))
}

// Angle32 is the single precision analogue of Angle.
func (r Ratio) Angle32() totalfloat.TotalF32 {
	return totalfloat.TotalFloat32(math32.Atan2(float32(r.Adjacent), float32(r.Opposite)))
}

// Group is one angle bucket: the shared angle and every ratio in the
// grid producing it.
type Group struct {
	Angle  totalfloat.TotalF64
	Ratios []Ratio
}

// Groups indexes the grid's ratios by their exact angle.
type Groups struct {
	byAngle *floatmap.Map[[]Ratio]
}

// GroupByAngle buckets every pair in [adjLo,adjHi]x[oppLo,oppHi] by its
// angle. Bounds are inclusive.
func GroupByAngle(adjLo, adjHi, oppLo, oppHi uint32) *Groups {
	g := &Groups{byAngle: floatmap.NewMap[[]Ratio]()}
	for adjacent := adjLo; adjacent <= adjHi; adjacent++ {
		for opposite := oppLo; opposite <= oppHi; opposite++ {
			r := Ratio{Adjacent: adjacent, Opposite: opposite}
			bucket := g.byAngle.Upsert(r.Angle())
			*bucket = append(*bucket, r)
		}
	}
	return g
}

// GroupByAngle32 buckets the same grid under single precision angles.
func GroupByAngle32(adjLo, adjHi, oppLo, oppHi uint32) *floatmap.Map32[[]Ratio] {
	m := floatmap.NewMap32[[]Ratio]()
	for adjacent := adjLo; adjacent <= adjHi; adjacent++ {
		for opposite := oppLo; opposite <= oppHi; opposite++ {
			r := Ratio{Adjacent: adjacent, Opposite: opposite}
			bucket := m.Upsert(r.Angle32())
			*bucket = append(*bucket, r)
		}
	}
	return m
}

// Len returns the number of distinct angles.
func (g *Groups) Len() int {
	return g.byAngle.Len()
}

// At returns the ratios grouped under the given angle.
func (g *Groups) At(angle totalfloat.TotalF64) []Ratio {
	ratios, _ := g.byAngle.Get(angle)
	return ratios
}

// Angles returns every angle in ascending total order.
func (g *Groups) Angles() []totalfloat.TotalF64 {
	return g.byAngle.SortedKeys()
}

// Largest returns all groups of maximal size, in ascending angle
// order.
func (g *Groups) Largest() []Group {
	max := 0
	for _, angle := range g.byAngle.Keys() {
		if n := len(g.At(angle)); n > max {
			max = n
		}
	}

	var out []Group
	for _, angle := range g.Angles() {
		if ratios := g.At(angle); len(ratios) == max {
			out = append(out, Group{Angle: angle, Ratios: ratios})
		}
	}
	return out
}

// Validate checks that every stored ratio reproduces the angle of the
// group holding it, reporting all violations at once.
func (g *Groups) Validate() error {
	var merr *multierror.Error
	for _, angle := range g.Angles() {
		ratios := g.At(angle)
		if len(ratios) == 0 {
			merr = multierror.Append(merr, xerrors.Errorf("empty group under angle %v", angle))
			continue
		}
		for _, r := range ratios {
			if !r.Angle().Eq(angle) {
				merr = multierror.Append(merr,
					xerrors.Errorf("ratio %d/%d grouped under %v but spans %v",
						r.Adjacent, r.Opposite, angle, r.Angle()))
			}
		}
	}
	return merr.ErrorOrNil()
}
