// seehuhn.de/go/glyphpath - normalize glyph outlines into path data
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pathdata

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphpath/outline"
)

// Units returns the factor which converts font design units into path
// coordinates, which use 100 units per em.
func Units(unitsPerEm float64) float64 {
	return 100 / unitsPerEm
}

// Serialize converts a canonical contour, as returned by
// [outline.Normalize], into a path.  All coordinates are multiplied by
// Units(unitsPerEm).
//
// The first point becomes the start of the path.  After that, every cubic
// or double curve point starts a segment with three points, every quadratic
// point starts a segment with two points, and every on-curve point gives a
// line segment.  Hidden points are skipped.  Points of unknown kind are
// traced and skipped.
//
// If a segment runs past the end of pp, a [*ContractError] is returned.  An
// empty contour gives an empty path.
func Serialize(pp []outline.Point, unitsPerEm float64) (Path, error) {
	if !(unitsPerEm > 0) || math.IsInf(unitsPerEm, 0) {
		return nil, &UnitsError{UnitsPerEm: unitsPerEm}
	}
	if len(pp) == 0 {
		return nil, nil
	}
	units := Units(unitsPerEm)
	scale := func(p vec.Vec2) vec.Vec2 {
		return vec.Vec2{X: p.X * units, Y: p.Y * units}
	}

	res := make(Path, 0, len(pp))
	res = append(res, Segment{Op: OpStart, Args: [3]vec.Vec2{scale(pp[0].Pos)}})

	i := 1
	for i < len(pp) {
		var op Op
		switch kind := pp[i].Kind; kind {
		case outline.Hidden:
			i++
			continue
		case outline.CubicOffCurve:
			op = OpCubic
		case outline.DoubleCurve:
			op = OpDouble
		case outline.QuadraticOffCurve:
			op = OpQuad
		case outline.OnCurve:
			op = OpLine
		default:
			tracer().Infof("pathdata: skipping point %d of kind %s", i, kind)
			i++
			continue
		}

		n := op.NumArgs()
		if i+n > len(pp) {
			return nil, &ContractError{
				Index: i,
				Kind:  pp[i].Kind,
				Need:  n,
				Len:   len(pp),
			}
		}
		seg := Segment{Op: op}
		for j := range n {
			seg.Args[j] = scale(pp[i+j].Pos)
		}
		res = append(res, seg)
		i += n
	}
	return res, nil
}

// Points converts the path back into a canonical contour.  This is the
// inverse of [Serialize] for contours without hidden points, up to the
// scaling of coordinates.
func (p Path) Points() []outline.Point {
	if len(p) == 0 {
		return nil
	}
	var res []outline.Point
	for _, seg := range p {
		var kinds []outline.Kind
		switch seg.Op {
		case OpStart, OpLine:
			kinds = []outline.Kind{outline.OnCurve}
		case OpQuad:
			kinds = []outline.Kind{outline.QuadraticOffCurve, outline.OnCurve}
		case OpCubic:
			kinds = []outline.Kind{outline.CubicOffCurve, outline.CubicOffCurve, outline.OnCurve}
		case OpDouble:
			kinds = []outline.Kind{outline.DoubleCurve, outline.DoubleCurve, outline.OnCurve}
		}
		for j, k := range kinds {
			res = append(res, outline.Point{Pos: seg.Args[j], Kind: k})
		}
	}
	return res
}
