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

package outline

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// A Contour is one closed loop of a glyph outline, as delivered by a
// rasterizer.  Points and Flags are parallel slices.  The contour is
// circular: the last point connects back to the first one.
type Contour struct {
	Points []vec.Vec2
	Flags  []Flag
}

// A Point is an element of a canonical contour.
type Point struct {
	Pos  vec.Vec2
	Kind Kind
}

// Warning describes a recoverable problem found in an input contour.
type Warning struct {
	Index  int // index of the offending point in the input contour
	Flag   Flag
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("point %d (flags 0x%02x): %s", w.Index, uint8(w.Flag), w.Reason)
}

// Normalize converts a rasterizer contour into a canonical contour.
// It runs [Expand], [PromoteDoubleCurves] and [Compact] in turn.
//
// The result is nil for an empty contour.  Otherwise the first point is an
// on-curve point, no two quadratic control points are adjacent, and a
// closing curve ends with an explicit copy of the first point.
func Normalize(c *Contour) ([]Point, []Warning) {
	pp, warnings := Expand(c)
	if len(pp) == 0 {
		return nil, warnings
	}

	kinds := make([]Kind, len(pp))
	for i, p := range pp {
		kinds[i] = p.Kind
	}
	kinds = PromoteDoubleCurves(kinds)
	for i := range pp {
		pp[i].Kind = kinds[i]
	}

	return Compact(pp), warnings
}

// Expand inserts the on-curve points implied between consecutive quadratic
// control points, and resolves the seam between the last and the first point
// of the contour.  Inserted points are marked Hidden, except for a
// synthesized start point which is OnCurve.
//
// The output starts at the first on-curve input point.  If the contour
// starts with two quadratic control points, or has no on-curve point at
// all, the implied point between two adjacent quadratic control points is
// used as the start instead.
//
// Flags which do not describe an on-curve, quadratic or cubic point are
// reported as warnings, and the point is used as an on-curve point.  The
// same happens to the first point of a contour which has neither an
// on-curve point nor two adjacent quadratic control points.
func Expand(c *Contour) ([]Point, []Warning) {
	n := min(len(c.Points), len(c.Flags))

	e := &expander{}
	if len(c.Points) != len(c.Flags) {
		e.warn(n, 0, "points and flags differ in length")
	}
	if n == 0 {
		return nil, e.warnings
	}

	e.pts = c.Points[:n]
	e.kinds = make([]Kind, n)
	for i, f := range c.Flags[:n] {
		e.kinds[i] = e.inputKind(i, f)
	}
	e.out = make([]Point, 0, expandedCap(n))

	if n == 1 {
		e.emit(e.pts[0], OnCurve)
		return e.out, e.warnings
	}

	// The input is read in the order first, first+1, ..., n-1, where
	// position k refers to input point (k+e.offs)%n.  The point at position
	// n-1 is the tail, which is handled by closeContour.
	first := 0
	synthesized := false
	switch {
	case e.kinds[0] == OnCurve:
		// start on the first point
	case e.kinds[0] == QuadraticOffCurve && e.kinds[1] == QuadraticOffCurve:
		synthesized = true
	default:
		if i := e.find(OnCurve); i >= 0 {
			e.offs = i
		} else if i := e.findQuadPair(); i >= 0 {
			e.offs = i
			synthesized = true
		} else {
			e.warn(0, c.Flags[0], "contour has no on-curve point, using the first point")
			e.kinds[0] = OnCurve
		}
	}
	if synthesized {
		// start on the implied point between the first two points
		e.emit(midpoint(e.pts[e.index(0)], e.pts[e.index(1)]), OnCurve)
		first = 1
	}

	for k := first; k < n-1; k++ {
		e.step(e.index(k))
	}
	e.closeContour(synthesized, e.index(n-1))

	return e.out, e.warnings
}

// expandedCap returns an upper bound for the length of the output of
// Expand, for an input contour with n points.
func expandedCap(n int) int {
	return 2*n + 2
}

type expander struct {
	pts   []vec.Vec2
	kinds []Kind
	offs  int

	out      []Point
	prevQuad bool

	warnings []Warning
}

func (e *expander) index(k int) int {
	return (k + e.offs) % len(e.pts)
}

func (e *expander) inputKind(i int, f Flag) Kind {
	k := Classify(f)
	switch k {
	case OnCurve, QuadraticOffCurve, CubicOffCurve:
		return k
	}
	e.warn(i, f, fmt.Sprintf("unexpected %s point, using an on-curve point", k))
	return OnCurve
}

// find returns the index of the first input point of kind k, or -1.
func (e *expander) find(k Kind) int {
	for i, ki := range e.kinds {
		if ki == k {
			return i
		}
	}
	return -1
}

// findQuadPair returns the index of the first quadratic control point
// which is followed by another one, or -1.  The contour wraps around.
func (e *expander) findQuadPair() int {
	n := len(e.kinds)
	for i, k := range e.kinds {
		if k == QuadraticOffCurve && e.kinds[(i+1)%n] == QuadraticOffCurve {
			return i
		}
	}
	return -1
}

func (e *expander) warn(i int, f Flag, reason string) {
	w := Warning{Index: i, Flag: f, Reason: reason}
	tracer().Infof("outline: %s", w)
	e.warnings = append(e.warnings, w)
}

func (e *expander) emit(p vec.Vec2, k Kind) {
	e.out = append(e.out, Point{Pos: p, Kind: k})
}

func (e *expander) last() vec.Vec2 {
	return e.out[len(e.out)-1].Pos
}

// step copies input point i to the output.
func (e *expander) step(i int) {
	switch k := e.kinds[i]; k {
	case QuadraticOffCurve:
		if e.prevQuad {
			e.emit(midpoint(e.last(), e.pts[i]), Hidden)
		}
		e.emit(e.pts[i], QuadraticOffCurve)
		e.prevQuad = true
	default:
		e.emit(e.pts[i], k)
		e.prevQuad = false
	}
}

// seam identifies the way the tail of a contour is joined to its start.
type seam int

const (
	seamUnknown seam = iota

	// The contour starts on a synthesized point.  The first input point
	// is a quadratic control point which is emitted after the tail.
	seamSynthQuadAfterQuad // tail is quadratic, previous point is quadratic
	seamSynthQuad          // tail is quadratic, previous point is not
	seamSynthAfterNonQuad  // tail is not quadratic

	// The contour starts on an input point.
	seamQuadAfterQuad // tail is quadratic, previous point is quadratic
	seamQuad          // tail is quadratic, previous point is not
	seamNonQuad       // tail is not quadratic
)

func selectSeam(synthesized, prevQuad, tailQuad bool) seam {
	switch {
	case synthesized && tailQuad && prevQuad:
		return seamSynthQuadAfterQuad
	case synthesized && tailQuad && !prevQuad:
		return seamSynthQuad
	case synthesized && !tailQuad:
		return seamSynthAfterNonQuad
	case !synthesized && tailQuad && prevQuad:
		return seamQuadAfterQuad
	case !synthesized && tailQuad && !prevQuad:
		return seamQuad
	case !synthesized && !tailQuad:
		return seamNonQuad
	}
	return seamUnknown
}

// closeContour emits the tail point and everything needed to join it to
// the start of the output.
func (e *expander) closeContour(synthesized bool, tail int) {
	start := e.out[0].Pos
	p0 := e.pts[e.index(0)]
	t := e.pts[tail]
	tailKind := e.kinds[tail]

	switch selectSeam(synthesized, e.prevQuad, tailKind == QuadraticOffCurve) {
	case seamSynthQuadAfterQuad:
		e.emit(midpoint(e.last(), t), Hidden)
		e.emit(t, QuadraticOffCurve)
		e.emit(midpoint(t, p0), Hidden)
		e.emit(p0, QuadraticOffCurve)
		e.emit(start, OnCurve)

	case seamSynthQuad:
		e.emit(t, QuadraticOffCurve)
		e.emit(midpoint(t, p0), Hidden)
		e.emit(p0, QuadraticOffCurve)
		e.emit(start, OnCurve)

	case seamSynthAfterNonQuad:
		e.emit(t, tailKind)
		e.emit(p0, QuadraticOffCurve)
		e.emit(start, OnCurve)

	case seamQuadAfterQuad:
		e.emit(midpoint(e.last(), t), Hidden)
		e.emit(t, QuadraticOffCurve)
		e.emit(start, OnCurve)

	case seamQuad:
		e.emit(t, QuadraticOffCurve)
		e.emit(start, OnCurve)

	case seamNonQuad:
		e.emit(t, tailKind)
		if tailKind == CubicOffCurve {
			// a cubic segment needs an explicit end point
			e.emit(start, OnCurve)
		}

	default:
		e.warn(tail, tailKind.Flag(), "unexpected contour seam, using an on-curve point")
		e.emit(t, OnCurve)
	}
	e.prevQuad = false
}

// midpoint returns the point half way between prev and cur.
func midpoint(prev, cur vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: prev.X + (cur.X-prev.X)/2,
		Y: prev.Y + (cur.Y-prev.Y)/2,
	}
}
