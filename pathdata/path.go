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
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// Op identifies the type of a path segment.
type Op uint8

// These are the segment types of a path.
const (
	OpStart  Op = iota + 1 // the first point of a path
	OpLine                 // a straight line to Args[0]
	OpQuad                 // a quadratic Bézier curve with control point Args[0]
	OpCubic                // a cubic Bézier curve with control points Args[0] and Args[1]
	OpDouble               // two quadratic curves sharing an implied on-curve point
)

// Token returns the letter used for op in the path text.
func (op Op) Token() string {
	switch op {
	case OpStart:
		return "S"
	case OpLine:
		return "L"
	case OpQuad:
		return "Q"
	case OpCubic:
		return "C"
	case OpDouble:
		return "D"
	default:
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
}

// NumArgs returns the number of points stored in a segment of type op.
func (op Op) NumArgs() int {
	switch op {
	case OpStart, OpLine:
		return 1
	case OpQuad:
		return 2
	case OpCubic, OpDouble:
		return 3
	default:
		return 0
	}
}

func opFromToken(tok string) (Op, bool) {
	switch tok {
	case "S":
		return OpStart, true
	case "L":
		return OpLine, true
	case "Q":
		return OpQuad, true
	case "C":
		return OpCubic, true
	case "D":
		return OpDouble, true
	}
	return 0, false
}

// A Segment is one element of a path.
// Only the first Op.NumArgs() entries of Args are used; the last of these is
// the end point of the segment.
//
// For OpDouble, Args[0] and Args[1] are the two control points and Args[2]
// is the end point.  The curve passes through the point half way between
// the two control points.
type Segment struct {
	Op   Op
	Args [3]vec.Vec2
}

// End returns the point where the segment ends.
func (s Segment) End() vec.Vec2 {
	n := s.Op.NumArgs()
	if n == 0 {
		return vec.Vec2{}
	}
	return s.Args[n-1]
}

// Path is the serialized form of one contour.
// A non-empty path starts with exactly one OpStart segment.
type Path []Segment

// Start returns the start point of the path.
// The second return value is false if the path is empty.
func (p Path) Start() (vec.Vec2, bool) {
	if len(p) == 0 {
		return vec.Vec2{}, false
	}
	return p[0].Args[0], true
}

// End returns the point where the path ends.  Since paths are implicitly
// closed, this is always the start point.
func (p Path) End() (vec.Vec2, bool) {
	return p.Start()
}

// Scale returns a copy of the path with all coordinates multiplied by f.
func (p Path) Scale(f float64) Path {
	if p == nil {
		return nil
	}
	res := make(Path, len(p))
	for i, seg := range p {
		res[i].Op = seg.Op
		for j := range seg.Op.NumArgs() {
			a := seg.Args[j]
			res[i].Args[j] = vec.Vec2{X: a.X * f, Y: a.Y * f}
		}
	}
	return res
}

// Append appends the textual form of the path to buf and returns the
// extended buffer.
func (p Path) Append(buf []byte) []byte {
	for i, seg := range p {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, seg.Op.Token()...)
		for _, a := range seg.Args[:seg.Op.NumArgs()] {
			buf = append(buf, ' ')
			buf = appendPoint(buf, a)
		}
	}
	return buf
}

func (p Path) String() string {
	return string(p.Append(nil))
}

func appendPoint(buf []byte, a vec.Vec2) []byte {
	buf = appendNumber(buf, a.X)
	buf = append(buf, ',')
	return appendNumber(buf, a.Y)
}

// appendNumber formats x using the shortest decimal representation which
// reads back as the same value.
func appendNumber(buf []byte, x float64) []byte {
	if x == 0 {
		x = 0 // no negative zero
	}
	return strconv.AppendFloat(buf, x, 'f', -1, 64)
}
