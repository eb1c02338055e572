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

import "fmt"

// Flag is the per-point flag byte of a rasterizer outline.
type Flag uint8

// These are the bits of a Flag which determine the kind of a point.  A
// point without any of these bits set is a quadratic off-curve point.
// Rasterizers use the remaining bits for scan control and drop-out modes;
// these bits are ignored.
const (
	FlagQuadratic Flag = 0
	FlagOnCurve   Flag = 1 << 0
	FlagCubic     Flag = 1 << 1
	FlagHidden    Flag = 1 << 3
)

// Kind describes the role of a point in a contour.
type Kind uint8

// These are the possible point kinds.
const (
	// Invalid is the zero Kind.  It is never returned by [Classify].
	Invalid Kind = iota

	// OnCurve points are passed through by the outline.
	OnCurve

	// QuadraticOffCurve points are the control point of a quadratic
	// Bézier segment.
	QuadraticOffCurve

	// CubicOffCurve points come in pairs and are the control points of a
	// cubic Bézier segment.
	CubicOffCurve

	// Hidden points are synthesized on-curve points which wait for
	// [PromoteDoubleCurves] to decide whether they are kept.
	Hidden

	// DoubleCurve points are the two control points of a pair of
	// quadratic segments which share a hidden on-curve point.
	DoubleCurve
)

// Classify returns the kind of point described by a flag byte.
//
// The on-curve bit takes precedence over all other bits, followed by the
// cubic bit.  The hidden bit on its own gives a Hidden point.  Classify
// never returns Invalid or DoubleCurve.
func Classify(f Flag) Kind {
	switch {
	case f&FlagOnCurve != 0:
		return OnCurve
	case f&FlagCubic != 0:
		return CubicOffCurve
	case f&FlagHidden != 0:
		return Hidden
	default:
		return QuadraticOffCurve
	}
}

// Flag returns a flag byte for k.  Double curve points have no flag of
// their own and are mapped to FlagQuadratic.  Invalid is mapped to
// FlagOnCurve.
func (k Kind) Flag() Flag {
	switch k {
	case QuadraticOffCurve, DoubleCurve:
		return FlagQuadratic
	case CubicOffCurve:
		return FlagCubic
	case Hidden:
		return FlagHidden
	default:
		return FlagOnCurve
	}
}

// IsOffCurve reports whether k is one of the control point kinds.
func (k Kind) IsOffCurve() bool {
	return k == QuadraticOffCurve || k == CubicOffCurve || k == DoubleCurve
}

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case OnCurve:
		return "on"
	case QuadraticOffCurve:
		return "quad"
	case CubicOffCurve:
		return "cubic"
	case Hidden:
		return "hidden"
	case DoubleCurve:
		return "double"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}
