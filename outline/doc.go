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

// Package outline converts the contours of a glyph, as delivered by a font
// rasterizer, into canonical point sequences.
//
// Rasterizers store a contour as a circular list of points.  Two consecutive
// quadratic off-curve points imply an on-curve point half way between them,
// and the last point of a contour connects back to the first one.  The
// functions in this package make all of these implied points explicit:
//
//   - [Classify] maps a flag byte to a [Kind].
//   - [Expand] walks the circular input once and inserts the implied
//     on-curve points, resolving the seam between the last and the first
//     point.
//   - [PromoteDoubleCurves] decides which of the inserted points join two
//     quadratic segments into one double curve.
//   - [Compact] removes the points which are no longer needed.
//
// [Normalize] runs all of these steps.  The result starts with an on-curve
// point and can be serialized by package seehuhn.de/go/glyphpath/pathdata.
//
// Only [Compact] modifies its argument.  No function keeps state between
// calls, so different contours can be processed concurrently.
package outline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the outline tracer.
func tracer() tracing.Trace {
	return tracing.Select("glyphpath.outline")
}
