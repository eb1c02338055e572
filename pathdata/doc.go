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

// Package pathdata serializes canonical glyph contours into a compact
// textual path description.
//
// A path starts with a single "S" segment giving the start point, followed
// by line ("L"), quadratic ("Q"), cubic ("C") and double curve ("D")
// segments.  Points are written as "x,y".  There is no closing token: a
// path implicitly closes back to its start point.  For example:
//
//	S 5,0 Q 10,0 10,10 L 0,10 Q 0,0 5,0
//
// Coordinates are scaled from font design units to 100 units per em, see
// [Units].
package pathdata

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("glyphpath.pathdata")
}
