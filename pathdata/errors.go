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

	"seehuhn.de/go/glyphpath/outline"
)

// ContractError is returned by [Serialize] when a segment needs more points
// than are left in the canonical contour.  This indicates a defect in the
// code which produced the contour; the glyph should be skipped.
type ContractError struct {
	Index int          // position of the first point of the segment
	Kind  outline.Kind // kind of the point at Index
	Need  int          // number of points the segment needs
	Len   int          // length of the contour
}

func (err *ContractError) Error() string {
	return "pathdata: " + err.Kind.String() + " segment at point " +
		strconv.Itoa(err.Index) + " needs " + strconv.Itoa(err.Need) +
		" points, contour has " + strconv.Itoa(err.Len)
}

// ParseError indicates malformed path text.
type ParseError struct {
	Pos    int // byte offset of the offending token
	Reason string
}

func (err *ParseError) Error() string {
	return "pathdata: byte " + strconv.Itoa(err.Pos) + ": " + err.Reason
}

// UnitsError is returned for a units-per-em value which cannot be used to
// scale coordinates.
type UnitsError struct {
	UnitsPerEm float64
}

func (err *UnitsError) Error() string {
	return "pathdata: invalid units per em " +
		strconv.FormatFloat(err.UnitsPerEm, 'g', -1, 64)
}
