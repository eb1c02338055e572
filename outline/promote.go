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

// PromoteDoubleCurves decides the fate of the Hidden points in a canonical
// kind sequence.  The input is not modified; the result is a new slice of
// the same length.
//
// A Hidden point between two quadratic off-curve points stays hidden and its
// two neighbours become DoubleCurve points.  Every other Hidden point is
// demoted to OnCurve.  Promotions never overlap: a Hidden point directly
// after a promoted triple is demoted, and the earliest eligible triple wins.
// Position 0 is never examined.
//
// Running the function on its own output returns the same sequence.
func PromoteDoubleCurves(kinds []Kind) []Kind {
	res := make([]Kind, len(kinds))
	copy(res, kinds)

	inDoubleCurve := false
	for i := 1; i < len(kinds); i++ {
		switch kinds[i] {
		case OnCurve:
			inDoubleCurve = false
		case Hidden:
			hasNext := i+1 < len(kinds)
			switch {
			case inDoubleCurve:
				res[i] = OnCurve
				inDoubleCurve = false
			case hasNext && kinds[i-1] == DoubleCurve && kinds[i+1] == DoubleCurve:
				// promoted by an earlier pass
				inDoubleCurve = true
			case hasNext && kinds[i-1] == QuadraticOffCurve && kinds[i+1] == QuadraticOffCurve:
				res[i-1] = DoubleCurve
				res[i+1] = DoubleCurve
				inDoubleCurve = true
			default:
				res[i] = OnCurve
				inDoubleCurve = false
			}
		}
	}
	return res
}
