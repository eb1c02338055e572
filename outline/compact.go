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

// Compact removes all Hidden points from pp.  The remaining points are moved
// to the front of pp, keeping their order, and the rest of the slice is
// zeroed.  The shortened slice is returned.
func Compact(pp []Point) []Point {
	n := 0
	for _, p := range pp {
		if p.Kind == Hidden {
			continue
		}
		pp[n] = p
		n++
	}
	clear(pp[n:])
	return pp[:n]
}
