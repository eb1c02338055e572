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
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// Parse reads a path in the format written by [Path.String].  Tokens may be
// separated by any amount of white space.  The empty string gives an empty
// path.
func Parse(s string) (Path, error) {
	p := &parser{src: s}

	var res Path
	for {
		pos, tok := p.next()
		if tok == "" {
			break
		}
		op, ok := opFromToken(tok)
		if !ok {
			return nil, &ParseError{Pos: pos, Reason: "unknown segment type " + strconv.Quote(tok)}
		}
		if (op == OpStart) != (len(res) == 0) {
			if op == OpStart {
				return nil, &ParseError{Pos: pos, Reason: "unexpected start segment"}
			}
			return nil, &ParseError{Pos: pos, Reason: "path must begin with a start segment"}
		}

		seg := Segment{Op: op}
		for j := range op.NumArgs() {
			a, err := p.point()
			if err != nil {
				return nil, err
			}
			seg.Args[j] = a
		}
		res = append(res, seg)
	}
	return res, nil
}

type parser struct {
	src string
	pos int
}

// next returns the next white-space delimited token and its byte offset.
// At the end of the input, the empty string is returned.
func (p *parser) next() (int, string) {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
	start := p.pos
	for p.pos < len(p.src) && !isSpace(p.src[p.pos]) {
		p.pos++
	}
	return start, p.src[start:p.pos]
}

func (p *parser) point() (vec.Vec2, error) {
	pos, tok := p.next()
	if tok == "" {
		return vec.Vec2{}, &ParseError{Pos: pos, Reason: "unexpected end of path"}
	}
	xs, ys, ok := strings.Cut(tok, ",")
	if !ok {
		return vec.Vec2{}, &ParseError{Pos: pos, Reason: "malformed point " + strconv.Quote(tok)}
	}
	x, okX := parseNumber(xs)
	y, okY := parseNumber(ys)
	if !okX || !okY {
		return vec.Vec2{}, &ParseError{Pos: pos, Reason: "malformed point " + strconv.Quote(tok)}
	}
	return vec.Vec2{X: x, Y: y}, nil
}

func parseNumber(s string) (float64, bool) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(x, 0) || math.IsNaN(x) {
		return 0, false
	}
	return x, true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
