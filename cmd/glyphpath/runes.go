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

package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// parseRunes parses a comma-separated list of hexadecimal code points and
// code point ranges, like "0041-005A,00C4".  An optional "U+" prefix is
// allowed.
func parseRunes(s string) ([]rune, error) {
	var res []rune
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		loStr, hiStr, isRange := strings.Cut(item, "-")
		lo, err := parseRune(loStr)
		if err != nil {
			return nil, err
		}
		hi := lo
		if isRange {
			hi, err = parseRune(hiStr)
			if err != nil {
				return nil, err
			}
		}
		if hi < lo {
			return nil, fmt.Errorf("invalid range %q", item)
		}
		for r := lo; r <= hi; r++ {
			res = append(res, r)
		}
	}
	return res, nil
}

func parseRune(s string) (rune, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "U+"), "u+")
	x, err := strconv.ParseUint(s, 16, 32)
	if err != nil || x > unicode.MaxRune {
		return 0, fmt.Errorf("invalid code point %q", s)
	}
	return rune(x), nil
}
