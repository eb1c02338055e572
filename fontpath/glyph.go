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

// Package fontpath converts all glyphs of a font into path data.
//
// The glyph outlines are read from a [Source].  Every contour is normalized
// using package seehuhn.de/go/glyphpath/outline and serialized using
// package seehuhn.de/go/glyphpath/pathdata.  Problems with a single glyph
// never stop the processing of a font: the glyph is skipped and the problem
// is recorded in the [Result].
package fontpath

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/glyphpath/outline"
	"seehuhn.de/go/glyphpath/pathdata"
)

func tracer() tracing.Trace {
	return tracing.Select("glyphpath.fontpath")
}

// Source gives access to the raw glyph outlines of a font.
// Implementations must allow concurrent calls to Contours.
type Source interface {
	// UnitsPerEm returns the size of the em square in font design units.
	UnitsPerEm() uint16

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// Contours returns the contours of the given glyph.  Blank glyphs
	// have no contours.
	Contours(gid glyph.ID) ([]outline.Contour, error)
}

// GlyphPaths holds the path data of one glyph.
type GlyphPaths struct {
	GID glyph.ID

	// Paths has one entry for every non-empty contour of the glyph.
	Paths []pathdata.Path

	Warnings []Warning
}

// Warning is a recoverable problem found in one contour of a glyph.
type Warning struct {
	Contour int
	outline.Warning
}

func (w Warning) String() string {
	return fmt.Sprintf("contour %d, %s", w.Contour, w.Warning)
}

// GlyphError indicates that a glyph had to be skipped.
type GlyphError struct {
	GID glyph.ID
	Err error
}

func (err *GlyphError) Error() string {
	return fmt.Sprintf("glyph %d: %v", err.GID, err.Err)
}

func (err *GlyphError) Unwrap() error {
	return err.Err
}

// Glyph converts all contours of one glyph into path data.
//
// Any failure, including a panic inside src, is returned as a
// [*GlyphError].
func Glyph(src Source, gid glyph.ID) (gp *GlyphPaths, err error) {
	defer func() {
		if r := recover(); r != nil {
			gp = nil
			err = &GlyphError{GID: gid, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if int(gid) >= src.NumGlyphs() {
		return nil, &GlyphError{GID: gid, Err: errors.New("glyph ID out of range")}
	}
	contours, err := src.Contours(gid)
	if err != nil {
		return nil, &GlyphError{GID: gid, Err: err}
	}

	unitsPerEm := float64(src.UnitsPerEm())
	gp = &GlyphPaths{GID: gid}
	for i := range contours {
		pp, warnings := outline.Normalize(&contours[i])
		for _, w := range warnings {
			gp.Warnings = append(gp.Warnings, Warning{Contour: i, Warning: w})
		}
		path, err := pathdata.Serialize(pp, unitsPerEm)
		if err != nil {
			return nil, &GlyphError{GID: gid, Err: fmt.Errorf("contour %d: %w", i, err)}
		}
		if len(path) > 0 {
			gp.Paths = append(gp.Paths, path)
		}
	}
	return gp, nil
}
