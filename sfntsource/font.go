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

// Package sfntsource reads glyph outlines from TrueType and OpenType fonts.
//
// A [Font] implements the seehuhn.de/go/glyphpath/fontpath.Source interface.
// For TrueType outlines, the points and flags of simple glyphs are passed on
// unchanged, so that the implied on-curve points are resolved by package
// seehuhn.de/go/glyphpath/outline.  Composite glyphs and CFF outlines are
// converted from their path representation.
package sfntsource

import (
	"fmt"
	"io"

	"github.com/npillmayer/schuko/tracing"

	geompath "seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/glyphpath/outline"
)

func tracer() tracing.Trace {
	return tracing.Select("glyphpath.sfntsource")
}

// Font gives access to the glyph outlines of an sfnt font.
// The methods of Font can be called concurrently.
type Font struct {
	info *sfnt.Font
	cmap cmap.Subtable
}

// New wraps an sfnt font.  The font must not be modified afterwards.
func New(info *sfnt.Font) *Font {
	info.EnsureGlyphNames()

	f := &Font{info: info}
	subtable, err := info.CMapTable.GetBest()
	if err != nil {
		tracer().Infof("sfntsource: %s: no usable cmap: %v", info.PostScriptName(), err)
	} else {
		f.cmap = subtable
	}
	return f
}

// Read reads a font from r.
func Read(r io.Reader) (*Font, error) {
	info, err := sfnt.Read(r)
	if err != nil {
		return nil, fmt.Errorf("sfntsource: %w", err)
	}
	return New(info), nil
}

// Open reads a font from the named file.
func Open(fname string) (*Font, error) {
	info, err := sfnt.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("sfntsource: %w", err)
	}
	return New(info), nil
}

// PostScriptName returns the PostScript name of the font.
func (f *Font) PostScriptName() string {
	return f.info.PostScriptName()
}

// UnitsPerEm returns the size of the em square in font design units.
func (f *Font) UnitsPerEm() uint16 {
	return f.info.UnitsPerEm
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.info.NumGlyphs()
}

// Lookup returns the glyph used for r.  If the font has no glyph for r, 0
// is returned.
func (f *Font) Lookup(r rune) glyph.ID {
	if f.cmap == nil {
		return 0
	}
	return f.cmap.Lookup(r)
}

// GlyphName returns the name of a glyph.
func (f *Font) GlyphName(gid glyph.ID) string {
	return f.info.GlyphName(gid)
}

// Advance returns the advance width of a glyph, in font design units.
func (f *Font) Advance(gid glyph.ID) float64 {
	if int(gid) >= f.info.NumGlyphs() || f.info.Outlines == nil {
		return 0
	}
	return f.info.GlyphWidth(gid)
}

// Contours returns the outline of a glyph.
func (f *Font) Contours(gid glyph.ID) ([]outline.Contour, error) {
	if int(gid) >= f.info.NumGlyphs() {
		return nil, &InvalidGlyphError{GID: gid, Reason: "glyph ID out of range"}
	}
	if f.info.Outlines == nil {
		return nil, &InvalidGlyphError{GID: gid, Reason: "font has no outlines"}
	}

	outlines, ok := f.info.Outlines.(*glyf.Outlines)
	if !ok {
		return pathContours(f.info, gid), nil
	}

	g := outlines.Glyphs[gid]
	if g == nil {
		return nil, nil
	}
	simple, ok := g.Data.(glyf.SimpleGlyph)
	if !ok {
		// composite glyph
		return pathContours(f.info, gid), nil
	}

	glyphInfo, err := simple.Unpack()
	if err != nil {
		return nil, &InvalidGlyphError{GID: gid, Reason: err.Error()}
	}
	res := make([]outline.Contour, len(glyphInfo.Contours))
	for i, cc := range glyphInfo.Contours {
		c := outline.Contour{
			Points: make([]vec.Vec2, len(cc)),
			Flags:  make([]outline.Flag, len(cc)),
		}
		for j, p := range cc {
			c.Points[j] = vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
			if p.OnCurve {
				c.Flags[j] = outline.FlagOnCurve
			} else {
				c.Flags[j] = outline.FlagQuadratic
			}
		}
		res[i] = c
	}
	return res, nil
}

// pathContours converts the path of a glyph into contours.
func pathContours(info *sfnt.Font, gid glyph.ID) []outline.Contour {
	b := &contourBuilder{}
	for cmd, pts := range info.Outlines.Path(gid) {
		switch cmd {
		case geompath.CmdMoveTo:
			b.close()
			b.add(pts[0], outline.FlagOnCurve)
		case geompath.CmdLineTo:
			b.add(pts[0], outline.FlagOnCurve)
		case geompath.CmdQuadTo:
			b.add(pts[0], outline.FlagQuadratic)
			b.add(pts[1], outline.FlagOnCurve)
		case geompath.CmdCubeTo:
			b.add(pts[0], outline.FlagCubic)
			b.add(pts[1], outline.FlagCubic)
			b.add(pts[2], outline.FlagOnCurve)
		case geompath.CmdClose:
			b.close()
		}
	}
	b.close()
	return b.res
}

// contourBuilder collects the points of path commands into contours.
type contourBuilder struct {
	res []outline.Contour
	cur outline.Contour
}

func (b *contourBuilder) add(p vec.Vec2, flag outline.Flag) {
	b.cur.Points = append(b.cur.Points, p)
	b.cur.Flags = append(b.cur.Flags, flag)
}

// close finishes the current contour.  Contours are circular, so a final
// on-curve point which repeats the start point is dropped.
func (b *contourBuilder) close() {
	n := len(b.cur.Points)
	if n == 0 {
		return
	}
	if n > 1 && b.cur.Flags[n-1] == outline.FlagOnCurve && b.cur.Points[n-1] == b.cur.Points[0] {
		b.cur.Points = b.cur.Points[:n-1]
		b.cur.Flags = b.cur.Flags[:n-1]
	}
	b.res = append(b.res, b.cur)
	b.cur = outline.Contour{}
}

// InvalidGlyphError indicates a glyph which cannot be read.
type InvalidGlyphError struct {
	GID    glyph.ID
	Reason string
}

func (err *InvalidGlyphError) Error() string {
	return fmt.Sprintf("sfntsource: glyph %d: %s", err.GID, err.Reason)
}
