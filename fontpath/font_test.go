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

package fontpath

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/glyphpath/outline"
)

var errBroken = errors.New("broken glyph")

// testSource has square glyphs.  Glyph i is a square of side length i+1,
// except for the glyphs listed in broken, panics and blank.
type testSource struct {
	numGlyphs  int
	unitsPerEm uint16
	broken     map[glyph.ID]bool
	panics     map[glyph.ID]bool
	blank      map[glyph.ID]bool
}

func (s *testSource) UnitsPerEm() uint16 { return s.unitsPerEm }

func (s *testSource) NumGlyphs() int { return s.numGlyphs }

func (s *testSource) Contours(gid glyph.ID) ([]outline.Contour, error) {
	switch {
	case s.broken[gid]:
		return nil, errBroken
	case s.panics[gid]:
		panic("corrupted glyph data")
	case s.blank[gid]:
		return nil, nil
	}
	a := float64(gid) + 1
	return []outline.Contour{
		{
			Points: []vec.Vec2{{X: 0, Y: 0}, {X: a, Y: 0}, {X: a, Y: a}, {X: 0, Y: a}},
			Flags:  []outline.Flag{outline.FlagOnCurve, outline.FlagOnCurve, outline.FlagQuadratic, outline.FlagOnCurve},
		},
		{}, // empty contours are dropped
	}, nil
}

func TestGlyph(t *testing.T) {
	src := &testSource{numGlyphs: 10, unitsPerEm: 100}
	gp, err := Glyph(src, 4)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, p := range gp.Paths {
		got = append(got, p.String())
	}
	want := []string{"S 0,0 L 5,0 Q 5,5 0,5"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected paths (-want +got):\n%s", d)
	}
}

func TestGlyphErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphpath.fontpath")
	defer teardown()

	src := &testSource{
		numGlyphs:  10,
		unitsPerEm: 1000,
		broken:     map[glyph.ID]bool{1: true},
		panics:     map[glyph.ID]bool{2: true},
	}
	for _, gid := range []glyph.ID{1, 2, 10} {
		gp, err := Glyph(src, gid)
		var gErr *GlyphError
		if !errors.As(err, &gErr) || gErr.GID != gid || gp != nil {
			t.Errorf("glyph %d: got %v %v", gid, gp, err)
		}
	}
	if _, err := Glyph(src, 1); !errors.Is(err, errBroken) {
		t.Errorf("source error not wrapped: %v", err)
	}

	src.unitsPerEm = 0
	if _, err := Glyph(src, 3); err == nil {
		t.Error("missing error for invalid units per em")
	}
}

func TestFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphpath.fontpath")
	defer teardown()

	src := &testSource{
		numGlyphs:  200,
		unitsPerEm: 100,
		broken:     map[glyph.ID]bool{17: true},
		panics:     map[glyph.ID]bool{3: true, 150: true},
		blank:      map[glyph.ID]bool{0: true},
	}
	for _, workers := range []int{0, 1, 7} {
		res, err := Font(context.Background(), src, nil, &Options{Workers: workers})
		if err != nil {
			t.Fatal(err)
		}
		if len(res.Glyphs) != src.numGlyphs {
			t.Fatalf("got %d glyphs, want %d", len(res.Glyphs), src.numGlyphs)
		}

		var skipped []glyph.ID
		for _, gErr := range res.Skipped {
			skipped = append(skipped, gErr.GID)
		}
		if d := cmp.Diff([]glyph.ID{3, 17, 150}, skipped); d != "" {
			t.Errorf("unexpected skipped glyphs (-want +got):\n%s", d)
		}

		for i, gp := range res.Glyphs {
			gid := glyph.ID(i)
			switch {
			case src.broken[gid] || src.panics[gid]:
				if gp != nil {
					t.Errorf("glyph %d was not skipped", gid)
				}
			case src.blank[gid]:
				if gp == nil || len(gp.Paths) != 0 {
					t.Errorf("unexpected result for blank glyph: %v", gp)
				}
			default:
				if gp == nil || gp.GID != gid || len(gp.Paths) != 1 {
					t.Fatalf("unexpected result for glyph %d: %v", gid, gp)
				}
				x := gp.Paths[0][1].Args[0].X
				if x != float64(gid)+1 {
					t.Errorf("glyph %d: result out of order, got x=%g", gid, x)
				}
			}
		}
		if res.NumWarnings != 0 {
			t.Errorf("got %d warnings", res.NumWarnings)
		}
	}
}

func TestFontSubset(t *testing.T) {
	src := &testSource{numGlyphs: 20, unitsPerEm: 100}
	gids := []glyph.ID{9, 2, 2, 30}
	res, err := Font(context.Background(), src, gids, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, gp := range res.Glyphs[:3] {
		if gp == nil || gp.GID != gids[i] {
			t.Errorf("%d: unexpected result %v", i, gp)
		}
	}
	if res.Glyphs[3] != nil || len(res.Skipped) != 1 || res.Skipped[0].GID != 30 {
		t.Errorf("glyph 30 was not skipped")
	}

	res, err = Font(context.Background(), src, []glyph.ID{}, nil)
	if err != nil || len(res.Glyphs) != 0 {
		t.Errorf("unexpected result %v %v", res, err)
	}
}

func TestFontWarnings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphpath.outline")
	defer teardown()

	src := &warnSource{}
	res, err := Font(context.Background(), src, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.NumWarnings != 2 {
		t.Errorf("got %d warnings, want 2", res.NumWarnings)
	}
	w := res.Glyphs[1].Warnings[0]
	if w.Contour != 0 || w.Index != 1 {
		t.Errorf("unexpected warning %s", w)
	}
}

// warnSource has two glyphs with one hidden point flag each.
type warnSource struct{}

func (warnSource) UnitsPerEm() uint16 { return 2048 }

func (warnSource) NumGlyphs() int { return 2 }

func (warnSource) Contours(gid glyph.ID) ([]outline.Contour, error) {
	return []outline.Contour{
		{
			Points: []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}},
			Flags:  []outline.Flag{outline.FlagOnCurve, outline.FlagHidden, outline.FlagOnCurve},
		},
	}, nil
}

func TestFontCancel(t *testing.T) {
	src := &testSource{numGlyphs: 1000, unitsPerEm: 100}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Font(ctx, src, nil, &Options{Workers: 4})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
