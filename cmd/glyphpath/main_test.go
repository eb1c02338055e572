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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/glyphpath/fontpath"
	"seehuhn.de/go/glyphpath/outline"
	"seehuhn.de/go/glyphpath/pathdata"
)

func TestParseRunes(t *testing.T) {
	cases := []struct {
		in   string
		want []rune
	}{
		{"41", []rune{'A'}},
		{"0041-0043", []rune{'A', 'B', 'C'}},
		{"U+0041, 61-62", []rune{'A', 'a', 'b'}},
		{"", nil},
	}
	for _, c := range cases {
		got, err := parseRunes(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%q: unexpected result (-want +got):\n%s", c.in, d)
		}
	}

	for _, in := range []string{"0043-0041", "xyz", "110000", "41-"} {
		if _, err := parseRunes(in); err == nil {
			t.Errorf("%q: missing error", in)
		}
	}
}

func TestConvert(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(fname, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	p := &printer{w: buf}
	err := p.convert(context.Background(), fname, []rune{'O', '\U0010FFFD'}, &fontpath.Options{Workers: 2})
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf)
	}
	for _, line := range lines {
		fields := strings.Split(line, "\t")
		if len(fields) != 4 || fields[0] != "U+004F" || fields[1] != "O" {
			t.Fatalf("unexpected line %q", line)
		}
		advance, err := strconv.ParseFloat(fields[2], 64)
		if err != nil || advance <= 0 || advance > 200 {
			t.Errorf("unexpected advance width %q", fields[2])
		}
		if _, err := pathdata.Parse(fields[3]); err != nil {
			t.Error(err)
		}
	}
}

func TestSetupTracing(t *testing.T) {
	defer tracing.SetTraceSelector(nil)

	setupTracing(false)
	for _, key := range traceKeys {
		if l := tracing.Select(key).GetTraceLevel(); l != tracing.LevelError {
			t.Errorf("%s: level %s, want error", key, l)
		}
	}

	setupTracing(true)
	for _, key := range traceKeys {
		if l := tracing.Select(key).GetTraceLevel(); l != tracing.LevelInfo {
			t.Errorf("%s: level %s, want info", key, l)
		}
	}

	buf := &bytes.Buffer{}
	tracing.Select("glyphpath.outline").SetOutput(buf)
	res, err := fontpath.Font(context.Background(), hiddenPointSource{}, nil, &fontpath.Options{Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	if res.NumWarnings != 1 {
		t.Errorf("got %d warnings, want 1", res.NumWarnings)
	}
	if !strings.Contains(buf.String(), "unexpected hidden point") {
		t.Errorf("warning was not traced, output is %q", buf)
	}
}

// hiddenPointSource has a single glyph with a hidden point flag.
type hiddenPointSource struct{}

func (hiddenPointSource) UnitsPerEm() uint16 { return 1000 }

func (hiddenPointSource) NumGlyphs() int { return 1 }

func (hiddenPointSource) Contours(glyph.ID) ([]outline.Contour, error) {
	return []outline.Contour{
		{
			Points: []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}},
			Flags:  []outline.Flag{outline.FlagOnCurve, outline.FlagHidden, outline.FlagOnCurve},
		},
	}, nil
}
