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
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/term"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/glyphpath/fontpath"
	"seehuhn.de/go/glyphpath/internal/buildinfo"
	"seehuhn.de/go/glyphpath/internal/profile"
	"seehuhn.de/go/glyphpath/pathdata"
	"seehuhn.de/go/glyphpath/sfntsource"
)

var (
	runesArg   = flag.String("runes", "0020-007E", "characters to convert, as hex `ranges`")
	gidArg     = flag.Bool("gid", false, "convert all glyphs, by glyph ID")
	workersArg = flag.Int("workers", 0, "number of concurrent workers (0 = GOMAXPROCS)")
	verboseArg = flag.Bool("v", false, "trace warnings for individual points")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

var traceKeys = []string{
	"glyphpath.outline",
	"glyphpath.pathdata",
	"glyphpath.fontpath",
	"glyphpath.sfntsource",
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "glyphpath \u2014 print glyph outlines as path data\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Version("glyphpath"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  glyphpath [options] <font.ttf>...\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  font.ttf   one or more TrueType or OpenType fonts\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  glyphpath font.ttf\n")
		fmt.Fprintf(os.Stderr, "  glyphpath -runes 0041-005A,00C4 font.otf\n")
		fmt.Fprintf(os.Stderr, "  glyphpath -gid font.ttf\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	prof, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		if err := prof.Stop(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}()

	setupTracing(*verboseArg)

	var rr []rune
	if !*gidArg {
		rr, err = parseRunes(*runesArg)
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := &printer{
		w:          os.Stdout,
		showNames:  term.IsTerminal(int(os.Stdout.Fd())),
		showHeader: flag.NArg() > 1,
	}
	opt := &fontpath.Options{Workers: *workersArg}
	for _, fname := range flag.Args() {
		err := p.convert(ctx, fname, rr, opt)
		if err != nil {
			return err
		}
	}
	return nil
}

// setupTracing routes the tracers of all glyphpath packages to the standard
// logger.  Point level warnings are only shown if verbose is set.
func setupTracing(verbose bool) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))

	level := tracing.LevelError
	if verbose {
		level = tracing.LevelInfo
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

type printer struct {
	w          io.Writer
	showNames  bool
	showHeader bool
}

// convert prints the paths of all glyphs in rr, or of all glyphs in the
// font if rr is nil.  Every contour gives one line, containing the glyph
// label, the glyph name, the advance width and the path.  Advance widths
// use the same scale as the path coordinates.
func (p *printer) convert(ctx context.Context, fname string, rr []rune, opt *fontpath.Options) error {
	f, err := sfntsource.Open(fname)
	if err != nil {
		return err
	}

	var gids []glyph.ID
	var mapped []rune
	if rr != nil {
		gids = make([]glyph.ID, 0, len(rr))
		for _, r := range rr {
			gid := f.Lookup(r)
			if gid == 0 {
				continue
			}
			gids = append(gids, gid)
			mapped = append(mapped, r)
		}
	}

	res, err := fontpath.Font(ctx, f, gids, opt)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	scale := pathdata.Units(float64(f.UnitsPerEm()))
	if p.showHeader {
		fmt.Fprintf(p.w, "# %s (%s)\n", fname, f.PostScriptName())
	}
	for i, gp := range res.Glyphs {
		if gp == nil {
			continue
		}
		var label string
		if rr != nil {
			r := mapped[i]
			label = fmt.Sprintf("U+%04X", r)
			if p.showNames {
				fmt.Fprintf(p.w, "# %s\n", runenames.Name(r))
			}
		} else {
			label = strconv.Itoa(int(gp.GID))
		}
		name := f.GlyphName(gp.GID)
		advance := strconv.FormatFloat(f.Advance(gp.GID)*scale, 'f', -1, 64)
		for _, path := range gp.Paths {
			_, err := fmt.Fprintf(p.w, "%s\t%s\t%s\t%s\n", label, name, advance, path)
			if err != nil {
				return err
			}
		}
	}

	if res.NumWarnings > 0 || len(res.Skipped) > 0 {
		fmt.Fprintf(os.Stderr, "%s: %d glyphs, %d warnings, %d skipped\n",
			fname, len(res.Glyphs), res.NumWarnings, len(res.Skipped))
		for _, gErr := range res.Skipped {
			fmt.Fprintf(os.Stderr, "  %v\n", gErr)
		}
	}
	return nil
}
