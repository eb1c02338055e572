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
	"runtime"
	"sync"

	"seehuhn.de/go/sfnt/glyph"
)

// Options controls how a font is processed.
// A nil pointer can be used to select the default values.
type Options struct {
	// Workers is the number of glyphs processed concurrently.  If this is
	// zero, runtime.GOMAXPROCS(0) is used.
	Workers int
}

// Result holds the path data of a font.
type Result struct {
	// Glyphs has one entry for every requested glyph, in the order of the
	// request.  Entries for skipped glyphs are nil.
	Glyphs []*GlyphPaths

	// Skipped lists the glyphs which could not be converted, in the order
	// of the request.
	Skipped []*GlyphError

	// NumWarnings is the total number of warnings over all glyphs.
	NumWarnings int
}

// Font converts the given glyphs of src into path data.  If gids is nil,
// all glyphs of the font are converted.
//
// Glyphs are processed concurrently.  Failing glyphs are skipped and
// recorded in Result.Skipped.  An error is only returned if ctx is
// cancelled before all glyphs have been processed.
func Font(ctx context.Context, src Source, gids []glyph.ID, opt *Options) (*Result, error) {
	if opt == nil {
		opt = &Options{}
	}
	workers := opt.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if gids == nil {
		n := src.NumGlyphs()
		gids = make([]glyph.ID, n)
		for i := range gids {
			gids[i] = glyph.ID(i)
		}
	}

	glyphs := make([]*GlyphPaths, len(gids))
	errs := make([]*GlyphError, len(gids))

	distrib := make(chan int, 2*workers)
	var wg sync.WaitGroup
	for range min(workers, len(gids)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range distrib {
				if ctx.Err() != nil {
					continue
				}
				gp, err := Glyph(src, gids[i])
				if err != nil {
					errs[i] = toGlyphError(gids[i], err)
					continue
				}
				glyphs[i] = gp
			}
		}()
	}

feed:
	for i := range gids {
		select {
		case <-ctx.Done():
			break feed
		case distrib <- i:
			// pass
		}
	}
	close(distrib)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{Glyphs: glyphs}
	for i, err := range errs {
		if err != nil {
			tracer().Infof("fontpath: skipping %v", err)
			res.Skipped = append(res.Skipped, err)
			continue
		}
		res.NumWarnings += len(glyphs[i].Warnings)
	}
	if len(res.Skipped) > 0 {
		tracer().Errorf("fontpath: %d of %d glyphs skipped", len(res.Skipped), len(gids))
	}
	return res, nil
}

func toGlyphError(gid glyph.ID, err error) *GlyphError {
	if gErr, ok := err.(*GlyphError); ok {
		return gErr
	}
	return &GlyphError{GID: gid, Err: err}
}
