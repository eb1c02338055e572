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

// Package buildinfo describes the running binary.
package buildinfo

import (
	"runtime/debug"
	"strings"
)

// Version returns a version string for a command, e.g.
// "glyphpath (seehuhn.de/go/glyphpath v0.2.0, go1.24.3)".
func Version(cmdName string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return cmdName
	}
	return describe(cmdName, info)
}

func describe(cmdName string, info *debug.BuildInfo) string {
	var details []string
	if v := moduleVersion(info); v != "" {
		details = append(details, info.Main.Path+" "+v)
	}
	if info.GoVersion != "" {
		details = append(details, info.GoVersion)
	}
	if len(details) == 0 {
		return cmdName
	}
	return cmdName + " (" + strings.Join(details, ", ") + ")"
}

// moduleVersion returns the version of the main module.  For development
// builds, the abbreviated VCS revision is used instead.
func moduleVersion(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return ""
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if dirty {
		rev += "+dirty"
	}
	return rev
}
