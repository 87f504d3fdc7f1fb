// This file is part of rvboard.
//
// rvboard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rvboard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rvboard.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the application, taken from the
// build information embedded by the Go toolchain. A release build sets the
// number variable with the linker:
//
//	go build -ldflags "-X github.com/rvboard/rvboard/version.number=v0.1.0"
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "rvboard"

// set by the linker for release builds
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the vcs revision and whether this is a
// numbered release.
//
// The version is "unreleased" for a build from a vcs checkout without a
// number and "local" if there is no vcs information at all. A revision with
// uncommitted changes is suffixed with "+dirty".
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name with the version and revision.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	version, revision = fromBuildInfo(number, debug.ReadBuildInfo)
}

func fromBuildInfo(num string, read func() (*debug.BuildInfo, bool)) (string, string) {
	var vcs, modified bool
	var rev string

	if info, ok := read(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if rev == "" {
		rev = "no revision information"
	} else if modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case num != "":
		return num, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
