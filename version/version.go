// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher8"

// number is set by the linker for numbered releases. if it is empty then the
// project was not built with the release tooling
var number string

// the vcs revision. suffixed with "+dirty" if the source was modified but not
// committed
var revision string

// the current version. "unreleased" means the project was built by hand from
// a vcs checkout. "local" means there is neither a version number nor vcs
// information, as happens with "go run ."
var version string

// Version returns the version string, the revision string and whether this is
// a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Title returns the application name and version, suitable for a window
// title.
func Title() string {
	return fmt.Sprintf("%s (%s)", ApplicationName, version)
}

func init() {
	var vcs bool
	var vcsModified bool

	revision = "no revision information"

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsModified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
