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

// Package prefs holds the preference types used throughout the emulator and
// the Disk type which saves and loads them.
//
// Preference values are added to a Disk under a key. By convention the key is
// prefixed with the name of the package that owns the value:
//
//	var ips prefs.Int
//	dsk.Add("hardware.ips", &ips)
//
// The file on disk has one "key :: value" line per preference. Keys not known
// to a Disk instance are preserved when that instance saves, so several
// packages can share the same file.
//
// Values can be overridden from the command line with the preference stack.
// See PushCommandLineStack().
package prefs
