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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds the idea of program modes, each mode having its own set of
// flags and arguments.
//
// Unlike flag.FlagSet, the arguments are given with NewArgs() and then Parse()
// is called with no arguments. This allows arguments to be parsed in stages,
// one stage per mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "TERM", "PERFORMANCE")
//	md.AddSubModeAlias("RUN", "PLAY")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After parsing, md.Mode() returns the selected sub-mode. If the first
// argument after the flags is not one of the listed sub-modes then the first
// sub-mode in the list is used. All sub-mode comparisons are case
// insensitive.
//
// Mode specific flags are added after a call to NewMode():
//
//	md.NewMode()
//	scale := md.AddInt("scale", 15, "size of each display pixel")
//	p, err = md.Parse()
//
// Non-flag arguments are available through RemainingArgs() and GetArg().
// Help messages (for the -help flag) are printed to the Output writer and
// include the list of available sub-modes.
package modalflag
