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

// Package romloader is used to specify the program image that is to be
// attached to the emulated CHIP-8.
//
// When the program is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// different sources. Currently local files and data over HTTP are supported.
//
// The simplest instance of the Loader type:
//
//	ld := romloader.Loader{
//		Filename: "roms/IBM Logo.ch8",
//	}
//
// The Hash field can be set before loading, in which case the SHA-1 hash of
// the loaded data must match. After a successful load the Hash field always
// contains the hash of the data.
package romloader
