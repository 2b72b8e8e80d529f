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

// Package memory implements the 4096 byte address space of the CHIP-8.
//
// The bottom 512 bytes were originally occupied by the interpreter itself.
// Only the font is placed there, starting at FontBase. Programs are loaded at
// ProgramOrigin.
//
//	0x000 - 0x04f	unused
//	0x050 - 0x09f	font (16 glyphs of GlyphSize bytes)
//	0x0a0 - 0x1ff	unused
//	0x200 - 0xfff	program and data
//
// Every access is bounds checked. Addresses outside the address space result
// in a curated error with the AddressOutOfRange pattern. There is no
// mirroring or wrapping.
package memory
