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

// Package display implements the 64x32 monochrome display of the CHIP-8.
//
// Cells are only ever changed by clearing the whole display or by drawing a
// sprite. Sprites are drawn by XORing each bit of the sprite with the cell
// underneath. Sprites are clipped at the right and bottom edges of the
// display. They do not wrap.
//
// The Frame type is a copy of the display cells and is what the rest of the
// emulator uses to render the display.
package display
