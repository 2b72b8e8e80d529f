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

// Package termplay is a gui.GUI implementation that runs in a terminal. The
// display is drawn with half-block characters so that each character cell
// shows two rows of CHIP-8 pixels.
//
// Terminals report key presses but not key releases. A key therefore counts
// as pressed for a short number of frames after its byte arrives. Terminal
// auto-repeat keeps a held key pressed.
//
// The escape key quits, backspace resets the machine and space pauses.
package termplay
