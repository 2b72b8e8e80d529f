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

// Package hardware is the base package for the CHIP-8 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Chip8 type is the root of the emulation and contains external
// references to all the components of the machine:
//
//	CPU	the interpreter (registers, stack, fetch/decode/execute)
//	Mem	the 4096 byte address space
//	Screen	the 64x32 display
//	Keys	the sixteen key keypad
//	Timers	the delay and sound timers
//
// A Chip8 is driven by two clocks. Step() should be called at the rate of
// the instruction clock and TickTimers() at the rate of the timer clock. The
// clocks package defines both rates. The caller of these functions is the
// only owner of the Chip8 and the type is not safe for concurrent use.
//
// Fatal errors returned by Step() halt the instruction clock. Step() returns
// an error with the Halted pattern until the machine is reset. The timers
// continue to run.
package hardware
