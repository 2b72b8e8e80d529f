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

// Package clocks defines the constant values that define the speed of the two
// clocks driving the CHIP-8 machine.
//
// The timer clock is fixed. The instruction clock has no definitive value
// because the original interpreters ran at whatever speed the host allowed.
// InstructionsPerSecond is the default and can be changed with the
// hardware.ips preference.
package clocks

const (
	// InstructionsPerSecond is the default rate of the instruction clock.
	InstructionsPerSecond = 700

	// TimerFrequency is the rate at which the delay and sound timers are
	// decremented. It is also the frame rate of the display.
	TimerFrequency = 60
)

const (
	// MinInstructionsPerSecond and MaxInstructionsPerSecond bound the
	// instruction clock.
	MinInstructionsPerSecond = 1
	MaxInstructionsPerSecond = 100000
)
