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

// Package cpu implements the CHIP-8 interpreter: the registers, the call
// stack and the fetch/decode/execute cycle.
//
// The CPU is connected to the rest of the machine through the interfaces in
// this package. It does not know about the concrete memory, display, keypad
// or timer types, which makes it easy to test with mock implementations.
//
// ExecuteInstruction() runs exactly one instruction. The program counter is
// advanced past the instruction before it is executed, so jump and skip
// instructions work relative to the following instruction. Execution never
// blocks. The FX0A instruction waits for a key by rewinding the program
// counter when no key is pressed, so that the same instruction is executed
// again by the next call.
//
// Errors are returned as curated errors. Address errors use the pattern from
// the memory package. Stack errors use StackOverflow and StackUnderflow from
// this package. After an error the state of the CPU is undefined.
package cpu
