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

// Package instructions decodes 16 bit CHIP-8 opcodes into the Instruction
// type. Decoding is total: every possible opcode decodes to exactly one
// Operator, with Unrecognised covering the opcodes that have no meaning.
//
// The Instruction type carries every operand field of the opcode regardless
// of the operator. The executing code takes the fields that are relevant to
// the operator and ignores the others.
package instructions
