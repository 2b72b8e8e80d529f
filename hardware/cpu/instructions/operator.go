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

package instructions

// Operator identifies the form of an instruction.
type Operator int

// List of valid Operator values. The comments show the opcode pattern.
const (
	Unrecognised Operator = iota
	CLS                   // 00E0
	RET                   // 00EE
	JP                    // 1NNN
	CALL                  // 2NNN
	SEByte                // 3XNN
	SNEByte               // 4XNN
	SEReg                 // 5XY0
	LDByte                // 6XNN
	ADDByte               // 7XNN
	LDReg                 // 8XY0
	OR                    // 8XY1
	AND                   // 8XY2
	XOR                   // 8XY3
	ADDReg                // 8XY4
	SUB                   // 8XY5
	SHR                   // 8XY6
	SUBN                  // 8XY7
	SHL                   // 8XYE
	SNEReg                // 9XY0
	LDI                   // ANNN
	JPV0                  // BNNN
	RND                   // CXNN
	DRW                   // DXYN
	SKP                   // EX9E
	SKNP                  // EXA1
	LDVxDT                // FX07
	LDKey                 // FX0A
	LDDTVx                // FX15
	LDSTVx                // FX18
	ADDI                  // FX1E
	LDFont                // FX29
	BCD                   // FX33
	STR                   // FX55
	LDR                   // FX65

	// the number of operators. not a valid operator
	NumOperators
)

var mnemonics = [NumOperators]string{
	Unrecognised: "???",
	CLS:          "CLS",
	RET:          "RET",
	JP:           "JP",
	CALL:         "CALL",
	SEByte:       "SE",
	SNEByte:      "SNE",
	SEReg:        "SE",
	LDByte:       "LD",
	ADDByte:      "ADD",
	LDReg:        "LD",
	OR:           "OR",
	AND:          "AND",
	XOR:          "XOR",
	ADDReg:       "ADD",
	SUB:          "SUB",
	SHR:          "SHR",
	SUBN:         "SUBN",
	SHL:          "SHL",
	SNEReg:       "SNE",
	LDI:          "LD",
	JPV0:         "JP",
	RND:          "RND",
	DRW:          "DRW",
	SKP:          "SKP",
	SKNP:         "SKNP",
	LDVxDT:       "LD",
	LDKey:        "LD",
	LDDTVx:       "LD",
	LDSTVx:       "LD",
	ADDI:         "ADD",
	LDFont:       "LD",
	BCD:          "LD",
	STR:          "LD",
	LDR:          "LD",
}

// String returns the conventional mnemonic for the operator. More than one
// operator can share a mnemonic.
func (op Operator) String() string {
	if op < 0 || op >= NumOperators {
		return "???"
	}
	return mnemonics[op]
}
