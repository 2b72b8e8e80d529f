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

import "fmt"

// Instruction is a decoded opcode.
type Instruction struct {
	// the raw opcode
	Opcode uint16

	Operator Operator

	// operand fields. X and Y are register indexes
	X   uint8
	Y   uint8
	N   uint8
	NN  uint8
	NNN uint16
}

// Decode an opcode. Every opcode decodes to an Instruction. Opcodes that do
// not correspond to an instruction have the Unrecognised operator.
func Decode(opcode uint16) Instruction {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8(opcode>>8) & 0x0f,
		Y:      uint8(opcode>>4) & 0x0f,
		N:      uint8(opcode) & 0x0f,
		NN:     uint8(opcode),
		NNN:    opcode & 0x0fff,
	}

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00e0:
			ins.Operator = CLS
		case 0x00ee:
			ins.Operator = RET
		}
	case 0x1:
		ins.Operator = JP
	case 0x2:
		ins.Operator = CALL
	case 0x3:
		ins.Operator = SEByte
	case 0x4:
		ins.Operator = SNEByte
	case 0x5:
		if ins.N == 0x0 {
			ins.Operator = SEReg
		}
	case 0x6:
		ins.Operator = LDByte
	case 0x7:
		ins.Operator = ADDByte
	case 0x8:
		switch ins.N {
		case 0x0:
			ins.Operator = LDReg
		case 0x1:
			ins.Operator = OR
		case 0x2:
			ins.Operator = AND
		case 0x3:
			ins.Operator = XOR
		case 0x4:
			ins.Operator = ADDReg
		case 0x5:
			ins.Operator = SUB
		case 0x6:
			ins.Operator = SHR
		case 0x7:
			ins.Operator = SUBN
		case 0xe:
			ins.Operator = SHL
		}
	case 0x9:
		if ins.N == 0x0 {
			ins.Operator = SNEReg
		}
	case 0xa:
		ins.Operator = LDI
	case 0xb:
		ins.Operator = JPV0
	case 0xc:
		ins.Operator = RND
	case 0xd:
		ins.Operator = DRW
	case 0xe:
		switch ins.NN {
		case 0x9e:
			ins.Operator = SKP
		case 0xa1:
			ins.Operator = SKNP
		}
	case 0xf:
		switch ins.NN {
		case 0x07:
			ins.Operator = LDVxDT
		case 0x0a:
			ins.Operator = LDKey
		case 0x15:
			ins.Operator = LDDTVx
		case 0x18:
			ins.Operator = LDSTVx
		case 0x1e:
			ins.Operator = ADDI
		case 0x29:
			ins.Operator = LDFont
		case 0x33:
			ins.Operator = BCD
		case 0x55:
			ins.Operator = STR
		case 0x65:
			ins.Operator = LDR
		}
	}

	return ins
}

// String returns the instruction in the conventional assembly notation.
func (ins Instruction) String() string {
	switch ins.Operator {
	case CLS, RET:
		return ins.Operator.String()
	case JP, CALL:
		return fmt.Sprintf("%s %#03x", ins.Operator, ins.NNN)
	case LDI:
		return fmt.Sprintf("LD I, %#03x", ins.NNN)
	case JPV0:
		return fmt.Sprintf("JP V0, %#03x", ins.NNN)
	case SEByte, SNEByte, LDByte, ADDByte, RND:
		return fmt.Sprintf("%s V%X, %#02x", ins.Operator, ins.X, ins.NN)
	case SEReg, SNEReg, LDReg, OR, AND, XOR, ADDReg, SUB, SUBN:
		return fmt.Sprintf("%s V%X, V%X", ins.Operator, ins.X, ins.Y)
	case SHR, SHL, SKP, SKNP:
		return fmt.Sprintf("%s V%X", ins.Operator, ins.X)
	case DRW:
		return fmt.Sprintf("DRW V%X, V%X, %d", ins.X, ins.Y, ins.N)
	case LDVxDT:
		return fmt.Sprintf("LD V%X, DT", ins.X)
	case LDKey:
		return fmt.Sprintf("LD V%X, K", ins.X)
	case LDDTVx:
		return fmt.Sprintf("LD DT, V%X", ins.X)
	case LDSTVx:
		return fmt.Sprintf("LD ST, V%X", ins.X)
	case ADDI:
		return fmt.Sprintf("ADD I, V%X", ins.X)
	case LDFont:
		return fmt.Sprintf("LD F, V%X", ins.X)
	case BCD:
		return fmt.Sprintf("LD B, V%X", ins.X)
	case STR:
		return fmt.Sprintf("LD [I], V%X", ins.X)
	case LDR:
		return fmt.Sprintf("LD V%X, [I]", ins.X)
	}
	return fmt.Sprintf("??? %04x", ins.Opcode)
}
