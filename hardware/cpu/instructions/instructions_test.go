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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode   uint16
		operator instructions.Operator
		str      string
	}{
		{0x00e0, instructions.CLS, "CLS"},
		{0x00ee, instructions.RET, "RET"},
		{0x0123, instructions.Unrecognised, "??? 0123"},
		{0x1228, instructions.JP, "JP 0x228"},
		{0x1005, instructions.JP, "JP 0x005"},
		{0x2abc, instructions.CALL, "CALL 0xabc"},
		{0x3a12, instructions.SEByte, "SE VA, 0x12"},
		{0x4b00, instructions.SNEByte, "SNE VB, 0x00"},
		{0x5120, instructions.SEReg, "SE V1, V2"},
		{0x5121, instructions.Unrecognised, "??? 5121"},
		{0x6f0a, instructions.LDByte, "LD VF, 0x0a"},
		{0x7001, instructions.ADDByte, "ADD V0, 0x01"},
		{0x8120, instructions.LDReg, "LD V1, V2"},
		{0x8121, instructions.OR, "OR V1, V2"},
		{0x8122, instructions.AND, "AND V1, V2"},
		{0x8123, instructions.XOR, "XOR V1, V2"},
		{0x8124, instructions.ADDReg, "ADD V1, V2"},
		{0x8125, instructions.SUB, "SUB V1, V2"},
		{0x8126, instructions.SHR, "SHR V1"},
		{0x8127, instructions.SUBN, "SUBN V1, V2"},
		{0x8128, instructions.Unrecognised, "??? 8128"},
		{0x812e, instructions.SHL, "SHL V1"},
		{0x9340, instructions.SNEReg, "SNE V3, V4"},
		{0x9341, instructions.Unrecognised, "??? 9341"},
		{0xa2f0, instructions.LDI, "LD I, 0x2f0"},
		{0xa00a, instructions.LDI, "LD I, 0x00a"},
		{0xb300, instructions.JPV0, "JP V0, 0x300"},
		{0xc50f, instructions.RND, "RND V5, 0x0f"},
		{0xd125, instructions.DRW, "DRW V1, V2, 5"},
		{0xe59e, instructions.SKP, "SKP V5"},
		{0xe5a1, instructions.SKNP, "SKNP V5"},
		{0xe5a2, instructions.Unrecognised, "??? e5a2"},
		{0xf307, instructions.LDVxDT, "LD V3, DT"},
		{0xf30a, instructions.LDKey, "LD V3, K"},
		{0xf315, instructions.LDDTVx, "LD DT, V3"},
		{0xf318, instructions.LDSTVx, "LD ST, V3"},
		{0xf31e, instructions.ADDI, "ADD I, V3"},
		{0xf329, instructions.LDFont, "LD F, V3"},
		{0xf333, instructions.BCD, "LD B, V3"},
		{0xf355, instructions.STR, "LD [I], V3"},
		{0xf365, instructions.LDR, "LD V3, [I]"},
		{0xf366, instructions.Unrecognised, "??? f366"},
	}

	for _, tt := range tests {
		ins := instructions.Decode(tt.opcode)
		test.ExpectEquality(t, ins.Operator, tt.operator, tt.str)
		test.ExpectEquality(t, ins.String(), tt.str)
		test.ExpectEquality(t, ins.Opcode, tt.opcode)
	}
}

func TestOperands(t *testing.T) {
	ins := instructions.Decode(0xd7a3)
	test.ExpectEquality(t, ins.X, uint8(0x7))
	test.ExpectEquality(t, ins.Y, uint8(0xa))
	test.ExpectEquality(t, ins.N, uint8(0x3))
	test.ExpectEquality(t, ins.NN, uint8(0xa3))
	test.ExpectEquality(t, ins.NNN, uint16(0x7a3))
}

// every opcode decodes to exactly one valid operator. the operand fields
// always reassemble into the original opcode
func TestDecodeExhaustive(t *testing.T) {
	var counts [instructions.NumOperators]int

	for op := 0; op <= 0xffff; op++ {
		ins := instructions.Decode(uint16(op))
		if ins.Operator < 0 || ins.Operator >= instructions.NumOperators {
			t.Fatalf("opcode %04x decodes to invalid operator %d", op, ins.Operator)
		}
		counts[ins.Operator]++

		re := uint16(ins.Opcode&0xf000) | uint16(ins.X)<<8 | uint16(ins.Y)<<4 | uint16(ins.N)
		test.ExpectEquality(t, re, uint16(op))
		test.ExpectEquality(t, ins.NNN, uint16(op)&0x0fff)
	}

	// single opcode forms
	test.ExpectEquality(t, counts[instructions.CLS], 1)
	test.ExpectEquality(t, counts[instructions.RET], 1)

	// NNN forms
	test.ExpectEquality(t, counts[instructions.JP], 0x1000)
	test.ExpectEquality(t, counts[instructions.DRW], 0x1000)

	// XY forms with a fixed low nibble
	test.ExpectEquality(t, counts[instructions.SEReg], 0x100)
	test.ExpectEquality(t, counts[instructions.SHL], 0x100)

	// X forms with a fixed low byte
	test.ExpectEquality(t, counts[instructions.SKP], 0x10)
	test.ExpectEquality(t, counts[instructions.LDR], 0x10)

	total := 0
	for _, c := range counts {
		total += c
	}
	test.ExpectEquality(t, total, 0x10000)
}

func TestOperatorString(t *testing.T) {
	test.ExpectEquality(t, instructions.SEByte.String(), "SE")
	test.ExpectEquality(t, instructions.NumOperators.String(), "???")
	test.ExpectEquality(t, instructions.Operator(-1).String(), "???")
}
