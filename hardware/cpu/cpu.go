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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/random"
)

// CPU implements the CHIP-8 interpreter.
type CPU struct {
	// logging permission. taken from the environment if there is one
	perm logger.Permission

	PC    uint16
	I     uint16
	V     Registers
	Stack Stack

	mem  Memory
	disp Display
	keys Keypad
	tmr  Timers

	// source of numbers for the RND instruction. taken from the environment
	// if there is one
	Random Random

	// the most recently executed instruction and its address
	LastInstruction instructions.Instruction
	LastAddress     uint16

	// unrecognised opcodes that have already been logged
	unrecognised map[uint16]bool
}

// NewCPU is the preferred method of initialisation for the CPU type. The env
// argument can be nil, in which case logging is always allowed and the
// random numbers come from a zero seeded generator.
func NewCPU(env *environment.Environment, mem Memory, disp Display, keys Keypad, tmr Timers) *CPU {
	mc := &CPU{
		mem:          mem,
		disp:         disp,
		keys:         keys,
		tmr:          tmr,
		unrecognised: make(map[uint16]bool),
	}

	if env != nil {
		mc.perm = env
		mc.Random = env.Random
	} else {
		mc.perm = logger.Allow
		rnd := random.NewRandom(0)
		rnd.ZeroSeed = true
		mc.Random = rnd
	}

	mc.Reset()

	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%03x I=%03x SP=%d %s", mc.PC, mc.I, mc.Stack.Depth(), mc.V)
}

// Reset the registers and the stack. The program counter is set to the
// program origin.
func (mc *CPU) Reset() {
	mc.PC = memory.ProgramOrigin
	mc.I = 0
	mc.V.Reset()
	mc.Stack.Reset()
	mc.LastInstruction = instructions.Instruction{}
	mc.LastAddress = 0
	mc.unrecognised = make(map[uint16]bool)
}

// skip the next instruction if the condition is true
func (mc *CPU) skip(condition bool) {
	if condition {
		mc.PC += 2
	}
}

// sets VF to one or zero
func (mc *CPU) flag(set bool) {
	if set {
		mc.V[VF] = 1
	} else {
		mc.V[VF] = 0
	}
}

// ExecuteInstruction fetches, decodes and executes a single instruction. The
// decoded instruction is returned even if an error occurred during execution.
func (mc *CPU) ExecuteInstruction() (instructions.Instruction, error) {
	address := mc.PC

	opcode, err := mc.mem.ReadWord(address)
	if err != nil {
		return instructions.Instruction{}, err
	}

	mc.PC += 2

	ins := instructions.Decode(opcode)
	mc.LastInstruction = ins
	mc.LastAddress = address

	// values of the X and Y registers before execution. results and flags of
	// the 8XY_ instructions are calculated from these
	vx := mc.V[ins.X]
	vy := mc.V[ins.Y]

	switch ins.Operator {
	case instructions.CLS:
		mc.disp.Clear()

	case instructions.RET:
		pc, err := mc.Stack.Pop()
		if err != nil {
			return ins, err
		}
		mc.PC = pc

	case instructions.JP:
		mc.PC = ins.NNN

	case instructions.CALL:
		if err := mc.Stack.Push(mc.PC); err != nil {
			return ins, err
		}
		mc.PC = ins.NNN

	case instructions.SEByte:
		mc.skip(vx == ins.NN)

	case instructions.SNEByte:
		mc.skip(vx != ins.NN)

	case instructions.SEReg:
		mc.skip(vx == vy)

	case instructions.SNEReg:
		mc.skip(vx != vy)

	case instructions.LDByte:
		mc.V[ins.X] = ins.NN

	case instructions.ADDByte:
		mc.V[ins.X] = vx + ins.NN

	case instructions.LDReg:
		mc.V[ins.X] = vy

	case instructions.OR:
		mc.V[ins.X] = vx | vy

	case instructions.AND:
		mc.V[ins.X] = vx & vy

	case instructions.XOR:
		mc.V[ins.X] = vx ^ vy

	// the flag is written after the result so that the flag survives when X
	// is VF
	case instructions.ADDReg:
		sum := uint16(vx) + uint16(vy)
		mc.V[ins.X] = uint8(sum)
		mc.flag(sum > 0xff)

	case instructions.SUB:
		mc.V[ins.X] = vx - vy
		mc.flag(vx >= vy)

	case instructions.SHR:
		mc.V[ins.X] = vx >> 1
		mc.flag(vx&0x01 == 0x01)

	case instructions.SUBN:
		mc.V[ins.X] = vy - vx
		mc.flag(vy >= vx)

	case instructions.SHL:
		mc.V[ins.X] = vx << 1
		mc.flag(vx&0x80 == 0x80)

	case instructions.LDI:
		mc.I = ins.NNN

	case instructions.JPV0:
		mc.PC = ins.NNN + uint16(mc.V[0])

	case instructions.RND:
		mc.V[ins.X] = mc.Random.Byte() & ins.NN

	case instructions.DRW:
		if err := mc.draw(vx, vy, ins.N); err != nil {
			return ins, err
		}

	case instructions.SKP:
		mc.skip(mc.keys.IsPressed(vx & 0x0f))

	case instructions.SKNP:
		mc.skip(!mc.keys.IsPressed(vx & 0x0f))

	case instructions.LDVxDT:
		mc.V[ins.X] = mc.tmr.Delay()

	case instructions.LDKey:
		if k, ok := mc.keys.FirstPressed(); ok {
			mc.V[ins.X] = k
		} else {
			// execute this instruction again on the next call
			mc.PC -= 2
		}

	case instructions.LDDTVx:
		mc.tmr.SetDelay(vx)

	case instructions.LDSTVx:
		mc.tmr.SetSound(vx)

	case instructions.ADDI:
		mc.I += uint16(vx)

	case instructions.LDFont:
		mc.I = memory.GlyphAddress(vx)

	case instructions.BCD:
		if err := mc.mem.CheckRange(mc.I, 3); err != nil {
			return ins, err
		}
		for i, d := range [3]uint8{vx / 100, vx / 10 % 10, vx % 10} {
			if err := mc.mem.Write(mc.I+uint16(i), d); err != nil {
				return ins, err
			}
		}

	case instructions.STR:
		n := int(ins.X) + 1
		if err := mc.mem.CheckRange(mc.I, n); err != nil {
			return ins, err
		}
		for i := 0; i < n; i++ {
			if err := mc.mem.Write(mc.I+uint16(i), mc.V[i]); err != nil {
				return ins, err
			}
		}

	case instructions.LDR:
		n := int(ins.X) + 1
		if err := mc.mem.CheckRange(mc.I, n); err != nil {
			return ins, err
		}
		for i := 0; i < n; i++ {
			v, err := mc.mem.Read(mc.I + uint16(i))
			if err != nil {
				return ins, err
			}
			mc.V[i] = v
		}

	case instructions.Unrecognised:
		if !mc.unrecognised[opcode] {
			mc.unrecognised[opcode] = true
			logger.Logf(mc.perm, "cpu", "unrecognised opcode %04x at %03x", opcode, address)
		}

	default:
		panic(fmt.Sprintf("cpu: operator %d not handled", ins.Operator))
	}

	return ins, nil
}

// draw the sprite at I with n rows at the position given by x and y. only
// the rows that are visible on the display are read from memory
func (mc *CPU) draw(x, y uint8, n uint8) error {
	ox := x % display.Width
	oy := y % display.Height

	rows := int(n)
	if int(oy)+rows > display.Height {
		rows = display.Height - int(oy)
	}

	if err := mc.mem.CheckRange(mc.I, rows); err != nil {
		return err
	}

	data := make([]uint8, rows)
	for i := range data {
		v, err := mc.mem.Read(mc.I + uint16(i))
		if err != nil {
			return err
		}
		data[i] = v
	}

	mc.flag(mc.disp.DrawSprite(ox, oy, data))

	return nil
}
