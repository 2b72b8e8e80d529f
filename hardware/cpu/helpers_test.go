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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/test"
)

// fixedRandom always returns the same value
type fixedRandom uint8

func (r fixedRandom) Byte() uint8 {
	return uint8(r)
}

// machine connects a CPU to real implementations of the other components
type machine struct {
	mc   *cpu.CPU
	mem  *memory.Memory
	disp *display.Display
	keys *keypad.Keypad
	tmr  *timers.Timers
}

func newMachine(t *testing.T, program ...uint16) *machine {
	t.Helper()

	m := &machine{
		mem:  memory.NewMemory(),
		disp: display.NewDisplay(),
		keys: keypad.NewKeypad(),
		tmr:  timers.NewTimers(),
	}
	m.mc = cpu.NewCPU(nil, m.mem, m.disp, m.keys, m.tmr)
	m.putInstructions(memory.ProgramOrigin, program...)

	return m
}

// put opcodes into memory starting at origin. returns the address after the
// last opcode
func (m *machine) putInstructions(origin uint16, opcodes ...uint16) uint16 {
	for _, op := range opcodes {
		m.mem.Write(origin, uint8(op>>8))
		m.mem.Write(origin+1, uint8(op))
		origin += 2
	}
	return origin
}

func (m *machine) step(t *testing.T) instructions.Instruction {
	t.Helper()
	ins, err := m.mc.ExecuteInstruction()
	if err != nil {
		t.Fatalf("unexpected error executing %s: %v", ins, err)
	}
	return ins
}

func (m *machine) assertMemory(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d, err := m.mem.Read(address)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, value, address)
}
