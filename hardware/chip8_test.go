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

package hardware_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

// assemble opcodes into a program image
func assemble(opcodes ...uint16) []uint8 {
	rom := make([]uint8, 0, len(opcodes)*2)
	for _, op := range opcodes {
		rom = append(rom, uint8(op>>8), uint8(op))
	}
	return rom
}

func TestInitialise(t *testing.T) {
	c8 := hardware.NewChip8(nil)

	rom := assemble(0x6a05, 0x1200)
	test.DemandSuccess(t, c8.Initialise(rom))

	test.ExpectEquality(t, c8.CPU.PC, uint16(memory.ProgramOrigin))
	test.ExpectEquality(t, c8.CPU.I, uint16(0))
	test.ExpectEquality(t, c8.CPU.Stack.Depth(), 0)
	test.ExpectEquality(t, c8.Display().Lit(), 0)
	test.ExpectFailure(t, c8.Tone())

	p := c8.Mem.Peek(memory.ProgramOrigin, len(rom))
	for i := range rom {
		test.ExpectEquality(t, p[i], rom[i], i)
	}

	font := c8.Mem.Peek(memory.FontBase, len(memory.Font))
	for i := range font {
		test.ExpectEquality(t, font[i], memory.Font[i], i)
	}
}

func TestInitialiseClearsState(t *testing.T) {
	c8 := hardware.NewChip8(nil)

	// draw something, set the timers, press a key and call a subroutine
	test.DemandSuccess(t, c8.Initialise(assemble(0xf029, 0xd015, 0x6110, 0xf115, 0xf118, 0x2300)))
	test.DemandSuccess(t, c8.Run(6))
	test.DemandSuccess(t, c8.SetKey(3, true))
	test.ExpectInequality(t, c8.Display().Lit(), 0)

	test.DemandSuccess(t, c8.Initialise(assemble(0x1200)))
	test.ExpectEquality(t, c8.Display().Lit(), 0)
	test.ExpectEquality(t, c8.CPU.Stack.Depth(), 0)
	test.ExpectEquality(t, c8.CPU.V[1], uint8(0))
	test.ExpectEquality(t, c8.Timers.Delay(), uint8(0))
	test.ExpectFailure(t, c8.Tone())
	test.ExpectFailure(t, c8.Keys.IsPressed(3))

	// the old program is gone
	v, err := c8.Mem.Read(memory.ProgramOrigin + 2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0))
}

func TestRomTooLarge(t *testing.T) {
	c8 := hardware.NewChip8(nil)
	test.DemandSuccess(t, c8.Initialise(assemble(0x6a05)))
	test.DemandSuccess(t, c8.Step())

	err := c8.Initialise(make([]uint8, memory.MaxROMSize+1))
	test.ExpectSuccess(t, curated.Is(err, memory.RomTooLarge))

	// machine is unchanged
	test.ExpectEquality(t, c8.CPU.PC, uint16(0x202))
	test.ExpectEquality(t, c8.CPU.V[0xa], uint8(0x05))

	test.ExpectSuccess(t, c8.Initialise(make([]uint8, memory.MaxROMSize)))
}

func TestHalt(t *testing.T) {
	c8 := hardware.NewChip8(nil)
	test.DemandSuccess(t, c8.Initialise(assemble(0x6105, 0x00ee)))

	test.ExpectSuccess(t, c8.Step())
	err := c8.Step()
	test.ExpectSuccess(t, curated.Is(err, hardware.Fault))
	test.ExpectSuccess(t, curated.Has(err, cpu.StackUnderflow))

	halted, fault := c8.IsHalted()
	test.ExpectSuccess(t, halted)
	test.ExpectEquality(t, fault.Error(), err.Error())

	// the instruction clock stays halted
	pc := c8.CPU.PC
	err = c8.Step()
	test.ExpectSuccess(t, curated.Is(err, hardware.Halted))
	test.ExpectSuccess(t, curated.Has(err, cpu.StackUnderflow))
	test.ExpectEquality(t, c8.CPU.PC, pc)

	// but the timer clock does not
	c8.Timers.SetDelay(2)
	c8.TickTimers()
	test.ExpectEquality(t, c8.Timers.Delay(), uint8(1))

	// reset starts the same program again
	test.DemandSuccess(t, c8.Reset())
	halted, _ = c8.IsHalted()
	test.ExpectFailure(t, halted)
	test.ExpectEquality(t, c8.InstructionCount(), uint64(0))
	test.ExpectSuccess(t, c8.Step())
	test.ExpectEquality(t, c8.CPU.V[1], uint8(0x05))
	test.ExpectEquality(t, c8.InstructionCount(), uint64(1))
}

func TestHaltLogsMachineState(t *testing.T) {
	c8 := hardware.NewChip8(nil)

	// CALL 0x204; (unused); LD I, 0xffe; LD B, V0
	test.DemandSuccess(t, c8.Initialise(assemble(0x2204, 0x0000, 0xaffe, 0xf033)))
	test.DemandSuccess(t, c8.Run(3))

	logger.Clear()
	err := c8.Step()
	test.ExpectSuccess(t, curated.Has(err, memory.AddressOutOfRange))

	// the error points at the base of the block and not the end of memory
	test.ExpectSuccess(t, strings.Contains(err.Error(), "(0x0ffe)"))

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "chip8: stack top 202 (depth 1)"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "chip8: memory at I=ffe: 00 00"))

	// an empty stack is reported as such
	test.DemandSuccess(t, c8.Initialise(assemble(0x00ee)))
	logger.Clear()
	test.ExpectFailure(t, c8.Step())
	w.Reset()
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "chip8: stack empty"))
}

func TestFetchBeyondMemory(t *testing.T) {
	c8 := hardware.NewChip8(nil)

	// jump to the last address in memory
	test.DemandSuccess(t, c8.Initialise(assemble(0x1fff)))
	test.DemandSuccess(t, c8.Step())

	err := c8.Step()
	test.ExpectSuccess(t, curated.Has(err, memory.AddressOutOfRange))
}

func TestTimerDrain(t *testing.T) {
	c8 := hardware.NewChip8(nil)

	// delay and sound set to 120
	test.DemandSuccess(t, c8.Initialise(assemble(0x6078, 0xf015, 0xf018)))
	test.DemandSuccess(t, c8.Run(3))
	test.ExpectSuccess(t, c8.Tone())

	// two seconds of the timer clock
	for i := 0; i < clocks.TimerFrequency*2; i++ {
		test.DemandEquality(t, c8.Tone(), true, i)
		c8.TickTimers()
	}
	test.ExpectEquality(t, c8.Timers.Delay(), uint8(0))
	test.ExpectFailure(t, c8.Tone())

	c8.TickTimers()
	test.ExpectEquality(t, c8.Timers.Delay(), uint8(0))
	test.ExpectEquality(t, c8.Timers.Sound(), uint8(0))
}

func TestSetKey(t *testing.T) {
	c8 := hardware.NewChip8(nil)

	// wait for a key and then loop forever
	test.DemandSuccess(t, c8.Initialise(assemble(0xf50a, 0x1202)))

	test.DemandSuccess(t, c8.Run(10))
	test.ExpectEquality(t, c8.CPU.PC, uint16(0x200))

	err := c8.SetKey(16, true)
	test.ExpectSuccess(t, curated.Is(err, keypad.KeyOutOfRange))
	err = c8.SetKey(-1, true)
	test.ExpectSuccess(t, curated.Is(err, keypad.KeyOutOfRange))
	test.DemandSuccess(t, c8.Run(10))
	test.ExpectEquality(t, c8.CPU.PC, uint16(0x200))

	test.DemandSuccess(t, c8.SetKey(0xf, true))
	test.DemandSuccess(t, c8.Step())
	test.ExpectEquality(t, c8.CPU.PC, uint16(0x202))
	test.ExpectEquality(t, c8.CPU.V[5], uint8(0xf))
}

func TestDisplaySnapshot(t *testing.T) {
	c8 := hardware.NewChip8(nil)

	// draw the glyph for 'A' at 10, 4
	test.DemandSuccess(t, c8.Initialise(assemble(0x600a, 0xf029, 0x6104, 0xd015)))
	test.DemandSuccess(t, c8.Run(4))

	f := c8.Display()
	test.ExpectSuccess(t, f.At(10, 4))
	test.ExpectSuccess(t, f.At(13, 8))
	test.ExpectFailure(t, f.At(11, 8))
	test.ExpectEquality(t, c8.CPU.V[cpu.VF], uint8(0))

	// the snapshot does not change when the machine does
	test.DemandSuccess(t, c8.Initialise(assemble(0x00e0)))
	test.ExpectSuccess(t, f.At(10, 4))
	test.ExpectFailure(t, c8.Display().At(10, 4))
}

func TestAttachROM(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, assemble(0x6a42), 0o600))

	c8 := hardware.NewChip8(nil)
	ld := romloader.NewLoader(fn)
	test.DemandSuccess(t, c8.AttachROM(&ld))
	test.DemandSuccess(t, c8.Step())
	test.ExpectEquality(t, c8.CPU.V[0xa], uint8(0x42))

	ld = romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))
	err := c8.AttachROM(&ld)
	test.ExpectSuccess(t, curated.Is(err, romloader.RomUnreadable))

	// failing to attach leaves the machine as it was
	test.ExpectEquality(t, c8.CPU.V[0xa], uint8(0x42))
}

func BenchmarkRun(b *testing.B) {
	c8 := hardware.NewChip8(nil)

	// draw the font glyph for zero across the screen forever
	rom := assemble(0x6000, 0xa050, 0xd015, 0x7001, 0x1204)
	if err := c8.Initialise(rom); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c8.Run(clocks.InstructionsPerSecond / clocks.TimerFrequency); err != nil {
			b.Fatal(err)
		}
		c8.TickTimers()
	}
}
