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

package hardware

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/romloader"
)

// Sentinel error patterns.
const (
	Fault  = "chip8: %v"
	Halted = "chip8: halted (%v)"
)

// number of bytes at I to log when the machine halts
const peekLength = 16

// Chip8 is the root of the emulation.
type Chip8 struct {
	env *environment.Environment

	// logging permission. the environment if there is one
	perm logger.Permission

	CPU    *cpu.CPU
	Mem    *memory.Memory
	Screen *display.Display
	Keys   *keypad.Keypad
	Timers *timers.Timers

	// the most recently attached program
	rom []uint8

	// the error that caused the instruction clock to halt. nil if the
	// machine is running
	fault error

	// number of instructions successfully executed since the last reset
	instructionCount uint64
}

// NewChip8 creates a new Chip8 and everything associated with the hardware.
// The env argument can be nil, which is useful for testing.
//
// The machine is initialised with an empty program.
func NewChip8(env *environment.Environment) *Chip8 {
	c8 := &Chip8{
		env:    env,
		perm:   logger.Allow,
		Mem:    memory.NewMemory(),
		Screen: display.NewDisplay(),
		Keys:   keypad.NewKeypad(),
		Timers: timers.NewTimers(),
	}

	if env != nil {
		c8.perm = env
	}

	c8.CPU = cpu.NewCPU(env, c8.Mem, c8.Screen, c8.Keys, c8.Timers)

	// an empty program cannot fail
	_ = c8.Initialise(nil)

	return c8
}

func (c8 *Chip8) String() string {
	return c8.CPU.String()
}

// AttachROM loads the program described by the loader and initialises the
// machine with it.
func (c8 *Chip8) AttachROM(ld *romloader.Loader) error {
	if err := ld.Load(); err != nil {
		return err
	}
	if err := c8.Initialise(ld.Data); err != nil {
		return err
	}
	logger.Logf(c8.perm, "chip8", "attached %s (%d bytes, sha1 %s)", ld.ShortName(), len(ld.Data), ld.Hash)
	return nil
}

// Initialise the machine with the program. Memory, registers, stack, timers,
// keypad and display are all cleared, the font is copied to memory and the
// program is copied to the program origin.
//
// The machine is unchanged if the program is too large.
func (c8 *Chip8) Initialise(rom []uint8) error {
	// checked before Reset() clears memory so that a failure changes nothing
	if len(rom) > memory.MaxROMSize {
		return curated.Errorf(memory.RomTooLarge, len(rom), memory.MaxROMSize)
	}

	c8.rom = make([]uint8, len(rom))
	copy(c8.rom, rom)

	return c8.Reset()
}

// Reset re-initialises the machine with the most recently attached program.
func (c8 *Chip8) Reset() error {
	c8.Mem.Reset()
	if err := c8.Mem.LoadROM(c8.rom); err != nil {
		return err
	}

	c8.CPU.Reset()
	c8.Screen.Reset()
	c8.Keys.Reset()
	c8.Timers.Reset()

	if c8.env != nil {
		c8.env.Random.Reset()
	}

	c8.fault = nil
	c8.instructionCount = 0

	return nil
}

// Step executes one instruction. A fatal error halts the instruction clock
// and is returned wrapped with the Fault pattern. Subsequent calls return an
// error with the Halted pattern until Reset() is called.
func (c8 *Chip8) Step() error {
	if c8.fault != nil {
		return curated.Errorf(Halted, c8.fault)
	}

	ins, err := c8.CPU.ExecuteInstruction()
	if err != nil {
		c8.fault = curated.Errorf(Fault, err)
		logger.Logf(c8.perm, "chip8", "halted at %03x (%s): %v", c8.CPU.LastAddress, ins, err)
		c8.logMachineState()
		return c8.fault
	}

	c8.instructionCount++

	return nil
}

// the top of the stack and the bytes at I are usually enough to see why the
// machine halted
func (c8 *Chip8) logMachineState() {
	if top, ok := c8.CPU.Stack.Peek(); ok {
		logger.Logf(c8.perm, "chip8", "stack top %03x (depth %d)", top, c8.CPU.Stack.Depth())
	} else {
		logger.Log(c8.perm, "chip8", "stack empty")
	}
	logger.Logf(c8.perm, "chip8", "memory at I=%03x: % x", c8.CPU.I, c8.Mem.Peek(c8.CPU.I, peekLength))
}

// Run executes n instructions. It stops early if an error occurs.
func (c8 *Chip8) Run(n int) error {
	for i := 0; i < n; i++ {
		if err := c8.Step(); err != nil {
			return err
		}
	}
	return nil
}

// TickTimers advances the timer clock by one tick. The timers run even if
// the instruction clock has halted.
func (c8 *Chip8) TickTimers() {
	c8.Timers.Tick()
}

// Display returns a snapshot of the display.
func (c8 *Chip8) Display() display.Frame {
	return c8.Screen.Frame()
}

// SetKey sets the pressed state of a key. Keys outside of the range 0 to 15
// are rejected with an error with the keypad.KeyOutOfRange pattern.
func (c8 *Chip8) SetKey(key int, pressed bool) error {
	return c8.Keys.Set(key, pressed)
}

// Tone returns true if the sound timer is running.
func (c8 *Chip8) Tone() bool {
	return c8.Timers.Tone()
}

// IsHalted returns true if the instruction clock has halted. The error that
// caused the halt is also returned.
func (c8 *Chip8) IsHalted() (bool, error) {
	return c8.fault != nil, c8.fault
}

// InstructionCount returns the number of instructions executed since the
// last reset.
func (c8 *Chip8) InstructionCount() uint64 {
	return c8.instructionCount
}
