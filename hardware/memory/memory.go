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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Geometry of the address space.
const (
	MemorySize    = 4096
	ProgramOrigin = 0x200
	MaxROMSize    = MemorySize - ProgramOrigin
)

// Sentinel error patterns.
const (
	AddressOutOfRange = "memory: address out of range (%#04x)"
	RomTooLarge       = "memory: rom too large (%d bytes, maximum is %d)"
)

// Memory is the entire address space of the CHIP-8.
type Memory struct {
	data [MemorySize]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The returned memory is reset and contains the font.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%d bytes (program origin %#03x)", MemorySize, ProgramOrigin)
}

// Reset zeroes all memory and copies the font to FontBase.
func (mem *Memory) Reset() {
	for i := range mem.data {
		mem.data[i] = 0
	}
	copy(mem.data[FontBase:], Font[:])
}

// Read a single byte.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= MemorySize {
		return 0, curated.Errorf(AddressOutOfRange, address)
	}
	return mem.data[address], nil
}

// Write a single byte.
func (mem *Memory) Write(address uint16, data uint8) error {
	if int(address) >= MemorySize {
		return curated.Errorf(AddressOutOfRange, address)
	}
	mem.data[address] = data
	return nil
}

// ReadWord reads two bytes in big-endian order. Both addresses must be in
// range.
func (mem *Memory) ReadWord(address uint16) (uint16, error) {
	if err := mem.CheckRange(address, 2); err != nil {
		return 0, err
	}
	return uint16(mem.data[address])<<8 | uint16(mem.data[address+1]), nil
}

// CheckRange returns an error if any address in the n bytes starting at
// address is outside the address space. The address reported in the error
// is the base address of the block.
//
// Addresses are not allowed to wrap around the top of the 16 bit address
// range.
func (mem *Memory) CheckRange(address uint16, n int) error {
	if n <= 0 {
		return nil
	}
	if int(address)+n > MemorySize {
		return curated.Errorf(AddressOutOfRange, address)
	}
	return nil
}

// LoadROM copies the program image to ProgramOrigin. Memory is not changed
// if the image is too large.
func (mem *Memory) LoadROM(rom []uint8) error {
	if len(rom) > MaxROMSize {
		return curated.Errorf(RomTooLarge, len(rom), MaxROMSize)
	}
	copy(mem.data[ProgramOrigin:], rom)
	return nil
}

// Peek returns a copy of n bytes starting at address. The copy is truncated
// at the top of memory. Peek never affects the emulation.
func (mem *Memory) Peek(address uint16, n int) []uint8 {
	if int(address) >= MemorySize || n <= 0 {
		return []uint8{}
	}
	end := int(address) + n
	if end > MemorySize {
		end = MemorySize
	}
	p := make([]uint8, end-int(address))
	copy(p, mem.data[address:end])
	return p
}

// Dump returns a hex dump of the non-zero rows of memory, sixteen bytes per
// row.
func (mem *Memory) Dump() string {
	s := strings.Builder{}
	for row := 0; row < MemorySize; row += 16 {
		r := mem.data[row : row+16]
		zero := true
		for _, b := range r {
			if b != 0 {
				zero = false
				break // for loop
			}
		}
		if zero {
			continue // for loop
		}
		s.WriteString(fmt.Sprintf("%03x ", row))
		for _, b := range r {
			s.WriteString(fmt.Sprintf(" %02x", b))
		}
		s.WriteString("\n")
	}
	return s.String()
}
