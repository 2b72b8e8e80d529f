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

// Memory defines the operations the CPU requires of the address space.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
	ReadWord(address uint16) (uint16, error)

	// CheckRange returns an error if any of the n bytes starting at address
	// are out of range
	CheckRange(address uint16, n int) error
}

// Display defines the operations the CPU requires of the display.
type Display interface {
	Clear()

	// DrawSprite draws the rows of a sprite with its top-left corner at x, y
	// and returns true if any lit cell was turned off
	DrawSprite(x, y uint8, rows []uint8) bool
}

// Keypad defines the operations the CPU requires of the keypad.
type Keypad interface {
	IsPressed(key uint8) bool

	// FirstPressed returns the lowest numbered key that is pressed. The
	// boolean is false if no key is pressed
	FirstPressed() (uint8, bool)
}

// Timers defines the operations the CPU requires of the delay and sound
// timers.
type Timers interface {
	Delay() uint8
	SetDelay(v uint8)
	SetSound(v uint8)
}

// Random is the source of numbers for the RND instruction.
type Random interface {
	Byte() uint8
}
