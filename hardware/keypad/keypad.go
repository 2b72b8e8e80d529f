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

// Package keypad implements the sixteen key hexadecimal keypad of the CHIP-8.
//
// The keypad is written to by the input layer and read by the CPU. Keys are
// numbered 0x0 to 0xf.
package keypad

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Sentinel error patterns.
const (
	KeyOutOfRange = "keypad: key out of range (%d)"
)

// Keypad is the pressed state of every key.
type Keypad struct {
	keys [NumKeys]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

func (kp *Keypad) String() string {
	s := strings.Builder{}
	for k, p := range kp.keys {
		if p {
			s.WriteString(fmt.Sprintf("%X", k))
		} else {
			s.WriteString("-")
		}
	}
	return s.String()
}

// Reset releases every key.
func (kp *Keypad) Reset() {
	kp.keys = [NumKeys]bool{}
}

// Set the pressed state of a key. A key outside the range 0 to 15 returns a
// curated error with the KeyOutOfRange pattern and the keypad is unchanged.
func (kp *Keypad) Set(key int, pressed bool) error {
	if key < 0 || key >= NumKeys {
		return curated.Errorf(KeyOutOfRange, key)
	}
	kp.keys[key] = pressed
	return nil
}

// IsPressed returns true if the key is pressed. Only the low nibble of key is
// used.
func (kp *Keypad) IsPressed(key uint8) bool {
	return kp.keys[key&0x0f]
}

// FirstPressed returns the lowest numbered key that is pressed. The boolean
// is false if no key is pressed.
func (kp *Keypad) FirstPressed() (uint8, bool) {
	for k, p := range kp.keys {
		if p {
			return uint8(k), true
		}
	}
	return 0, false
}
