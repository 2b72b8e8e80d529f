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

package userinput

import (
	"strings"

	"github.com/jetsetilly/gopher8/gui"
)

// KeyMap maps host key names to keypad keys.
var KeyMap = map[string]int{
	"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
	"Q": 0x4, "W": 0x5, "E": 0x6, "R": 0xd,
	"A": 0x7, "S": 0x8, "D": 0x9, "F": 0xe,
	"Z": 0xa, "X": 0x0, "C": 0xb, "V": 0xf,
}

// Lookup returns the keypad key for the named host key. Key names are not
// case sensitive.
func Lookup(key string) (int, bool) {
	k, ok := KeyMap[strings.ToUpper(key)]
	return k, ok
}

// Handle forwards keyboard events for mapped keys to the keypad. Both presses
// and releases are forwarded. Returns true if the key is mapped.
func Handle(ev gui.EventKeyboard, handle HandleInput) (bool, error) {
	k, ok := Lookup(ev.Key)
	if !ok {
		return false, nil
	}
	return true, handle.SetKey(k, ev.Down)
}
