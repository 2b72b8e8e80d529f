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

package termplay

import (
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/terminal/easyterm"
	"github.com/jetsetilly/gopher8/userinput"
)

// the number of frames a key counts as pressed after its byte arrives. long
// enough to bridge the delay before terminal auto-repeat starts
const holdFrames = 30

// translate converts the bytes from a single read of the terminal into
// events. Escape sequences, such as those sent by the cursor keys, are
// ignored.
func translate(buf []byte) []gui.Event {
	if len(buf) == 0 {
		return nil
	}

	// a lone escape byte is the escape key. anything longer is a sequence
	if buf[0] == easyterm.KeyEsc {
		if len(buf) == 1 {
			return []gui.Event{gui.EventKeyboard{Key: userinput.KeyQuit, Down: true}}
		}
		return nil
	}

	var evs []gui.Event
	for _, b := range buf {
		switch {
		case b == easyterm.KeyCtrlC:
			evs = append(evs, gui.EventQuit{})
		case b == easyterm.KeyBackspace || b == '\b':
			evs = append(evs, gui.EventKeyboard{Key: userinput.KeyReset, Down: true})
		case b == easyterm.KeySpace:
			evs = append(evs, gui.EventKeyboard{Key: "Space", Down: true})
		case b >= 'a' && b <= 'z':
			evs = append(evs, gui.EventKeyboard{Key: string(b - 'a' + 'A'), Down: true})
		case b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
			evs = append(evs, gui.EventKeyboard{Key: string(b), Down: true})
		}
	}

	return evs
}

// keyHolder turns key presses into press and release pairs.
type keyHolder struct {
	held map[string]int
}

func newKeyHolder() *keyHolder {
	return &keyHolder{held: make(map[string]int)}
}

// press returns true if the key was not already held. keypad keys are held
// for holdFrames frames. other keys are not held.
func (kh *keyHolder) press(key string) bool {
	if _, ok := userinput.Lookup(key); !ok {
		return true
	}
	_, ok := kh.held[key]
	kh.held[key] = holdFrames
	return !ok
}

// frame advances the hold counters and returns the keys that have been
// released.
func (kh *keyHolder) frame() []string {
	var released []string
	for k, n := range kh.held {
		n--
		if n <= 0 {
			delete(kh.held, k)
			released = append(released, k)
		} else {
			kh.held[k] = n
		}
	}
	return released
}
