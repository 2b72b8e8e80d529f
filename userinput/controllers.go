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
	"github.com/jetsetilly/gopher8/gui"
)

// host keys that control the emulation rather than the keypad.
const (
	KeyQuit  = "Escape"
	KeyReset = "F5"
)

// PauseKeys toggle the paused state of the emulation.
var PauseKeys = []string{"P", "Space"}

// Controllers keeps track of the state of user input between events.
type Controllers struct {
	// whether or not the last HandleUserInput() was for an event that was
	// consumed by the keypad
	LastKeyHandled bool

	// is true if last event was a quit emulation event
	Quit bool

	// is true if last event was a request to reset the machine
	Reset bool

	// is true if last event was a request to toggle the paused state
	TogglePause bool
}

// HandleUserInput deals with an event from the GUI. Keypad events are
// forwarded to the handler. The fields of the Controllers type say what else
// was requested by the event. Returns true if the event is a quit event.
func (c *Controllers) HandleUserInput(ev gui.Event, handle HandleInput) (bool, error) {
	c.LastKeyHandled = false
	c.Quit = false
	c.Reset = false
	c.TogglePause = false

	switch ev := ev.(type) {
	case gui.EventQuit:
		c.Quit = true

	case gui.EventKeyboard:
		return c.keyboard(ev, handle)
	}

	return c.Quit, nil
}

func (c *Controllers) keyboard(ev gui.EventKeyboard, handle HandleInput) (bool, error) {
	handled, err := Handle(ev, handle)
	if err != nil {
		return false, err
	}
	if handled {
		c.LastKeyHandled = true
		return false, nil
	}

	if !ev.Down || ev.Mod != gui.KeyModNone {
		return false, nil
	}

	switch ev.Key {
	case KeyQuit:
		c.Quit = true
	case KeyReset:
		c.Reset = true
	default:
		for _, k := range PauseKeys {
			if ev.Key == k {
				c.TogglePause = true
			}
		}
	}

	return c.Quit, nil
}
