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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

type keypad struct {
	keys [16]bool
	sets int
}

func (k *keypad) SetKey(key int, pressed bool) error {
	k.keys[key] = pressed
	k.sets++
	return nil
}

func TestCOSMACLayout(t *testing.T) {
	rows := []struct {
		host string
		keys []int
	}{
		{"1234", []int{0x1, 0x2, 0x3, 0xc}},
		{"QWER", []int{0x4, 0x5, 0x6, 0xd}},
		{"ASDF", []int{0x7, 0x8, 0x9, 0xe}},
		{"ZXCV", []int{0xa, 0x0, 0xb, 0xf}},
	}

	seen := make(map[int]bool)
	for _, r := range rows {
		for i, h := range r.host {
			k, ok := userinput.Lookup(string(h))
			test.ExpectSuccess(t, ok, string(h))
			test.ExpectEquality(t, k, r.keys[i], string(h))
			seen[k] = true
		}
	}

	// every keypad key is reachable
	test.ExpectEquality(t, len(seen), 16)

	// lower case names are accepted
	k, ok := userinput.Lookup("q")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 0x4)

	_, ok = userinput.Lookup("Y")
	test.ExpectFailure(t, ok)
}

func TestPressAndRelease(t *testing.T) {
	kp := &keypad{}

	handled, err := userinput.Handle(gui.EventKeyboard{Key: "V", Down: true}, kp)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, handled)
	test.ExpectSuccess(t, kp.keys[0xf])

	handled, err = userinput.Handle(gui.EventKeyboard{Key: "V", Down: false}, kp)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, handled)
	test.ExpectFailure(t, kp.keys[0xf])
	test.ExpectEquality(t, kp.sets, 2)

	handled, err = userinput.Handle(gui.EventKeyboard{Key: "Left", Down: true}, kp)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, handled)
	test.ExpectEquality(t, kp.sets, 2)
}

func TestControllers(t *testing.T) {
	kp := &keypad{}
	c := &userinput.Controllers{}

	quit, err := c.HandleUserInput(gui.EventKeyboard{Key: "X", Down: true}, kp)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, quit)
	test.ExpectSuccess(t, c.LastKeyHandled)
	test.ExpectSuccess(t, kp.keys[0x0])

	quit, err = c.HandleUserInput(gui.EventKeyboard{Key: userinput.KeyReset, Down: true}, kp)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, quit)
	test.ExpectFailure(t, c.LastKeyHandled)
	test.ExpectSuccess(t, c.Reset)

	// the reset flag does not persist
	_, _ = c.HandleUserInput(gui.EventKeyboard{Key: userinput.KeyReset, Down: false}, kp)
	test.ExpectFailure(t, c.Reset)

	_, _ = c.HandleUserInput(gui.EventKeyboard{Key: "Space", Down: true}, kp)
	test.ExpectSuccess(t, c.TogglePause)

	// modifiers prevent the control keys from working
	_, _ = c.HandleUserInput(gui.EventKeyboard{Key: "P", Down: true, Mod: gui.KeyModCtrl}, kp)
	test.ExpectFailure(t, c.TogglePause)

	quit, err = c.HandleUserInput(gui.EventKeyboard{Key: userinput.KeyQuit, Down: true}, kp)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, quit)

	quit, err = c.HandleUserInput(gui.EventQuit{}, kp)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, quit)
	test.ExpectSuccess(t, c.Quit)
}
