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

package playmode

import (
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/logger"
)

// eventHandler services all outstanding events. Returns true if the
// emulation should end.
func (pl *playmode) eventHandler() (bool, error) {
	for {
		select {
		case <-pl.intChan:
			logger.Log(logger.Allow, "playmode", "interrupted")
			return true, nil

		case ev := <-pl.events:
			quit, err := pl.userInputHandler(ev)
			if err != nil || quit {
				return quit, err
			}

		default:
			return false, nil
		}
	}
}

func (pl *playmode) userInputHandler(ev gui.Event) (bool, error) {
	quit, err := pl.controllers.HandleUserInput(ev, pl.c8)
	if err != nil {
		// a bad key is not a reason to stop the emulation
		logger.Log(logger.Allow, "playmode", err)
		return false, nil
	}
	if quit {
		return true, nil
	}

	switch {
	case pl.controllers.Reset:
		err = pl.c8.Reset()
		if err != nil {
			return false, err
		}
		pl.carry = 0
		logger.Log(logger.Allow, "playmode", "reset")
		pl.setState(gui.StateRunning)

	case pl.controllers.TogglePause:
		if pl.state == gui.StatePaused {
			pl.setState(gui.StateRunning)
		} else {
			pl.setState(gui.StatePaused)
		}
	}

	return false, nil
}
