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

package sdlplay

import (
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/logger"

	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly and we have
	// no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

func keyMod() gui.KeyMod {
	ms := sdl.GetModState()
	if ms&sdl.KMOD_LALT == sdl.KMOD_LALT || ms&sdl.KMOD_RALT == sdl.KMOD_RALT {
		return gui.KeyModAlt
	}
	if ms&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || ms&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
		return gui.KeyModShift
	}
	if ms&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || ms&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
		return gui.KeyModCtrl
	}
	return gui.KeyModNone
}

// Service implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	// loop until there are no more events to retrieve. servicing just one
	// event per call is not enough because queued key presses would take
	// longer to resolve
	empty := false
	for !empty {
		// timing out straight away if there's nothing
		ev := sdl.WaitEventTimeout(1)

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.send(gui.EventQuit{})

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				break // switch
			}
			scr.send(gui.EventKeyboard{
				Key:  sdl.GetKeyName(ev.Keysym.Sym),
				Mod:  keyMod(),
				Down: ev.Type == sdl.KEYDOWN,
			})

		case nil:
			// WaitEventTimeout has timed out so the queue is empty
			empty = true
		}
	}

	// run any outstanding feature requests
	done := false
	for !done {
		select {
		case req := <-scr.featureReq:
			scr.serviceFeatureRequest(req)
		default:
			done = true
		}
	}

	select {
	case frame := <-scr.frame:
		if err := scr.render(frame); err != nil {
			logger.Log(logger.Allow, "sdlplay", err)
		}
	default:
	}
}

// events are dropped if the emulation is not keeping up. blocking here would
// stall the main thread.
func (scr *SdlPlay) send(ev gui.Event) {
	if scr.events == nil {
		return
	}
	select {
	case scr.events <- ev:
	default:
		logger.Logf(logger.Allow, "sdlplay", "event dropped: %T", ev)
	}
}
