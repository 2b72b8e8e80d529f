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
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/userinput"
)

// PlayError is the pattern for errors returned by Play().
const PlayError = "playmode: %v"

// the size of the event channel given to the GUI.
const eventQueueLength = 32

// Options for the Play() function.
type Options struct {
	// the rate of the instruction clock. a value of zero or less means the
	// default rate
	InstructionsPerSecond int

	// audio sinks for the tone
	Mixers []gui.AudioMixer

	// renderers in addition to the GUI
	Renderers []gui.Renderer

	// the number of frames to run for. zero means there is no limit
	Frames int

	// run as fast as possible rather than at the rate of the timer clock
	Uncapped bool
}

type playmode struct {
	c8   *hardware.Chip8
	scr  gui.GUI
	opts Options

	events      chan gui.Event
	controllers userinput.Controllers
	intChan     chan os.Signal
	lmtr        *limiter.FpsLimiter

	state gui.EmulationState

	// instructions per second and the remainder carried from one frame to the
	// next. the remainder is in units of 1/TimerFrequency instructions
	ips   int
	carry int

	// tone state of the previous frame
	tone bool

	frames int
}

// Play sets the emulation running. It returns when the user quits, when the
// number of frames in the options have been run, or when the machine halts
// because of an error.
//
// The GUI receives the event channel and the emulation state with feature
// requests.
func Play(c8 *hardware.Chip8, scr gui.GUI, opts Options) error {
	pl := &playmode{
		c8:      c8,
		scr:     scr,
		opts:    opts,
		events:  make(chan gui.Event, eventQueueLength),
		intChan: make(chan os.Signal, 1),
		ips:     opts.InstructionsPerSecond,
	}

	if pl.ips <= 0 {
		pl.ips = clocks.InstructionsPerSecond
	}

	var err error
	pl.lmtr, err = limiter.NewFPSLimiter(clocks.TimerFrequency)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	pl.lmtr.Active = !opts.Uncapped

	err = scr.SetFeature(gui.ReqSetEventChan, pl.events)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	// ctrl-c ends the emulation in the same way as a quit event. the mixers
	// still get the chance to finish
	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	logger.Logf(logger.Allow, "playmode", "running at %d instructions per second", pl.ips)

	pl.setState(gui.StateRunning)
	err = pl.run()
	pl.setState(gui.StateEnding)

	for _, m := range opts.Mixers {
		if merr := m.EndMixing(); merr != nil {
			logger.Log(logger.Allow, "playmode", merr)
		}
	}

	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	return nil
}

func (pl *playmode) setState(state gui.EmulationState) {
	if pl.state == state {
		return
	}
	pl.state = state
	pl.scr.SetFeatureNoError(gui.ReqState, state)
}

func (pl *playmode) run() error {
	for {
		quit, err := pl.eventHandler()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		err = pl.frame()
		if err != nil {
			return err
		}

		if pl.opts.Frames > 0 && pl.frames >= pl.opts.Frames {
			return nil
		}

		pl.lmtr.Wait()
	}
}

// frame runs one tick of the timer clock.
func (pl *playmode) frame() error {
	if pl.state == gui.StateRunning {
		pl.carry += pl.ips
		n := pl.carry / clocks.TimerFrequency
		pl.carry %= clocks.TimerFrequency

		err := pl.c8.Run(n)
		if err != nil {
			logger.Log(logger.Allow, "playmode", err)
			pl.setState(gui.StateHalted)
			return err
		}

		pl.c8.TickTimers()
	}

	frame := pl.c8.Display()

	err := pl.scr.NewFrame(frame)
	if err != nil {
		return err
	}
	for _, r := range pl.opts.Renderers {
		err = r.NewFrame(frame)
		if err != nil {
			return err
		}
	}

	// a paused machine is silent
	tone := pl.c8.Tone() && pl.state == gui.StateRunning
	if tone != pl.tone {
		pl.tone = tone
		if tone {
			logger.Log(logger.Allow, "playmode", "tone start")
		} else {
			logger.Log(logger.Allow, "playmode", "tone end")
		}
	}
	for _, m := range pl.opts.Mixers {
		err = m.SetTone(tone)
		if err != nil {
			return err
		}
	}

	pl.frames++

	return nil
}
