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
	"fmt"
	"io"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/version"

	"github.com/veandco/go-sdl2/sdl"
)

// SdlError is the pattern for errors returned by the SDL library.
const SdlError = "sdlplay: %v"

// SdlPlay is a simple SDL implementation of the gui.GUI interface. It draws
// every lit CHIP-8 pixel as a filled rectangle.
//
// All SDL calls happen in the Service() function, which must be called from
// the main thread. Other functions can be called from any goroutine.
type SdlPlay struct {
	Prefs *Preferences

	window   *sdl.Window
	renderer *sdl.Renderer

	// the current window scale
	scale int32

	// colours taken from the preferences on creation
	fg sdl.Color
	bg sdl.Color

	// rectangles for lit pixels. allocated once and resliced every frame
	rects []sdl.Rect

	// events are sent on this channel once it has been set by the
	// ReqSetEventChan request
	events chan gui.Event

	// the most recent frame from the emulation. replaced if the main thread
	// has not yet collected it
	frame chan display.Frame

	// feature requests are serviced on the main thread
	featureReq chan featureRequest

	state gui.EmulationState
	title string
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. It must
// be called from the main thread.
func NewSdlPlay() (*SdlPlay, error) {
	scr := &SdlPlay{
		rects:      make([]sdl.Rect, 0, display.NumCells),
		frame:      make(chan display.Frame, 1),
		featureReq: make(chan featureRequest, 4),
	}

	var err error

	scr.Prefs, err = newPreferences()
	if err != nil {
		return nil, curated.Errorf(SdlError, err)
	}

	scr.fg, err = prefColour(scr.Prefs.Foreground.String())
	if err != nil {
		return nil, curated.Errorf(SdlError, err)
	}
	scr.bg, err = prefColour(scr.Prefs.Background.String())
	if err != nil {
		return nil, curated.Errorf(SdlError, err)
	}

	// audio is initialised here because the sdlaudio package expects SDL to
	// have been initialised already
	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf(SdlError, err)
	}

	setupService()

	// window size is set in the setScale() function
	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		display.Width, display.Height,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf(SdlError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf(SdlError, err)
	}

	err = scr.setScale(scr.Prefs.Scale.Get().(int))
	if err != nil {
		return nil, curated.Errorf(SdlError, err)
	}

	// clear window to the background colour. the window is not shown until
	// ReqSetVisibility is requested
	scr.render(display.Frame{})

	logger.Logf(logger.Allow, "sdlplay", "window created (scale %d)", scr.scale)

	return scr, nil
}

func prefColour(s string) (sdl.Color, error) {
	r, g, b, err := gui.ParseColour(s)
	if err != nil {
		return sdl.Color{}, err
	}
	return sdl.Color{R: r, G: g, B: b, A: 255}, nil
}

// Destroy implements the GuiCreator interface. It must be called from the
// main thread.
func (scr *SdlPlay) Destroy(output io.Writer) {
	if err := scr.Prefs.Save(); err != nil {
		fmt.Fprintln(output, err)
	}

	if scr.renderer != nil {
		if err := scr.renderer.Destroy(); err != nil {
			fmt.Fprintln(output, err)
		}
	}
	if scr.window != nil {
		if err := scr.window.Destroy(); err != nil {
			fmt.Fprintln(output, err)
		}
	}
	sdl.Quit()
}

func (scr *SdlPlay) setScale(scale int) error {
	if scale < minScale || scale > maxScale {
		return curated.Errorf("sdlplay: scale must be between %d and %d", minScale, maxScale)
	}
	scr.scale = int32(scale)
	scr.window.SetSize(display.Width*scr.scale, display.Height*scr.scale)
	return nil
}

func (scr *SdlPlay) setTitle() {
	t := version.ApplicationName
	if scr.title != "" {
		t = fmt.Sprintf("%s - %s", t, scr.title)
	}
	switch scr.state {
	case gui.StatePaused, gui.StateHalted:
		t = fmt.Sprintf("%s [%s]", t, scr.state)
	}
	scr.window.SetTitle(t)
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

// NewFrame implements the gui.Renderer interface. The frame is drawn on the
// next call to Service().
func (scr *SdlPlay) NewFrame(frame display.Frame) error {
	select {
	case scr.frame <- frame:
	default:
		// the previous frame has not been drawn yet. replace it
		select {
		case <-scr.frame:
		default:
		}
		scr.frame <- frame
	}
	return nil
}

// render must only be called from the main thread.
func (scr *SdlPlay) render(frame display.Frame) error {
	err := scr.renderer.SetDrawColor(scr.bg.R, scr.bg.G, scr.bg.B, scr.bg.A)
	if err != nil {
		return err
	}
	err = scr.renderer.Clear()
	if err != nil {
		return err
	}

	scr.rects = scr.rects[:0]
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			if frame.At(x, y) {
				scr.rects = append(scr.rects, sdl.Rect{
					X: int32(x) * scr.scale,
					Y: int32(y) * scr.scale,
					W: scr.scale,
					H: scr.scale,
				})
			}
		}
	}

	if len(scr.rects) > 0 {
		err = scr.renderer.SetDrawColor(scr.fg.R, scr.fg.G, scr.fg.B, scr.fg.A)
		if err != nil {
			return err
		}
		err = scr.renderer.FillRects(scr.rects)
		if err != nil {
			return err
		}
	}

	scr.renderer.Present()

	return nil
}
