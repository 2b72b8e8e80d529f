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
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/terminal/easyterm"
	"github.com/jetsetilly/gopher8/version"
)

// TermPlay implements the gui.GUI interface for a terminal.
type TermPlay struct {
	term easyterm.Terminal

	// output is the output file of the terminal. kept separately so that
	// drawing doesn't need to go through the terminal's formatted Print()
	output io.Writer

	// fields below are shared by the input goroutine and the emulation
	// goroutine
	mu     sync.Mutex
	events chan gui.Event
	state  gui.EmulationState
	title  string
	held   *keyHolder

	// the previous frame is not redrawn if nothing has changed
	prev    display.Frame
	drawn   bool
	scratch strings.Builder
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type. The terminal is put into raw mode until Destroy() is called.
func NewTermPlay(input, output *os.File) (*TermPlay, error) {
	tp := &TermPlay{
		output: output,
		held:   newKeyHolder(),
	}

	err := tp.term.Initialise(input, output)
	if err != nil {
		return nil, err
	}

	geom := tp.term.Geometry()
	if geom.Cols > 0 && (geom.Cols < display.Width || geom.Rows < displayLines+1) {
		logger.Logf(logger.Allow, "termplay", "terminal is too small (%dx%d)", geom.Cols, geom.Rows)
	}

	tp.term.RawMode()
	tp.term.Print("%s%s%s", easyterm.HideCursor, easyterm.ClearScreen, easyterm.CursorHome)

	go tp.readInput(input)

	return tp, nil
}

// Destroy implements the GuiCreator interface.
func (tp *TermPlay) Destroy(_ io.Writer) {
	tp.term.Print("%s%s%s", easyterm.ResetAttr, easyterm.ShowCursor, easyterm.MoveCursor(displayLines+3, 1))
	tp.term.CleanUp()
}

// Service implements the GuiCreator interface. The terminal has no need to
// service anything on the main thread.
func (tp *TermPlay) Service() {
}

func (tp *TermPlay) readInput(input io.Reader) {
	buf := make([]byte, 16)
	for {
		n, err := input.Read(buf)
		if err != nil {
			logger.Log(logger.Allow, "termplay", err)
			tp.send(gui.EventQuit{})
			return
		}

		for _, ev := range translate(buf[:n]) {
			if kev, ok := ev.(gui.EventKeyboard); ok {
				tp.mu.Lock()
				newPress := tp.held.press(kev.Key)
				tp.mu.Unlock()
				if !newPress {
					continue
				}
			}
			tp.send(ev)
		}
	}
}

// events are dropped if the emulation is not keeping up.
func (tp *TermPlay) send(ev gui.Event) {
	tp.mu.Lock()
	events := tp.events
	tp.mu.Unlock()

	if events == nil {
		return
	}

	select {
	case events <- ev:
	default:
	}
}

// NewFrame implements the gui.Renderer interface.
func (tp *TermPlay) NewFrame(frame display.Frame) error {
	tp.mu.Lock()
	released := tp.held.frame()
	state := tp.state
	title := tp.title
	drawn := tp.drawn
	tp.drawn = true
	tp.mu.Unlock()

	for _, k := range released {
		tp.send(gui.EventKeyboard{Key: k, Down: false})
	}

	if drawn && frame == tp.prev {
		return nil
	}
	tp.prev = frame

	tp.scratch.Reset()
	tp.scratch.WriteString(easyterm.CursorHome)
	for _, l := range renderFrame(frame) {
		tp.scratch.WriteString(l)
		tp.scratch.WriteString("\r\n")
	}
	tp.scratch.WriteString(statusLine(title, state))

	_, err := io.WriteString(tp.output, tp.scratch.String())
	if err != nil {
		return curated.Errorf("termplay: %v", err)
	}

	return nil
}

func statusLine(title string, state gui.EmulationState) string {
	s := version.ApplicationName
	if title != "" {
		s = fmt.Sprintf("%s - %s", s, title)
	}
	return fmt.Sprintf("%s [%s]  ESC quit  BACKSPACE reset  SPACE pause\033[K", s, state)
}

// SetFeature implements the gui.GUI interface.
func (tp *TermPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (err error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			err = curated.Errorf("termplay: bad arguments for %s: %v", request, r)
		}
	}()

	tp.mu.Lock()
	defer tp.mu.Unlock()

	switch request {
	case gui.ReqSetEventChan:
		tp.events = args[0].(chan gui.Event)

	case gui.ReqState:
		tp.state = args[0].(gui.EmulationState)

		// force redraw of status line
		tp.drawn = false

	case gui.ReqSetTitle:
		tp.title = args[0].(string)
		tp.drawn = false

	case gui.ReqSetVisibility:
		// the terminal is always visible

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

// SetFeatureNoError implements the gui.GUI interface.
func (tp *TermPlay) SetFeatureNoError(request gui.FeatureReq, args ...gui.FeatureReqData) {
	_ = tp.SetFeature(request, args...)
}

// GetFeature implements the gui.GUI interface.
func (tp *TermPlay) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	tp.mu.Lock()
	defer tp.mu.Unlock()

	switch request {
	case gui.ReqState:
		return tp.state, nil
	case gui.ReqSetTitle:
		return tp.title, nil
	case gui.ReqSetVisibility:
		return true, nil
	}

	return nil, curated.Errorf(gui.UnsupportedGuiFeature, request)
}
