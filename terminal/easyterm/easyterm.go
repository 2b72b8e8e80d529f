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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It provides
// some features not present in that package, such as terminal geometry, and
// wraps termios methods in functions with friendlier names.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TermError is the pattern for errors returned by the package.
const TermError = "easyterm: %v"

// TermGeometry contains the dimensions of a terminal in characters.
type TermGeometry struct {
	Rows int
	Cols int
}

// Terminal is the main container for posix terminals. Usually embedded in
// other struct types.
type Terminal struct {
	input  *os.File
	output *os.File

	geometry TermGeometry

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// geometry is updated by the signal handler
	mu sync.Mutex
}

// Initialise the fields in the Terminal struct. The input file must be a
// terminal.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return curated.Errorf(TermError, "an input file is required")
	}
	if outputFile == nil {
		return curated.Errorf(TermError, "an output file is required")
	}
	if !term.IsTerminal(int(inputFile.Fd())) {
		return curated.Errorf(TermError, fmt.Sprintf("%s is not a terminal", inputFile.Name()))
	}

	pt.input = inputFile
	pt.output = outputFile

	// prepare the attributes for the different terminal modes we'll be using
	err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr)
	if err != nil {
		return curated.Errorf(TermError, err)
	}
	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	_ = pt.UpdateGeometry()

	pt.terminateHandlerSig = make(chan bool)
	pt.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			pt.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = pt.UpdateGeometry()
			case <-pt.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp closes resources created in the Initialise() function and returns
// the terminal to canonical mode.
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
	pt.terminateHandlerSig <- true
	<-pt.terminateHandlerAck
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...interface{}) {
	_, _ = pt.output.WriteString(fmt.Sprintf(s, a...))
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (pt *Terminal) UpdateGeometry() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	cols, rows, err := term.GetSize(int(pt.output.Fd()))
	if err != nil {
		return curated.Errorf(TermError, err)
	}
	pt.geometry.Cols = cols
	pt.geometry.Rows = rows

	return nil
}

// Geometry returns the most recently measured dimensions of the terminal.
func (pt *Terminal) Geometry() TermGeometry {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.geometry
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// RawMode puts terminal into raw mode.
func (pt *Terminal) RawMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.rawAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (pt *Terminal) CBreakMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf(TermError, err)
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return curated.Errorf(TermError, err)
	}
	return nil
}
