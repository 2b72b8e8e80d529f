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
	"strings"

	"github.com/jetsetilly/gopher8/hardware/display"
)

// half-block characters. each character cell is one column and two rows of
// the display
const (
	blockFull  = '█'
	blockUpper = '▀'
	blockLower = '▄'
	blockNone  = ' '
)

// the number of lines used to draw the display
const displayLines = display.Height / 2

// renderFrame returns the display as lines of text.
func renderFrame(frame display.Frame) []string {
	lines := make([]string, 0, displayLines)

	var s strings.Builder
	for y := 0; y < display.Height; y += 2 {
		s.Reset()
		for x := 0; x < display.Width; x++ {
			top := frame.At(x, y)
			bottom := frame.At(x, y+1)
			switch {
			case top && bottom:
				s.WriteRune(blockFull)
			case top:
				s.WriteRune(blockUpper)
			case bottom:
				s.WriteRune(blockLower)
			default:
				s.WriteRune(blockNone)
			}
		}
		lines = append(lines, s.String())
	}

	return lines
}
