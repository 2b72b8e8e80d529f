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

package easyterm

import "fmt"

// list of ASCII codes for non-alphanumeric characters.
const (
	KeyCtrlC          = 3
	KeyTab            = 9
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeySpace          = 32
	KeyBackspace      = 127
)

// list of ASCII codes for characters that can follow KeyEsc.
const (
	EscCursor = '['
	EscSS3    = 'O'
)

// list of ASCII codes for characters that can follow EscCursor.
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
)

// ANSI sequences used to control the output terminal.
const (
	ClearScreen = "\033[2J"
	CursorHome  = "\033[H"
	HideCursor  = "\033[?25l"
	ShowCursor  = "\033[?25h"
	ResetAttr   = "\033[0m"
)

// MoveCursor returns the ANSI sequence that moves the cursor to the row and
// column. Both are counted from one.
func MoveCursor(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}

// ForegroundRGB returns the ANSI sequence that sets the foreground colour.
func ForegroundRGB(r, g, b uint8) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}

// BackgroundRGB returns the ANSI sequence that sets the background colour.
func BackgroundRGB(r, g, b uint8) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", r, g, b)
}
