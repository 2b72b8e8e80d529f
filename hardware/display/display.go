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

package display

import "strings"

// Geometry of the display.
const (
	Width    = 64
	Height   = 32
	NumCells = Width * Height
)

// SpriteWidth is the number of cells in each row of a sprite. The most
// significant bit of a sprite row is the left-most cell.
const SpriteWidth = 8

// Frame is a snapshot of the display. Cells are stored in row-major order.
type Frame [NumCells]bool

// At returns the state of the cell at x, y. Coordinates outside the display
// are never lit.
func (f Frame) At(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return f[y*Width+x]
}

// Lit returns the number of lit cells in the frame.
func (f Frame) Lit() int {
	n := 0
	for _, c := range f {
		if c {
			n++
		}
	}
	return n
}

// String returns the frame as text. One line per row with '#' for lit cells
// and '.' for unlit cells.
func (f Frame) String() string {
	s := strings.Builder{}
	s.Grow((Width + 1) * Height)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if f[y*Width+x] {
				s.WriteByte('#')
			} else {
				s.WriteByte('.')
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}

// Display is the state of every cell of the display.
type Display struct {
	cells Frame
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	return &Display{}
}

func (d *Display) String() string {
	return d.cells.String()
}

// Reset clears the display.
func (d *Display) Reset() {
	d.Clear()
}

// Clear turns off every cell.
func (d *Display) Clear() {
	d.cells = Frame{}
}

// DrawSprite XORs the sprite onto the display with its top-left corner at x,
// y. Each entry in rows is one row of the sprite. The coordinates are taken
// modulo the width and height of the display but the sprite itself is
// clipped at the edges.
//
// Returns true if any cell was turned off by the drawing.
func (d *Display) DrawSprite(x, y uint8, rows []uint8) bool {
	ox := int(x) % Width
	oy := int(y) % Height

	var collision bool

	for r, data := range rows {
		py := oy + r
		if py >= Height {
			break // for loop
		}
		for c := 0; c < SpriteWidth; c++ {
			px := ox + c
			if px >= Width {
				break // for loop
			}
			if data&(0x80>>c) == 0 {
				continue // for loop
			}
			i := py*Width + px
			if d.cells[i] {
				collision = true
			}
			d.cells[i] = !d.cells[i]
		}
	}

	return collision
}

// Frame returns a copy of the current state of the display.
func (d *Display) Frame() Frame {
	return d.cells
}
