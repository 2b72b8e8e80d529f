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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/display"
)

// Screen implements the gui.Renderer interface.
type Screen struct {
	digest [sha1.Size]byte

	// the previous digest followed by one byte per display cell
	pixels []byte

	frames int
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen() *Screen {
	return &Screen{
		pixels: make([]byte, sha1.Size+display.NumCells),
	}
}

func (dig *Screen) String() string {
	return dig.Hash()
}

// Hash implements the Digest interface.
func (dig *Screen) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Frames returns the number of frames included in the digest.
func (dig *Screen) Frames() int {
	return dig.frames
}

// ResetDigest implements the Digest interface.
func (dig *Screen) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frames = 0
}

// NewFrame implements the gui.Renderer interface.
func (dig *Screen) NewFrame(frame display.Frame) error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the screen data
	copy(dig.pixels, dig.digest[:])

	p := dig.pixels[sha1.Size:]
	for i, c := range frame {
		if c {
			p[i] = 1
		} else {
			p[i] = 0
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++

	return nil
}
