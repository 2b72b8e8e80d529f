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
)

// the number of frames collected before the digest is updated. the first
// bytes of the buffer hold the previous digest value
const audioBufferLength = 1024

const audioBufferStart = sha1.Size

// Audio implements the gui.AudioMixer interface. The tone state of every
// frame is one byte in the digest.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, audioBufferStart+audioBufferLength),
		bufferCt: audioBufferStart,
	}
}

func (dig *Audio) String() string {
	return dig.Hash()
}

// Hash implements the Digest interface. Outstanding tone data is included in
// the hash.
func (dig *Audio) Hash() string {
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.bufferCt = audioBufferStart
}

func (dig *Audio) flush() {
	copy(dig.buffer, dig.digest[:])
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	dig.bufferCt = audioBufferStart
}

// SetTone implements the gui.AudioMixer interface.
func (dig *Audio) SetTone(on bool) error {
	if on {
		dig.buffer[dig.bufferCt] = 1
	} else {
		dig.buffer[dig.bufferCt] = 0
	}
	dig.bufferCt++

	if dig.bufferCt >= len(dig.buffer) {
		dig.flush()
	}

	return nil
}

// EndMixing implements the gui.AudioMixer interface.
func (dig *Audio) EndMixing() error {
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
	return nil
}
