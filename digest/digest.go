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

// Package digest is used to create fingerprints of the emulation output. A
// fingerprint is a SHA-1 hash chained over every frame, so that two runs of
// the same program produce the same value only if every frame was the same.
//
// The Screen type implements the gui.Renderer interface and the Audio type
// implements the gui.AudioMixer interface. They can be attached to the
// emulation in place of, or as well as, a real front end.
package digest

// Digest implementations produce a fingerprint of the emulation output.
type Digest interface {
	Hash() string
	ResetDigest()
}
