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

// Package beeper produces the waveform for the CHIP-8 tone. The CHIP-8 only
// says whether the tone is on or off. The sound itself is either a square
// wave or a sample loaded from a WAV or MP3 file, which is looped for as long
// as the tone is on.
//
// Waveforms are produced one frame at a time, at SampleRate samples per
// second. Values are in the range -1.0 to 1.0.
package beeper
