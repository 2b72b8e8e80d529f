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

package performance

import "github.com/jetsetilly/gopher8/hardware/clocks"

// CalcFPS takes the number of frames and duration (in seconds) and returns
// the frames-per-second and the accuracy of that value as a percentage of the
// timer clock.
func CalcFPS(numFrames int, duration float64) (fps float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration
	accuracy = 100 * fps / clocks.TimerFrequency
	return fps, accuracy
}

// CalcIPS takes the number of instructions and duration (in seconds) and
// returns the instructions-per-second.
func CalcIPS(numInstructions uint64, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(numInstructions) / duration
}
