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

// Package wavwriter allows writing of the tone to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety, and written to disk
// when the emulation ends.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/beeper"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// WavError is the pattern for all errors returned by the package.
const WavError = "wavwriter: %v"

const bitDepth = 16

// WavWriter implements the gui.AudioMixer interface.
type WavWriter struct {
	filename string
	bp       *beeper.Beeper
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type. The
// beeper should not be shared with another audio mixer because the position
// in the waveform is part of the beeper state.
func New(filename string, bp *beeper.Beeper) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf(WavError, "no filename")
	}

	aw := &WavWriter{
		filename: filename,
		bp:       bp,
		buffer:   make([]int, 0, beeper.SampleRate),
	}

	return aw, nil
}

// Samples returns the number of samples collected so far.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer)
}

// SetTone implements the gui.AudioMixer interface.
func (aw *WavWriter) SetTone(on bool) error {
	for _, v := range aw.bp.Frame(on) {
		aw.buffer = append(aw.buffer, int(v*32767))
	}
	return nil
}

// EndMixing implements the gui.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WavError, err)
		}
	}()

	enc := wav.NewEncoder(f, beeper.SampleRate, bitDepth, 1, 1)
	if enc == nil {
		return curated.Errorf(WavError, "bad parameters for wav encoding")
	}
	defer func() {
		err := enc.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WavError, err)
		}
	}()

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  beeper.SampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf(WavError, err)
	}

	return nil
}
