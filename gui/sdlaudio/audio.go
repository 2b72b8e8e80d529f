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

package sdlaudio

import (
	"github.com/jetsetilly/gopher8/beeper"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// the buffer length is important to get right. we don't want it to be long
// because we can introduce unnecessary lag between the tone and the display;
// by the same token we don't want it too short because the device will
// underflow between frames.
//
// the following value has been discovered through trial and error. the precise
// value is not critical.
const bufferLength = 512

// if more than this many bytes are queued the emulation is running ahead of
// the audio device. frames are dropped until the queue drains
const maxQueued = beeper.SamplesPerFrame * 4

// AudioError is the pattern for errors returned by the SDL audio functions.
const AudioError = "sdlaudio: %v"

// Audio outputs the tone using SDL. It implements the gui.AudioMixer
// interface. SDL must have been initialised with INIT_AUDIO before calling
// NewAudio().
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	bp  *beeper.Beeper
	buf []uint8
}

// NewAudio is the preferred method of initialisation for the Audio Type.
func NewAudio(bp *beeper.Beeper) (*Audio, error) {
	aud := &Audio{
		bp:  bp,
		buf: make([]uint8, beeper.SamplesPerFrame),
	}

	spec := &sdl.AudioSpec{
		Freq:     beeper.SampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf(AudioError, err)
	}
	aud.spec = actualSpec

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetTone implements the gui.AudioMixer interface.
func (aud *Audio) SetTone(on bool) error {
	if sdl.GetQueuedAudioSize(aud.id) > maxQueued {
		return nil
	}

	for i, v := range aud.bp.Frame(on) {
		aud.buf[i] = uint8(int(aud.spec.Silence) + int(v*127))
	}

	err := sdl.QueueAudio(aud.id, aud.buf)
	if err != nil {
		return curated.Errorf(AudioError, err)
	}

	return nil
}

// EndMixing implements the gui.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	return nil
}
