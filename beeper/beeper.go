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

package beeper

import (
	"math"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/logger"
)

// SampleRate is the number of samples per second in the generated waveform.
const SampleRate = 44100

// SamplesPerFrame is the number of samples generated by each call to Frame().
const SamplesPerFrame = SampleRate / clocks.TimerFrequency

// default square wave.
const (
	DefaultFrequency = 440.0
	DefaultVolume    = 0.25
)

// Sentinel error patterns.
const (
	UnsupportedSample = "beeper: unsupported sample format (%s)"
	SampleError       = "beeper: %v"
)

// Beeper generates the waveform for the tone.
type Beeper struct {
	Frequency float64
	Volume    float32

	// sample data at SampleRate. nil if the square wave is being used
	sample []float32

	// position in the sample or number of square wave samples generated.
	// both are reset when the tone starts
	pos int
	on  bool

	buf []float32
}

// NewBeeper is the preferred method of initialisation for the Beeper type.
func NewBeeper() *Beeper {
	return &Beeper{
		Frequency: DefaultFrequency,
		Volume:    DefaultVolume,
		buf:       make([]float32, SamplesPerFrame),
	}
}

// LoadSample replaces the square wave with the sample in the named file. WAV
// and MP3 files are supported.
func (bp *Beeper) LoadSample(filename string) error {
	var err error
	var smp []float32

	switch strings.ToLower(extension(filename)) {
	case ".wav":
		smp, err = decodeWAV(filename)
	case ".mp3":
		smp, err = decodeMP3(filename)
	default:
		return curated.Errorf(UnsupportedSample, filename)
	}
	if err != nil {
		return curated.Errorf(SampleError, err)
	}
	if len(smp) == 0 {
		return curated.Errorf(SampleError, "sample is empty")
	}

	bp.sample = smp
	bp.pos = 0
	logger.Logf(logger.Allow, "beeper", "using sample %s (%d samples)", filename, len(smp))

	return nil
}

// HasSample returns true if a sample has been loaded.
func (bp *Beeper) HasSample() bool {
	return bp.sample != nil
}

// Frame returns SamplesPerFrame samples. The returned slice is reused on the
// next call.
func (bp *Beeper) Frame(on bool) []float32 {
	if !on {
		bp.on = false
		for i := range bp.buf {
			bp.buf[i] = 0
		}
		return bp.buf
	}

	if !bp.on {
		bp.on = true
		bp.pos = 0
	}

	if bp.sample != nil {
		for i := range bp.buf {
			bp.buf[i] = bp.sample[bp.pos] * bp.Volume / DefaultVolume
			bp.pos++
			if bp.pos >= len(bp.sample) {
				bp.pos = 0
			}
		}
		return bp.buf
	}

	for i := range bp.buf {
		phase := float64(bp.pos) * bp.Frequency / SampleRate
		if phase-math.Floor(phase) < 0.5 {
			bp.buf[i] = bp.Volume
		} else {
			bp.buf[i] = -bp.Volume
		}
		bp.pos++
	}

	return bp.buf
}

// resample converts interleaved samples to a single channel at SampleRate.
func resample(data []float32, channels int, rate int) []float32 {
	if channels < 1 || rate < 1 {
		return nil
	}

	frames := len(data) / channels
	mono := make([]float32, frames)
	for i := 0; i < frames; i++ {
		var v float32
		for c := 0; c < channels; c++ {
			v += data[i*channels+c]
		}
		mono[i] = v / float32(channels)
	}

	if rate == SampleRate {
		return mono
	}

	n := int(int64(frames) * SampleRate / int64(rate))
	out := make([]float32, n)
	for i := range out {
		out[i] = mono[int(int64(i)*int64(rate)/SampleRate)]
	}

	return out
}

func extension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	return filename[i:]
}
