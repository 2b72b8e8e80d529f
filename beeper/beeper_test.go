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

package beeper_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/beeper"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

func TestSilence(t *testing.T) {
	bp := beeper.NewBeeper()
	f := bp.Frame(false)
	test.ExpectEquality(t, len(f), beeper.SamplesPerFrame)
	for _, v := range f {
		test.DemandEquality(t, v, float32(0))
	}
}

func TestSquareWave(t *testing.T) {
	bp := beeper.NewBeeper()

	// a period of exactly 100 samples
	bp.Frequency = 441

	f := bp.Frame(true)
	test.ExpectEquality(t, len(f), beeper.SamplesPerFrame)

	high := 0
	low := 0
	for _, v := range f[:100] {
		switch v {
		case bp.Volume:
			high++
		case -bp.Volume:
			low++
		default:
			t.Fatalf("unexpected sample value %f", v)
		}
	}
	test.ExpectEquality(t, high, 50)
	test.ExpectEquality(t, low, 50)

	// the wave starts high and the second period matches the first
	test.ExpectEquality(t, f[0], bp.Volume)
	for i := 0; i < 100; i++ {
		test.DemandEquality(t, f[i], f[i+100])
	}
}

func TestPhaseRestart(t *testing.T) {
	bp := beeper.NewBeeper()
	bp.Frequency = 441

	a := append([]float32{}, bp.Frame(true)...)

	// a continuing tone carries on from where it was
	b := append([]float32{}, bp.Frame(true)...)
	test.ExpectEquality(t, b[0], a[beeper.SamplesPerFrame%100])

	// a new tone starts from the beginning of the wave
	bp.Frame(false)
	c := bp.Frame(true)
	test.ExpectEquality(t, c[0], a[0])
	test.ExpectEquality(t, c[60], a[60])
}

func writeWAV(t *testing.T, rate int, data []int) string {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "beep.wav")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)

	enc := wav.NewEncoder(f, rate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
	test.DemandSuccess(t, f.Close())

	return fn
}

func TestWAVSample(t *testing.T) {
	data := []int{16384, -16384, 0}
	fn := writeWAV(t, beeper.SampleRate, data)

	bp := beeper.NewBeeper()
	test.ExpectSuccess(t, bp.LoadSample(fn))
	test.ExpectSuccess(t, bp.HasSample())

	// sample is looped
	f := bp.Frame(true)
	test.ExpectEquality(t, f[0], float32(0.5))
	test.ExpectEquality(t, f[1], float32(-0.5))
	test.ExpectEquality(t, f[2], float32(0))
	test.ExpectEquality(t, f[3], float32(0.5))

	// silence is still silence
	f = bp.Frame(false)
	test.ExpectEquality(t, f[0], float32(0))
}

func TestWAVResample(t *testing.T) {
	// half the output rate. every input sample appears twice
	data := []int{16384, -16384}
	fn := writeWAV(t, beeper.SampleRate/2, data)

	bp := beeper.NewBeeper()
	test.ExpectSuccess(t, bp.LoadSample(fn))

	f := bp.Frame(true)
	test.ExpectEquality(t, f[0], float32(0.5))
	test.ExpectEquality(t, f[1], float32(0.5))
	test.ExpectEquality(t, f[2], float32(-0.5))
	test.ExpectEquality(t, f[3], float32(-0.5))
	test.ExpectEquality(t, f[4], float32(0.5))
}

func TestBadSample(t *testing.T) {
	bp := beeper.NewBeeper()

	err := bp.LoadSample("beep.ogg")
	test.ExpectSuccess(t, curated.Is(err, beeper.UnsupportedSample))

	err = bp.LoadSample(filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectSuccess(t, curated.Is(err, beeper.SampleError))

	fn := filepath.Join(t.TempDir(), "notwav.wav")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a wav file at all"), 0o644))
	err = bp.LoadSample(fn)
	test.ExpectSuccess(t, curated.Is(err, beeper.SampleError))

	test.ExpectFailure(t, bp.HasSample())
}
