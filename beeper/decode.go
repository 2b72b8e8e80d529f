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
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

func decodeWAV(filename string) ([]float32, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, err
	}
	if buf.Format == nil {
		return nil, fmt.Errorf("wav file has no format")
	}

	depth := buf.SourceBitDepth
	if depth == 0 {
		depth = int(dec.BitDepth)
	}
	if depth < 8 || depth > 32 {
		return nil, fmt.Errorf("unsupported bit depth (%d)", depth)
	}

	// 8 bit wav data is unsigned
	var offset float32
	scale := float32(int64(1) << (depth - 1))
	if depth == 8 {
		offset = -128
	}

	data := buf.AsFloat32Buffer().Data
	for i := range data {
		data[i] = (data[i] + offset) / scale
	}

	return resample(data, buf.Format.NumChannels, buf.Format.SampleRate), nil
}

func decodeMP3(filename string) ([]float32, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, err
	}

	// the decoder always produces 16 bit little endian stereo
	data := make([]float32, len(raw)/2)
	for i := range data {
		v := int16(binary.LittleEndian.Uint16(raw[i*2:]))
		data[i] = float32(v) / 32768
	}

	return resample(data, 2, dec.SampleRate()), nil
}
