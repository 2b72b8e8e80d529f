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

package gui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/display"
)

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	Renderer

	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// Same as SetFeature() but not waiting for the result. Useful in time
	// critical situations when you are absolutely sure there will be no
	// errors that need handling.
	SetFeatureNoError(request FeatureReq, args ...FeatureReqData)

	// Return current state of GUI feature.
	GetFeature(request FeatureReq) (FeatureReqData, error)
}

// Renderer implementations display the output of the CHIP-8 display. NewFrame
// is called once per presented frame, from the emulation goroutine.
type Renderer interface {
	NewFrame(frame display.Frame) error
}

// AudioMixer implementations receive the state of the tone once per frame.
// EndMixing is called when the emulation ends.
type AudioMixer interface {
	SetTone(on bool) error
	EndMixing() error
}

// Sentinel error patterns.
const (
	UnsupportedGuiFeature = "unsupported gui feature: %v"
	InvalidColour         = "gui: invalid colour (%s)"
)

// ParseColour converts a colour in the form "#rrggbb" or "rrggbb" into its
// components.
func ParseColour(s string) (r, g, b uint8, err error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return 0, 0, 0, curated.Errorf(InvalidColour, s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, curated.Errorf(InvalidColour, s)
	}

	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// FormatColour is the inverse of ParseColour.
func FormatColour(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
