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

package sdlplay

import (
	"fmt"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/resources"
)

// default values for the sdlplay preferences.
const (
	defaultScale      = 15
	defaultForeground = "#ffffff"
	defaultBackground = "#000000"
	minScale          = 1
	maxScale          = 40
)

// Preferences for the SDL window.
type Preferences struct {
	dsk *prefs.Disk

	// size of one CHIP-8 pixel in host pixels
	Scale prefs.Int

	// colours of lit and unlit pixels, in the form #rrggbb
	Foreground prefs.String
	Background prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

func validColour(v prefs.Value) error {
	_, _, _, err := gui.ParseColour(v.(string))
	return err
}

func newPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.Scale.SetHookPre(func(v prefs.Value) error {
		s := v.(int)
		if s < minScale || s > maxScale {
			return fmt.Errorf("sdlplay.scale must be between %d and %d", minScale, maxScale)
		}
		return nil
	})
	p.Foreground.SetHookPre(validColour)
	p.Background.SetHookPre(validColour)

	p.SetDefaults()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("sdlplay.scale", &p.Scale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sdlplay.foreground", &p.Foreground)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sdlplay.background", &p.Background)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.Scale.Set(defaultScale)
	_ = p.Foreground.Set(defaultForeground)
	_ = p.Background.Set(defaultBackground)
}

// Save current sdlplay preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
