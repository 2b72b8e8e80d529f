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

package preferences

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/resources"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the rate of the instruction clock
	InstructionsPerSecond prefs.Int

	// seed for the CXNN instruction. zero means the seed is taken from the
	// current time
	RandomSeed prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.InstructionsPerSecond.SetHookPre(func(v prefs.Value) error {
		ips := v.(int)
		if ips < clocks.MinInstructionsPerSecond || ips > clocks.MaxInstructionsPerSecond {
			return fmt.Errorf("hardware.ips must be between %d and %d",
				clocks.MinInstructionsPerSecond, clocks.MaxInstructionsPerSecond)
		}
		return nil
	})

	p.SetDefaults()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.ips", &p.InstructionsPerSecond)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.randomSeed", &p.RandomSeed)
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
	// the default values are within range and cannot fail
	_ = p.InstructionsPerSecond.Set(clocks.InstructionsPerSecond)
	_ = p.RandomSeed.Set(0)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
