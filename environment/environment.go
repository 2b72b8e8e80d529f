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

package environment

import (
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/random"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label used for the main emulation.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation. Particularly useful
// when more than one emulation is running, for example in the performance
// mode.
type Environment struct {
	Label Label

	// any randomisation required by the emulation should be retrieved through
	// this structure
	Random *random.Random

	// the emulation preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The prefs argument can be nil in which case a new Preferences instance will
// be created. Providing a non-nil value allows the preferences of more than
// one emulation to be shared.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}
	env.Prefs = prefs

	env.Random = random.NewRandom(int64(env.Prefs.RandomSeed.Get().(int)))

	return env, nil
}

// Normalise ensures the environment is in an known default state. Useful for
// testing where the initial state must be the same for every run.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
	env.Random.Seed = 0
	env.Random.ZeroSeed = true
	env.Random.Reset()
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to log.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation()
}
