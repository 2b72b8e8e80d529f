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

package preferences_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

func TestPreferences(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { os.Chdir(wd) })
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.InstructionsPerSecond.Get().(int), clocks.InstructionsPerSecond)
	test.ExpectEquality(t, p.RandomSeed.Get().(int), 0)

	// out of range values are rejected
	test.ExpectFailure(t, p.InstructionsPerSecond.Set(0))
	test.ExpectFailure(t, p.InstructionsPerSecond.Set(clocks.MaxInstructionsPerSecond+1))
	test.ExpectEquality(t, p.InstructionsPerSecond.Get().(int), clocks.InstructionsPerSecond)

	test.ExpectSuccess(t, p.InstructionsPerSecond.Set(1000))
	test.DemandSuccess(t, p.Save())

	// a new instance sees the saved value
	q, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.InstructionsPerSecond.Get().(int), 1000)

	q.SetDefaults()
	test.ExpectEquality(t, q.InstructionsPerSecond.Get().(int), clocks.InstructionsPerSecond)
}

func TestCommandLine(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { os.Chdir(wd) })
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	prefs.PushCommandLineStack("hardware.ips::2500; hardware.randomSeed::42")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.InstructionsPerSecond.Get().(int), 2500)
	test.ExpectEquality(t, p.RandomSeed.Get().(int), 42)
}
