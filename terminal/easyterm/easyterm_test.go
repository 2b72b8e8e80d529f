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

package easyterm_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/terminal/easyterm"
	"github.com/jetsetilly/gopher8/test"
)

func TestSequences(t *testing.T) {
	test.ExpectEquality(t, easyterm.MoveCursor(3, 12), "\033[3;12H")
	test.ExpectEquality(t, easyterm.ForegroundRGB(255, 0, 16), "\033[38;2;255;0;16m")
	test.ExpectEquality(t, easyterm.BackgroundRGB(1, 2, 3), "\033[48;2;1;2;3m")
}

func TestNotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notaterm")
	test.DemandSuccess(t, err)
	defer f.Close()

	var pt easyterm.Terminal
	err = pt.Initialise(f, f)
	test.ExpectSuccess(t, curated.Is(err, easyterm.TermError))

	err = pt.Initialise(nil, f)
	test.ExpectFailure(t, err)
}
