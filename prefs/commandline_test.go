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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("foo::bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// white space around keys and values is removed
	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// remaining values are sorted by key
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// malformed pairs are ignored
	prefs.PushCommandLineStack("foo_bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	prefs.PushCommandLineStack("foo_bar;baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	prefs.PushCommandLineStack("foo::bar;baz_qux")
	ok, _ := prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// a value that has been retrieved is no longer in the group
	prefs.PushCommandLineStack("hardware.ips::1000; foo::bar")
	ok, v := prefs.GetCommandLinePref("hardware.ips")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "1000")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("foo::bar")
	prefs.PushCommandLineStack("baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the top group is consulted
	ok, _ := prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
