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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	test.ExpectFailure(t, log.Write(w))
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the writer before continuing, makes comparisons easier to manage
	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "cpu", "unrecognised opcode")
	log.Log(logger.Allow, "cpu", "unrecognised opcode")
	log.Log(logger.Allow, "cpu", "unrecognised opcode")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "cpu: unrecognised opcode (repeat x3)\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Logf(logger.Allow, "tag", "%d", 1)
	log.Logf(logger.Allow, "tag", "%d", 2)
	log.Logf(logger.Allow, "tag", "%d", 3)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 2\ntag: 3\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	echo := &test.CompareWriter{}

	log.SetEcho(echo)
	log.Log(logger.Allow, "tag", "echoed")
	test.ExpectSuccess(t, echo.Compare("tag: echoed\n"))

	log.SetEcho(nil)
	log.Log(logger.Allow, "tag", "not echoed")
	test.ExpectSuccess(t, echo.Compare("tag: echoed\n"))
}

type prohibitLogging struct {
	allow bool
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(prohibitLogging{allow: false}, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(prohibitLogging{allow: true}, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail\n")
}

type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Log(logger.Allow, "tag", stringerTest{})
	log.Log(logger.Allow, "tag", 100)
	log.Logf(logger.Allow, "tag", "wrapped: %v", errors.New("test error"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\ntag: stringer test\ntag: 100\ntag: wrapped: test error\n")
}
