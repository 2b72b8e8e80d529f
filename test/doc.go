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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions are the same but call t.Fatalf(). The
// demand variants are useful when the value being tested is used in later
// tests and so must be correct.
//
// ExpectSuccess() and ExpectFailure() test for 'success' and 'failure'
// values in a way that suits the type of the value. For booleans success is
// true. For errors success is nil.
//
// It is worth describing how the success/failure functions handle the nil
// type because it is not obvious. The nil type is considered a success. This
// is because of how errors usually work (nil indicating no error).
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output. CompareWriter.Compare() can then be used to test for
// equality.
package test
