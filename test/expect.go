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

package test

import (
	"fmt"
	"testing"
)

// id returns a string identifying the test from the supplied tags. the
// returned string, if not empty, ends with a separating space
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	s := fmt.Sprint(tags...)
	return fmt.Sprintf("(%s) ", s)
}

// expect returns true if value v is a 'success' value for its type
func expect(t *testing.T, v any, tags ...any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
	}

	return false
}

// ExpectEquality is used to test equality between one value and another
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is used to test inequality between one value and another.
// In other words, the test does not want the values to be equal
func ExpectInequality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v == expectedValue {
		t.Errorf("%sinequality test of type %T failed: '%v' does equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

// ExpectSuccess tests argument v for a success condition suitable for its
// type. Currently supported types:
//
//	bool -> bool == true
//	error -> error == nil
//
// If type is nil then the test will succeed.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if !expect(t, v, tags...) {
		switch v := v.(type) {
		case error:
			t.Errorf("%sexpected success (error: %v)", id(tags...), v)
		default:
			t.Errorf("%sexpected success (%T)", id(tags...), v)
		}
		return false
	}
	return true
}

// ExpectFailure tests argument v for a failure condition suitable for its
// type. Currently supported types:
//
//	bool -> bool == false
//	error -> error != nil
//
// If type is nil then the test will fail.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if expect(t, v, tags...) {
		t.Errorf("%sexpected failure (%T)", id(tags...), v)
		return false
	}
	return true
}

// ExpectImplements tests whether an instance is an implementation of type T
func ExpectImplements[T any](t *testing.T, instance any, tags ...any) bool {
	t.Helper()
	if _, ok := instance.(T); !ok {
		var zero *T
		t.Errorf("%simplementation test failed: type %T does not implement %T", id(tags...), instance, zero)
		return false
	}
	return true
}
